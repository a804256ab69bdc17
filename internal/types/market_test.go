package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) TestDateWindowIsHalfOpen() {
	window := DateWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"start is included", window.Start, true},
		{"inside", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"last day before end", time.Date(2024, 1, 30, 23, 59, 0, 0, time.UTC), true},
		{"end is excluded", window.End, false},
		{"before start", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, window.Contains(tc.date))
		})
	}
}
