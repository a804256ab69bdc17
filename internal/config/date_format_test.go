package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

type DateFormatTestSuite struct {
	suite.Suite
	date time.Time
}

func TestDateFormatSuite(t *testing.T) {
	suite.Run(t, new(DateFormatTestSuite))
}

func (suite *DateFormatTestSuite) SetupTest() {
	suite.date = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
}

func (suite *DateFormatTestSuite) TestFormat() {
	testCases := []struct {
		pattern  string
		expected string
	}{
		{"%Y-%m-%d", "2024-03-05"},
		{"%d/%m/%y", "05/03/24"},
		{"%b %d, %Y", "Mar 05, 2024"},
		{"%A %e %B %Y", "Tuesday  5 March 2024"},
		{"%Y%m%d", "20240305"},
		{"%Y-%m-%d %H:%M:%S", "2024-03-05 14:07:09"},
		{"%I%p day %j", "02PM day 065"},
		{"%Y %%", "2024 %"},
		{"Q1 %Y-%m-%d", "Q1 2024-03-05"},
		{"%Y-%m-%d v1", "2024-03-05 v1"},
		{"Jan %d Mon 2 PM MST -07", "Jan 05 Mon 2 PM MST -07"},
	}

	for _, tc := range testCases {
		suite.Run(tc.pattern, func() {
			format, err := ParseDateFormat(tc.pattern)
			suite.Require().NoError(err)
			suite.Equal(tc.pattern, format.Pattern())
			suite.Equal(tc.expected, format.Format(suite.date))
		})
	}
}

func (suite *DateFormatTestSuite) TestParseRoundTripsFormat() {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	for _, pattern := range []string{
		"%Y-%m-%d",
		"%d.%m.%Y",
		"%Y%m%d",
		"%d %B %Y",
		"%a %b %e %Y",
		"Q1 %Y-%m-%d",
		"%Y-%m-%d v1",
		"week of %d/%m/%Y",
	} {
		suite.Run(pattern, func() {
			format, err := ParseDateFormat(pattern)
			suite.Require().NoError(err)

			parsed, err := format.Parse(format.Format(day))
			suite.Require().NoError(err)
			suite.Equal(day, parsed)
		})
	}
}

func (suite *DateFormatTestSuite) TestParseRejectsMismatch() {
	format, err := ParseDateFormat("Q1 %Y-%m-%d")
	suite.Require().NoError(err)

	for _, value := range []string{"Q2 2024-03-05", "2024-03-05", "Q1 2024-03-05 extra", "Q1 2024-3-5", "Q1 2024-13-05"} {
		_, err := format.Parse(value)
		suite.Require().Error(err, value)
		suite.True(errors.HasCode(err, errors.ErrCodeInvalidDateFormat), value)
	}
}

func (suite *DateFormatTestSuite) TestInvalidPatterns() {
	for _, pattern := range []string{"", "%Y-%Q", "%Y-%", "plain", "%%"} {
		_, err := ParseDateFormat(pattern)
		suite.Require().Error(err, pattern)
		suite.True(errors.HasCode(err, errors.ErrCodeInvalidDateFormat), pattern)
	}
}
