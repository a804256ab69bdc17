package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/mocks"
)

type LogReturnTestSuite struct {
	suite.Suite
	start time.Time
}

func TestLogReturnSuite(t *testing.T) {
	suite.Run(t, new(LogReturnTestSuite))
}

func (suite *LogReturnTestSuite) SetupTest() {
	suite.start = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func (suite *LogReturnTestSuite) TestTwoRows() {
	prices := mocks.FromCloses("^A", suite.start, 100, 110)

	returns := DailyLogReturn(prices)

	suite.Require().Len(returns, 1)
	suite.Equal(prices[1].Date, returns[0].Date)
	suite.InDelta(math.Log(110.0/100.0), returns[0].Value, 1e-12)
}

func (suite *LogReturnTestSuite) TestEmptyAndSingleRow() {
	suite.Empty(DailyLogReturn(nil))
	suite.Empty(DailyLogReturn(mocks.FromCloses("^A", suite.start, 100)))
}

func (suite *LogReturnTestSuite) TestSkipsNonFiniteRows() {
	prices := mocks.FromCloses("^A", suite.start, 100, 0, 50, 55)

	returns := DailyLogReturn(prices)

	// 100 -> 0 is -Inf and 0 -> 50 is +Inf; only 50 -> 55 survives.
	suite.Require().Len(returns, 1)
	suite.Equal(prices[3].Date, returns[0].Date)
	suite.InDelta(math.Log(55.0/50.0), returns[0].Value, 1e-12)
}

func (suite *LogReturnTestSuite) TestReturnsSumToTotalLogChange() {
	config := mocks.DefaultConfig()
	config.Count = 60
	prices := mocks.NewDataGenerator(1).Generate(config)

	returns := DailyLogReturn(prices)
	suite.Len(returns, len(prices)-1)

	sum := 0.0
	for _, r := range returns {
		sum += r.Value
	}

	expected := math.Log(prices[len(prices)-1].AdjustedClose / prices[0].AdjustedClose)
	suite.InDelta(expected, sum, 1e-9)
}

func (suite *LogReturnTestSuite) TestUsesAdjustedClose() {
	prices := []types.MarketData{
		{Date: suite.start, Close: 10, AdjustedClose: 8},
		{Date: suite.start.AddDate(0, 0, 1), Close: 10, AdjustedClose: 9},
	}

	returns := DailyLogReturn(prices)
	suite.Require().Len(returns, 1)
	suite.InDelta(math.Log(9.0/8.0), returns[0].Value, 1e-12)
}
