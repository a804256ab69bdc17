package marketdata

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/argo-indexes/internal/types"
	"github.com/rxtech-lab/argo-indexes/mocks"
	"github.com/rxtech-lab/argo-indexes/pkg/errors"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata/provider"
)

// ClientTestSuite is a test suite for the Client implementation
type ClientTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mocks.MockProvider
	client       *Client
	params       DownloadParams
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// SetupTest runs before each test
func (suite *ClientTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProvider = mocks.NewMockProvider(suite.ctrl)
	suite.client = NewClientWithProvider(suite.mockProvider)
	suite.params = DownloadParams{
		Ticker:    "^GSPC",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ClientTestSuite) TestNewClient() {
	testCases := []struct {
		name        string
		config      ClientConfig
		expectError bool
	}{
		{name: "yahoo", config: ClientConfig{ProviderType: provider.ProviderYahoo}},
		{name: "binance", config: ClientConfig{ProviderType: provider.ProviderBinance}},
		{name: "polygon with key", config: ClientConfig{ProviderType: provider.ProviderPolygon, PolygonApiKey: "key"}},
		{name: "polygon without key", config: ClientConfig{ProviderType: provider.ProviderPolygon}, expectError: true},
		{name: "unknown provider", config: ClientConfig{ProviderType: "bloomberg"}, expectError: true},
		{name: "empty provider", config: ClientConfig{}, expectError: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			client, err := NewClient(tc.config)
			if tc.expectError {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
				suite.Nil(client)

				return
			}

			suite.NoError(err)
			suite.NotNil(client)
		})
	}
}

func (suite *ClientTestSuite) TestDownloadNormalizes() {
	raw := []types.MarketData{
		{Symbol: "^GSPC", Date: time.Date(2023, 12, 29, 14, 30, 0, 0, time.UTC), AdjustedClose: 4769},
		{Symbol: "^GSPC", Date: time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC), AdjustedClose: 4742},
		{Symbol: "^GSPC", Date: time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC), AdjustedClose: 4697},
		{Symbol: "^GSPC", Date: time.Date(2024, 1, 6, 14, 30, 0, 0, time.UTC), AdjustedClose: 4700},
	}

	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "^GSPC", suite.params.StartDate, suite.params.EndDate).
		Return(raw, nil)

	prices, err := suite.client.Download(context.Background(), suite.params)
	suite.Require().NoError(err)
	suite.Require().Len(prices, 2)
	suite.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), prices[0].Date)
	suite.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), prices[1].Date)
}

func (suite *ClientTestSuite) TestDownloadProviderError() {
	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "^GSPC", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection reset"))

	_, err := suite.client.Download(context.Background(), suite.params)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMarketDataFetchFailed))
	suite.Contains(err.Error(), "connection reset")
}

func (suite *ClientTestSuite) TestDownloadEmptyResponse() {
	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "^GSPC", gomock.Any(), gomock.Any()).
		Return([]types.MarketData{}, nil)

	_, err := suite.client.Download(context.Background(), suite.params)
	suite.True(errors.HasCode(err, errors.ErrCodeNoDataFound))
}

func (suite *ClientTestSuite) TestDownloadInvalidParams() {
	params := suite.params
	params.EndDate = params.StartDate

	_, err := suite.client.Download(context.Background(), params)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))

	params = suite.params
	params.Ticker = ""

	_, err = suite.client.Download(context.Background(), params)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}
