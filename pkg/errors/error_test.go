package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeConfigIncomplete, "indexes is required")
	suite.Equal(ErrCodeConfigIncomplete, err.Code)
	suite.Equal("indexes is required", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidPeriod, "window must be positive, got %d", 0)
	suite.Equal(ErrCodeInvalidPeriod, err.Code)
	suite.Equal("window must be positive, got 0", err.Message)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("connection refused")
	err := Wrapf(ErrCodeMarketDataFetchFailed, cause, "failed to download %s", "^GSPC")
	suite.Equal(ErrCodeMarketDataFetchFailed, err.Code)
	suite.Equal("failed to download ^GSPC", err.Message)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestErrorString() {
	suite.Equal("[100] config file not found", New(ErrCodeConfigNotFound, "config file not found").Error())

	err := Wrap(ErrCodeConfigMalformed, "failed to decode config", errors.New("unexpected EOF"))
	suite.Equal("[101] failed to decode config: unexpected EOF", err.Error())
}

func (suite *ErrorTestSuite) TestGetCode() {
	suite.Equal(ErrCodeNoDataFound, GetCode(New(ErrCodeNoDataFound, "empty")))
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))
	suite.Equal(ErrCodeUnknown, GetCode(nil))

	wrapped := fmt.Errorf("outer: %w", New(ErrCodeConfigNotFound, "missing"))
	suite.Equal(ErrCodeConfigNotFound, GetCode(wrapped))
}

func (suite *ErrorTestSuite) TestHasCodeWalksCauses() {
	inner := New(ErrCodeConfigNotFound, "missing")
	outer := Wrap(ErrCodeMarketDataFetchFailed, "load failed", inner)

	suite.True(HasCode(outer, ErrCodeMarketDataFetchFailed))
	suite.True(HasCode(outer, ErrCodeConfigNotFound))
	suite.False(HasCode(outer, ErrCodeConfigMalformed))
	suite.False(HasCode(errors.New("plain"), ErrCodeUnknown))
}

func (suite *ErrorTestSuite) TestIsAndAs() {
	cause := errors.New("boom")
	err := Wrap(ErrCodeUnknown, "wrapped", cause)
	suite.True(Is(err, cause))

	var target *Error
	suite.True(As(fmt.Errorf("ctx: %w", err), &target))
	suite.Equal(ErrCodeUnknown, target.Code)
}

func (suite *ErrorTestSuite) TestCodeString() {
	suite.Equal("config_not_found", ErrCodeConfigNotFound.String())
	suite.Equal("invalid_provider", ErrCodeInvalidProvider.String())
	suite.Equal("unknown", ErrorCode(9999).String())
}
