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
	err := New(ErrCodeInvalidPeriod, "period must be positive")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidPeriod, err.Code)
	suite.Equal("period must be positive", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeIndexOutOfRange, "index %d out of range [0, %d)", 5, 3)
	suite.NotNil(err)
	suite.Equal(ErrCodeIndexOutOfRange, err.Code)
	suite.Equal("index 5 out of range [0, 3)", err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFeedReadFailed, "failed to read bars", cause)
	suite.Equal(ErrCodeFeedReadFailed, err.Code)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeConfigReadFailed, cause, "failed to read %s", "config.yaml")
	suite.Equal("failed to read config.yaml", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIndexOutOfRange, "update failed", cause)
	suite.Equal("[200] update failed: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFeedOpenFailed, "open failed", cause)
	suite.Equal(cause, err.Unwrap())
	suite.Nil(New(ErrCodeInvalidParameter, "x").Unwrap())
}

func (suite *ErrorTestSuite) TestCodeOfWrapped() {
	cause := New(ErrCodeIndexOutOfRange, "out of range")
	err := Wrap(ErrCodeIndicatorNotFound, "indicator not found", cause)
	// the outermost code wins
	suite.Equal(ErrCodeIndicatorNotFound, CodeOf(err))
}

func (suite *ErrorTestSuite) TestCodeOfStandardError() {
	suite.Equal(ErrCodeUnknown, CodeOf(errors.New("standard error")))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeInvalidMultiplier, "multiplier must be positive")
	suite.True(HasCode(err, ErrCodeInvalidMultiplier))
	suite.False(HasCode(err, ErrCodeInvalidPeriod))
}

func (suite *ErrorTestSuite) TestIsFindsCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeConfigParseFailed, "parse failed", cause)
	suite.True(Is(err, cause))
	suite.False(Is(err, errors.New("underlying error")))
}

func (suite *ErrorTestSuite) TestHasCodeThroughStandardWrapping() {
	err := fmt.Errorf("loading: %w", New(ErrCodeConfigParseFailed, "parse failed"))
	suite.True(HasCode(err, ErrCodeConfigParseFailed))
	suite.False(HasCode(nil, ErrCodeConfigParseFailed))
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeIndexOutOfRange)
	suite.Equal(ErrorCode(300), ErrCodeIndicatorNotFound)
	suite.Equal(ErrorCode(400), ErrCodeConfigReadFailed)
	suite.Equal(ErrorCode(700), ErrCodeFeedOpenFailed)
}
