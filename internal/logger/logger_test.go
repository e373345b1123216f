package logger

import (
	"testing"

	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestDefaultLevelIsInfo() {
	log, err := NewLogger()
	suite.Require().NoError(err)

	suite.True(log.Core().Enabled(zapcore.InfoLevel))
	suite.False(log.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestSyncWithoutCore() {
	suite.NoError((&Logger{}).Sync())
}

func (suite *LoggerTestSuite) TestFieldsReachTheCore() {
	core, logs := observer.New(zapcore.InfoLevel)
	log := &Logger{Logger: zap.New(core)}

	log.Info("Replayed bars", zap.Int("count", 120))
	log.Debug("dropped")

	entries := logs.All()
	suite.Require().Len(entries, 1)
	suite.Equal("Replayed bars", entries[0].Message)
	suite.Equal(int64(120), entries[0].ContextMap()["count"])
}

func (suite *LoggerTestSuite) TestNewLoggerWithLevel() {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel, muted: zapcore.InvalidLevel},
		{level: "warn", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{level: "error", enabled: zapcore.ErrorLevel, muted: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		suite.Run(tt.level, func() {
			log, err := NewLoggerWithLevel(tt.level)
			suite.Require().NoError(err)
			suite.True(log.Core().Enabled(tt.enabled))

			if tt.muted != zapcore.InvalidLevel {
				suite.False(log.Core().Enabled(tt.muted))
			}
		})
	}
}

func (suite *LoggerTestSuite) TestNewLoggerWithInvalidLevel() {
	_, err := NewLoggerWithLevel("loud")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}
