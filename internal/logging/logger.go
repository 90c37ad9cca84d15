package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "flightcal"

var globalLogger *zap.SugaredLogger

// Init builds the JSON logger. Production uses zap's production sampling and
// level; anything else gets the development config with debug enabled.
func Init(appEnv string) error {
	cfg := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar().With("service", serviceName)
	return nil
}

// GetLogger falls back to a production logger when Init was never called.
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		logger, _ := zap.NewProduction()
		globalLogger = logger.Sugar().With("service", serviceName)
	}
	return globalLogger
}

func Close() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

func Info(msg string, kv ...interface{}) { GetLogger().Infow(msg, kv...) }
func Debug(msg string, kv ...interface{}) { GetLogger().Debugw(msg, kv...) }
func Warn(msg string, kv ...interface{}) { GetLogger().Warnw(msg, kv...) }
func Error(msg string, kv ...interface{}) { GetLogger().Errorw(msg, kv...) }

// Fatal logs and exits with status 1.
func Fatal(msg string, kv ...interface{}) {
	GetLogger().Fatalw(msg, kv...)
	os.Exit(1)
}

// WithRequest tags a logger with the request id and the endpoint it served.
func WithRequest(requestID string, endpoint string) *zap.SugaredLogger {
	return GetLogger().With("request_id", requestID, "endpoint", endpoint)
}
