// Package klog builds the zap logger the application context and front-end
// wrappers log through.
package klog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitProvider builds the process logger. Debug mode switches to the
// colored development config.
func InitProvider(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	logger, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("klog: cannot init zap provider: %v", err)
	}

	return logger, nil
}

// Secret is a field for values that must never reach the log: master
// secrets, derived passwords, leet-transformed intermediates. Only the fact
// that a value was present is recorded.
func Secret(key string) zap.Field {
	return zap.String(key, "[redacted]")
}
