package logger

import (
	"agenda-service/internal/app/config"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = zap.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if internalConfig.App.Env == "development" {
		cfg.Development = true
		cfg.Sampling = nil
	}
	if internalConfig.App.Env == "production" {
		cfg.OutputPaths = append(cfg.OutputPaths, driverConfig.Logger.OutputFileName)
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, driverConfig.Logger.OutputErrorFileName)
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": "agenda-service",
		"version": internalConfig.App.Version,
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}
