package logger

import (
	"log"

	"healthease-client/internal/app/config"
	"healthease-client/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger writes JSON to the terminal while developing and to the
// configured log files in production. Unknown levels fall back to info.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	isProduction := internalConfig.App.Env == constvars.AppEnvProduction
	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if isProduction {
		outputPaths = []string{driverConfig.Logger.OutputFileName}
		errorOutputPaths = append(errorOutputPaths, driverConfig.Logger.OutputErrorFileName)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      !isProduction,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger.With(
		zap.String(constvars.LoggingServiceKey, "healthease-client"),
		zap.String(constvars.LoggingVersionKey, internalConfig.App.Version),
	)
}
