package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zamcare/medirush/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with file and console outputs
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// InitZapLoggerFromConfig creates a ZapLogger from application configuration
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logToFile := cfg.Logger.Type == "file" || cfg.Logger.Type == "hybrid"
	logToConsole := cfg.Logger.Type != "file"

	cores := make([]zapcore.Core, 0, 2)
	var file *os.File

	if logToFile {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.Logger.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			level,
		))
	}
	if logToConsole {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	logger := &ZapLogger{
		Logger: zl,
		sugar:  zl.Sugar(),
		file:   file,
	}

	SetGlobalLogger(logger)
	return logger, nil
}

// WithFields returns a logger with additional structured fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return l.Logger.With(zapFields...)
}

// WithError returns a logger with an error field attached
func (l *ZapLogger) WithError(err error) *zap.Logger {
	return l.Logger.With(zap.Error(err))
}

// Close flushes buffered entries and closes the log file if any
func (l *ZapLogger) Close() error {
	_ = l.Logger.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
