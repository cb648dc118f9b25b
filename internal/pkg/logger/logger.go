package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our application logger with structured output to stdout and
// optionally a file
type AppLogger struct {
	*logrus.Logger
	serviceName string
	filePath    string
	file        *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig, serviceName string) (*AppLogger, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:      logger,
		serviceName: serviceName,
	}

	// Setup file output if path is provided
	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithError adds error field to log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.Logger.WithError(err).WithField("service", al.serviceName)
}

// WithFields adds custom fields to log entry
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	// Always add service name
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["service"] = al.serviceName

	return al.Logger.WithFields(fields)
}

// GetFilePath returns the current log file path
func (al *AppLogger) GetFilePath() string {
	return al.filePath
}

// RotateFile manually rotates the log file (useful for external log rotation)
func (al *AppLogger) RotateFile() error {
	if al.file == nil {
		return nil
	}

	if err := al.file.Close(); err != nil {
		return err
	}

	return al.setupFileOutput(al.filePath)
}
