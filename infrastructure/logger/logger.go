// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports optional file output with rotation via lumberjack

package logger

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"skillscope-api/pkg/config"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger from the log configuration.
// When cfg.File is set, output rotates through lumberjack; otherwise
// logs go to stdout.
func NewLogrusLogger(cfg config.LogConfig) *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if cfg.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
