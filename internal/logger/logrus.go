package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/libocr/commontypes"
)

// Logger adapts a logrus logger to commontypes.Logger.
type Logger struct {
	logger *logrus.Logger
}

var _ commontypes.Logger = &Logger{}

// NewLogger returns a logger writing to out. The level is any name accepted by logrus.ParseLevel, the format is
// either "text" or "json".
func NewLogger(out io.Writer, level string, format string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q, expected text or json", format)
	}
	return &Logger{logger}, nil
}

// Logrus returns the underlying logrus logger.
func (l *Logger) Logrus() *logrus.Logger {
	return l.logger
}

func (l *Logger) Trace(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l *Logger) Debug(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

func (l *Logger) Critical(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error("CRITICAL: " + msg)
}
