package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging keyed by component
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configured level name onto a zerolog level
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds the application logger writing to stdout
func New(levelName string, useJSON bool) (*ZerologAdapter, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	if useJSON {
		return NewZerolog(os.Stdout, level), nil
	}
	return NewConsoleLogger(level), nil
}

// NoOp discards everything
type NoOp struct{}

func (NoOp) Debug(string, string, map[string]interface{})   {}
func (NoOp) Info(string, string, map[string]interface{})    {}
func (NoOp) Warning(string, string, map[string]interface{}) {}
func (NoOp) Error(string, error, map[string]interface{})    {}

var _ Logger = NoOp{}
var _ Logger = (*ZerologAdapter)(nil)
