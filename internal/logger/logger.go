package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// OutputFormat selects how log records are rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatText   OutputFormat = "text"
	FormatLogfmt OutputFormat = "logfmt"
	FormatJSON   OutputFormat = "json"
)

var (
	// testOutput is used to capture log output during tests
	testOutput   io.Writer
	testOutputMu sync.Mutex
)

// Fields is a type alias for log fields to make the API cleaner
type Fields map[string]interface{}

var (
	logger        *log.Logger
	currentLevel  = log.InfoLevel
	currentFormat = FormatText
)

// SetTestOutput sets the output writer for testing purposes
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput resets the test output to nil
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

// ParseFormat maps a configured format name to an OutputFormat, falling back to text.
func ParseFormat(format string) OutputFormat {
	switch OutputFormat(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON
	case FormatLogfmt:
		return FormatLogfmt
	default:
		return FormatText
	}
}

// InitLogger initializes the global logger.
func InitLogger(logLevel string, format OutputFormat) {
	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = log.InfoLevel // fallback to info level
	}
	currentLevel = level
	currentFormat = format
	logger = build(level, format)
}

// SetOutputFormat switches the format of the global logger, keeping its level.
func SetOutputFormat(format OutputFormat) {
	currentFormat = format
	logger = build(currentLevel, format)
}

func build(level log.Level, format OutputFormat) *log.Logger {
	l := log.NewWithOptions(getOutput(), log.Options{
		Level:           level,
		ReportTimestamp: format != FormatText,
	})
	switch format {
	case FormatJSON:
		l.SetFormatter(log.JSONFormatter)
	case FormatLogfmt:
		l.SetFormatter(log.LogfmtFormatter)
	default:
		l.SetFormatter(log.TextFormatter)
	}
	return l
}

// GetLogger returns the configured logger instance.
func GetLogger() *log.Logger {
	if logger == nil {
		// Initialize with default settings if not already initialized
		InitLogger("info", FormatText)
	}
	return logger
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().Info(msg, mergeFields(fields...)...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, args...))
}

// InfofWithFields logs a formatted info message with fields.
func InfofWithFields(fields Fields, format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, args...), mergeFields(fields)...)
}

// Debug logs a debug message (only shown when debug level is enabled).
func Debug(msg string, fields ...Fields) {
	GetLogger().Debug(msg, mergeFields(fields...)...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...))
}

// DebugfWithFields logs a formatted debug message with fields.
func DebugfWithFields(fields Fields, format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...), mergeFields(fields)...)
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().Error(msg, mergeFields(fields...)...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	GetLogger().Error(fmt.Sprintf(format, args...))
}

// ErrorfWithFields logs a formatted error message with fields.
func ErrorfWithFields(fields Fields, format string, args ...interface{}) {
	GetLogger().Error(fmt.Sprintf(format, args...), mergeFields(fields)...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().Warn(msg, mergeFields(fields...)...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	GetLogger().Warn(fmt.Sprintf(format, args...))
}

// WarnfWithFields logs a formatted warning message with fields.
func WarnfWithFields(fields Fields, format string, args ...interface{}) {
	GetLogger().Warn(fmt.Sprintf(format, args...), mergeFields(fields)...)
}

// Success logs a success message as info with success indicator.
func Success(msg string, fields ...Fields) {
	allFields := mergeFields(fields...)
	allFields = append(allFields, "status", "success")
	GetLogger().Info(msg, allFields...)
}

// Successf logs a formatted success message.
func Successf(format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf("SUCCESS: "+format, args...))
}

// mergeFields merges multiple field maps into one slice of key-value pairs.
func mergeFields(fields ...Fields) []interface{} {
	result := []interface{}{}
	for _, field := range fields {
		for k, v := range field {
			result = append(result, k, v)
		}
	}
	return result
}
