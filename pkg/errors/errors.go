package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")

	// Settings validation errors.
	ErrHTTPTimeoutNegative = fmt.Errorf("http_timeout cannot be negative")
	ErrNpmCommandEmpty     = fmt.Errorf("npm_command cannot be empty")
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel     = fmt.Errorf("invalid log level")

	// Generator errors.
	ErrInvalidGeneratorName = fmt.Errorf("generator name cannot be empty")
	ErrInstallFailed        = fmt.Errorf("install failed")
	ErrUninstallFailed      = fmt.Errorf("uninstall failed")
	ErrRegistrySearch       = fmt.Errorf("registry search failed")

	// Process errors.
	ErrCommandFailed = fmt.Errorf("command failed")

	// State errors.
	ErrStateStore = fmt.Errorf("state store error")

	// Cache errors.
	ErrCacheClosed = fmt.Errorf("installed cache is closed")

	// RPC errors.
	ErrUnknownMethod = fmt.Errorf("unknown method")
	ErrInvalidParams = fmt.Errorf("invalid params")
	ErrConnClosed    = fmt.Errorf("connection closed")

	// Hook errors.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails reports an unsupported output format.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: %q (valid: text, logfmt, json)", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails reports an unsupported log level.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, level)
}
