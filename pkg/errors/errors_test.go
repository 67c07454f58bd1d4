package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "nil stays nil",
			err:      nil,
			msg:      "installing generator-foo",
			expected: "",
		},
		{
			name:     "registry failure with url",
			err:      ErrRegistrySearch,
			msg:      "https://registry.npmjs.com/-/v1/search",
			expected: "https://registry.npmjs.com/-/v1/search: registry search failed",
		},
		{
			name:     "command failure with exit status",
			err:      fmt.Errorf("%w: exit status 1", ErrCommandFailed),
			msg:      "npm install -g generator-foo@latest",
			expected: "npm install -g generator-foo@latest: command failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				assert.NoError(t, result)
				return
			}
			assert.EqualError(t, result, tt.expected)
			assert.ErrorIs(t, result, tt.err)
		})
	}
}

func TestWrapf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		args     []interface{}
		sentinel error
		expected string
	}{
		{
			name:   "nil stays nil",
			err:    nil,
			format: "generator %s",
			args:   []interface{}{"generator-foo"},
		},
		{
			name:     "uninstall failure",
			err:      ErrUninstallFailed,
			format:   "generator %s at %s",
			args:     []interface{}{"generator-foo", "-g"},
			sentinel: ErrUninstallFailed,
			expected: "generator generator-foo at -g: uninstall failed",
		},
		{
			name:     "state store failure",
			err:      fmt.Errorf("%w: database is locked", ErrStateStore),
			format:   "writing %s",
			args:     []interface{}{"Explore Generators.lastAutoUpdateDate"},
			sentinel: ErrStateStore,
			expected: "writing Explore Generators.lastAutoUpdateDate: state store error: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrapf(tt.err, tt.format, tt.args...)
			if tt.err == nil {
				assert.NoError(t, result)
				return
			}
			assert.EqualError(t, result, tt.expected)
			assert.True(t, errors.Is(result, tt.sentinel))
		})
	}
}

func TestDetailErrors(t *testing.T) {
	err := ErrInvalidLogLevelWithDetails("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.EqualError(t, err, `invalid log level: "verbose" (valid: debug, info, warn, error)`)

	err = ErrInvalidOutputFormatWithDetails("xml")
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
	assert.EqualError(t, err, `invalid output format: "xml" (valid: text, logfmt, json)`)
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(ErrInstallFailed, "generator-%s", "foo")
	assert.ErrorIs(t, err, ErrInstallFailed)
	assert.NotErrorIs(t, err, ErrUninstallFailed)
	assert.EqualError(t, err, "generator-foo: install failed")
}
