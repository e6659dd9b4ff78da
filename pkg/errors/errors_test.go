// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code classification

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_abbreviation",
			code:    errors.ErrInvalidAbbreviation,
			message: "unconsumed input",
			wantStr: "[INVALID_ABBREVIATION] unconsumed input",
		},
		{
			name:    "unknown_document_type",
			code:    errors.ErrUnknownDocType,
			message: "no resources for haml",
			wantStr: "[UNKNOWN_DOCUMENT_TYPE] no resources for haml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnresolvedReference, "reference %q points to missing %q", "bq", "blockquote")
	assert.Equal(t, `reference "bq" points to missing "blockquote"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load settings")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] cannot load settings: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnresolvedReference, "unresolved").
		WithDetail("type", "html").
		WithDetail("key", "bq")

	assert.Equal(t, "html", err.Details["type"])
	assert.Equal(t, "bq", err.Details["key"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrReferenceChain, "error 1")
	err2 := errors.New(errors.ErrReferenceChain, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileWrite, "denied"),
			code:     errors.ErrFileWrite,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrMalformedOutput, errors.GetErrorCode(errors.New(errors.ErrMalformedOutput, "bad")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, errors.IsConfigurationError(errors.New(errors.ErrUnresolvedReference, "x")))
	assert.True(t, errors.IsConfigurationError(errors.New(errors.ErrUnknownDocType, "x")))
	assert.True(t, errors.IsConfigurationError(errors.New(errors.ErrConfigValid, "x")))
	assert.False(t, errors.IsConfigurationError(errors.New(errors.ErrInvalidAbbreviation, "x")))
	assert.False(t, errors.IsConfigurationError(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse settings.toml")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load settings")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))

	var zenErr *errors.ZenError
	require.True(t, stderrors.As(loadErr.Unwrap(), &zenErr))
	assert.Equal(t, errors.ErrConfigParse, zenErr.Code)

	assert.True(t, stderrors.Is(loadErr, rootCause))
}
