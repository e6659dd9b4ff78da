// Package errors provides coded errors for zen.
//
// Every failure the engine reports carries a stable ErrorCode so callers
// (and tests) can branch on the kind of failure instead of matching text.
// An abbreviation that does not parse is reported with
// ErrInvalidAbbreviation; hosts treat it as "nothing to expand".
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Resource resolution errors
	ErrUnknownDocType      ErrorCode = "UNKNOWN_DOCUMENT_TYPE"
	ErrUnresolvedReference ErrorCode = "UNRESOLVED_REFERENCE"
	ErrReferenceChain      ErrorCode = "REFERENCE_CHAIN"

	// Expansion errors
	ErrInvalidAbbreviation ErrorCode = "INVALID_ABBREVIATION"
	ErrMalformedOutput     ErrorCode = "MALFORMED_OUTPUT"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// ZenError is an error with a code and optional structured details
type ZenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *ZenError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

func (e *ZenError) Unwrap() error { return e.Wrapped }

// Is matches any ZenError carrying the same code
func (e *ZenError) Is(target error) bool {
	t, ok := target.(*ZenError)
	return ok && t.Code == e.Code
}

// WithDetail attaches a key/value pair and returns e for chaining
func (e *ZenError) WithDetail(key string, value interface{}) *ZenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func build(code ErrorCode, message string, wrapped error) *ZenError {
	return &ZenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

func New(code ErrorCode, message string) *ZenError {
	return build(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...interface{}) *ZenError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap returns nil when err is nil
func Wrap(err error, code ErrorCode, message string) *ZenError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZenError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// outermost returns the first ZenError in err's chain, or nil
func outermost(err error) *ZenError {
	var zenErr *ZenError
	if errors.As(err, &zenErr) {
		return zenErr
	}
	return nil
}

// IsErrorCode reports whether the outermost ZenError in err has code
func IsErrorCode(err error, code ErrorCode) bool {
	zenErr := outermost(err)
	return zenErr != nil && zenErr.Code == code
}

// GetErrorCode returns ErrUnknown for errors without a code
func GetErrorCode(err error) ErrorCode {
	if zenErr := outermost(err); zenErr != nil {
		return zenErr.Code
	}
	return ErrUnknown
}

func GetErrorDetails(err error) map[string]interface{} {
	if zenErr := outermost(err); zenErr != nil {
		return zenErr.Details
	}
	return nil
}

// IsConfigurationError reports whether err stems from broken resources
// rather than from the abbreviation the user typed.
func IsConfigurationError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid,
		ErrUnknownDocType, ErrUnresolvedReference, ErrReferenceChain:
		return true
	}
	return false
}
