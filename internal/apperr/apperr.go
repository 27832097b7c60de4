// Package apperr provides structured error types for the lowerthird service.
//
// Error codes are machine-readable so the HTTP layer can map failures to
// status codes without string matching, while CLI output keeps the
// human-readable message.
package apperr

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// CodeInvalidInput marks request validation failures (non-positive
	// duration, overlong titles, bad output names).
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeConfiguration marks failures preparing the environment,
	// e.g. the output directory cannot be created.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeEncoderOpen marks a video sink that failed to open: bad path,
	// missing ffmpeg binary, unsupported codec.
	CodeEncoderOpen Code = "ENCODER_OPEN"

	// CodeFrameRender marks a failure while producing a single frame.
	// It is fatal to the whole render; there is no partial salvage.
	CodeFrameRender Code = "FRAME_RENDER"

	// CodeInternal marks unexpected failures, including an encoder that
	// could not be released cleanly.
	CodeInternal Code = "INTERNAL"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given error code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if it is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values,
// or err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
