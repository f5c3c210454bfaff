package pmlog

import (
	"errors"
	"fmt"
)

// LogErr is a subsystem error code. LogErr values implement error and
// may be wrapped; Code recovers the code from a wrapped chain.
type LogErr uint32

const (
	// ErrNone means no error. It is never returned as a non-nil error.
	ErrNone LogErr = iota
	// ErrInvalidParameter indicates a malformed request, such as an
	// illegal context name.
	ErrInvalidParameter
	// ErrInvalidContextIndex indicates an enumeration index out of range.
	ErrInvalidContextIndex
	// ErrInvalidContext indicates a handle not issued by this library.
	ErrInvalidContext
	// ErrContextNotFound indicates a name lookup that matched nothing.
	ErrContextNotFound
	// ErrTooManyContexts indicates the context table is full.
	ErrTooManyContexts
	// ErrLevelOutOfRange indicates a level outside the recognized scale.
	ErrLevelOutOfRange
	// ErrFormatFailed indicates a message could not be formatted.
	ErrFormatFailed
	// ErrInvalidFile indicates the context registry could not be read
	// or written.
	ErrInvalidFile
)

// ErrUnknown is the catch-all code for failures the subsystem cannot
// classify.
const ErrUnknown LogErr = 0x7FFFFFFF

func (e LogErr) Error() string {
	return "pmlog: " + e.DbgString()
}

// DbgString returns a short human-readable rendering of the code, used
// in runtime-error diagnostics.
func (e LogErr) DbgString() string {
	switch e {
	case ErrNone:
		return "none"
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrInvalidContextIndex:
		return "invalid context index"
	case ErrInvalidContext:
		return "invalid context"
	case ErrContextNotFound:
		return "context not found"
	case ErrTooManyContexts:
		return "too many contexts"
	case ErrLevelOutOfRange:
		return "level out of range"
	case ErrFormatFailed:
		return "format failed"
	case ErrInvalidFile:
		return "invalid file"
	default:
		return "unknown error"
	}
}

// Code extracts the LogErr from err. A nil error yields ErrNone; an
// error with no LogErr in its chain yields ErrUnknown.
func Code(err error) LogErr {
	if err == nil {
		return ErrNone
	}
	var code LogErr
	if errors.As(err, &code) {
		return code
	}
	return ErrUnknown
}

// fileErr wraps an I/O failure with the ErrInvalidFile code so callers
// can both render the underlying cause and classify the error.
func fileErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrInvalidFile)
}
