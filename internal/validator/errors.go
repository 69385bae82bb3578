package validator

import (
	"errors"
	"fmt"

	"github.com/leocth/labrinth/internal/archive"
)

// ErrorKind classifies why a file could not be evaluated.
type ErrorKind int

const (
	// KindZip is a corrupt or unreadable container.
	KindZip ErrorKind = iota + 1
	// KindIO is a read failure while inspecting the container.
	KindIO
	// KindSerDe is a malformed manifest that had to be parsed.
	KindSerDe
	// KindInvalidInput is a caller-correctable problem with the upload.
	KindInvalidInput
	// KindBlocking is a failure to schedule the work on the validation pool.
	KindBlocking
)

func (k ErrorKind) String() string {
	switch k {
	case KindZip:
		return "zip"
	case KindIO:
		return "io"
	case KindSerDe:
		return "serde"
	case KindInvalidInput:
		return "invalid_input"
	case KindBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// Error is returned when a file could not be evaluated at all. Warnings are
// never errors.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindZip:
		return "Unable to read Zip Archive: " + e.detail()
	case KindIO:
		return "IO Error: " + e.detail()
	case KindSerDe:
		return "Error while validating JSON: " + e.detail()
	case KindInvalidInput:
		return "Invalid Input: " + e.detail()
	case KindBlocking:
		return "Error while managing threads"
	default:
		return e.detail()
	}
}

func (e *Error) detail() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same call may succeed if repeated.
func (e *Error) Retryable() bool {
	return e.Kind == KindBlocking
}

// InvalidInput returns a caller-correctable validation error.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// InvalidInputf formats a caller-correctable validation error.
func InvalidInputf(format string, args ...any) *Error {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// SerDeError wraps a manifest decoding failure.
func SerDeError(err error) *Error {
	return &Error{Kind: KindSerDe, Err: err}
}

// ArchiveError classifies a failure reported while opening or reading an archive.
func ArchiveError(err error) *Error {
	if archive.IsCorrupt(err) {
		return &Error{Kind: KindZip, Err: err}
	}
	return &Error{Kind: KindIO, Err: err}
}

func blockingError(err error) *Error {
	return &Error{Kind: KindBlocking, Err: err}
}

// IsKind reports whether err is a validation error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var verr *Error
	return errors.As(err, &verr) && verr.Kind == kind
}
