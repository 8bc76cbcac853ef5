// Package errs classifies the failures a generation request can end with.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the class of a failure.
type Kind string

const (
	// KindUnknown is reported for errors that were never classified.
	KindUnknown Kind = ""
	// KindConfiguration means a credential or setting is missing or invalid.
	KindConfiguration Kind = "configuration"
	// KindPersistence means the organization store could not be read or written.
	KindPersistence Kind = "persistence"
	// KindTransport means the model provider call failed.
	KindTransport Kind = "transport"
	// KindValidation means data (usually model output) did not have the expected shape.
	KindValidation Kind = "validation"
)

// Error is a classified failure. Raw holds the offending text for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Raw     string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() (msg string) {
	if e.Err != nil {
		msg = fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
		return msg
	}
	msg = fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() (err error) {
	err = e.Err
	return err
}

func newError(kind Kind, message string, cause error) (e *Error) {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	e = &Error{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
	return e
}

// Configuration reports a missing credential or invalid setting.
func Configuration(message string, cause error) (e *Error) {
	e = newError(KindConfiguration, message, cause)
	return e
}

// Persistence reports a store that cannot be read or written.
func Persistence(message string, cause error) (e *Error) {
	e = newError(KindPersistence, message, cause)
	return e
}

// Transport reports a failed provider call.
func Transport(message string, cause error) (e *Error) {
	e = newError(KindTransport, message, cause)
	return e
}

// Validation reports malformed data. raw is kept for diagnosis.
func Validation(message, raw string, cause error) (e *Error) {
	e = newError(KindValidation, message, cause)
	e.Raw = raw
	return e
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) (kind Kind) {
	var classified *Error
	if errors.As(err, &classified) {
		kind = classified.Kind
	}
	return kind
}

// RawOf returns the raw text attached to a validation failure, if any.
func RawOf(err error) (raw string) {
	var classified *Error
	if errors.As(err, &classified) {
		raw = classified.Raw
	}
	return raw
}

// IsConfiguration reports whether err is a configuration failure.
func IsConfiguration(err error) (ok bool) {
	ok = KindOf(err) == KindConfiguration
	return ok
}

// IsPersistence reports whether err is a persistence failure.
func IsPersistence(err error) (ok bool) {
	ok = KindOf(err) == KindPersistence
	return ok
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) (ok bool) {
	ok = KindOf(err) == KindTransport
	return ok
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) (ok bool) {
	ok = KindOf(err) == KindValidation
	return ok
}
