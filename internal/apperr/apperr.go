package apperr

import "errors"

// Kind classifies an error for the presentation layer.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindAuth            Kind = "auth"
	KindRange           Kind = "range"
	KindEmptyCart       Kind = "empty_cart"
	KindUnauthenticated Kind = "unauthenticated"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

// Error is a user-facing error with a kind and a display message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New returns an *Error. Compare sentinels with errors.Is.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the display message of the first *Error in err's chain.
// Errors without a kind fall back to err.Error().
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
