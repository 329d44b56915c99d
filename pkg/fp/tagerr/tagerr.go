package tagerr

import (
	"errors"
	"fmt"
)

// Tags used by the container packages. Downstream code may define its own;
// the predicates below treat every *Error alike.
const (
	TagUnwrap   = "UnwrapError"
	TagTryCatch = "TryCatchError"
)

// Error is an error value carrying a discriminant tag and, optionally, the
// original failure that produced it. The cause is any value, not only an
// error, because a recovered panic carries whatever was thrown.
type Error struct {
	tag     string
	message string
	cause   any
}

func New(tag, message string) *Error {
	return &Error{tag: tag, message: message}
}

func Newf(tag, format string, args ...any) *Error {
	return &Error{tag: tag, message: fmt.Sprintf(format, args...)}
}

// NewUnwrap signals an unwrap call on the variant that does not hold the
// requested payload.
func NewUnwrap(message string) *Error {
	return &Error{tag: TagUnwrap, message: message}
}

// NewTryCatch wraps a recovered panic value.
func NewTryCatch(cause any) *Error {
	return &Error{tag: TagTryCatch, message: "caught panic", cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

// Tag returns the discriminant naming the error kind.
func (e *Error) Tag() string {
	return e.tag
}

func (e *Error) Message() string {
	return e.message
}

// Cause returns the original failure value, which need not be an error.
func (e *Error) Cause() any {
	return e.cause
}

// Unwrap exposes an error cause to errors.Is and errors.As. A non-error
// cause is reachable only through Cause.
func (e *Error) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// Is reports whether err is, or wraps, an *Error. Membership is decided by
// errors.As, so a foreign type merely exposing a Tag method does not pass.
func Is(err error) bool {
	var te *Error
	return errors.As(err, &te)
}

// TagOf returns the discriminant of the first *Error in the chain.
func TagOf(err error) (string, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.tag, true
	}
	return "", false
}

// HasTag reports whether the first *Error in the chain carries tag.
func HasTag(err error, tag string) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.tag == tag
	}
	return false
}
