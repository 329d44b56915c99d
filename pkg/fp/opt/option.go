package opt

import (
	"github.com/ib-77/fpcore/pkg/fp"
	"github.com/ib-77/fpcore/pkg/fp/tagerr"
)

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

var _ fp.Maybe[int] = Option[int]{}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable routes nil values of any nilable kind (pointer, interface,
// map, slice, channel, function) to None and everything else to Some. Zero
// scalars count as present here; see FromZero for the absence-by-zero
// policy.
func FromNullable[T any](v T) Option[T] {
	if fp.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromZero treats the zero value of T as absent, so FromZero(0),
// FromZero("") and FromZero(false) are all None. Use Some or FromNullable
// when a zero scalar must count as present.
func FromZero[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value. On None it panics with an UnwrapError tagged
// error; absence at an Unwrap site is a logic error in the caller.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(tagerr.NewUnwrap("called Unwrap on a None Option"))
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(tagerr.NewUnwrap(message))
	}
	return o.value
}

// UnwrapOr returns the value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// Map applies f to a present value. Transforms that change the value type
// use the package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// AndThen chains a function that itself returns an Option.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return f(o.value)
}

// Or returns o if it holds a value, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

// Map transforms a present value into Some of f's result. f is expected to
// produce a present value; None passes through untouched.
func Map[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return Some(f(o.value))
}

// AndThen applies f to a present value and returns f's Option directly,
// flattening one level.
func AndThen[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return f(o.value)
}

// Match dispatches to exactly one handler and returns its result.
func Match[In, Out any](o Option[In], onSome func(In) Out, onNone func() Out) Out {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
