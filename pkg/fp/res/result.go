package res

import (
	"errors"
	"fmt"

	"github.com/ib-77/fpcore/pkg/fp"
	"github.com/ib-77/fpcore/pkg/fp/tagerr"
)

// Result holds either a success value or an error. The zero value is an
// Err with a nil error; construct through Ok, Err, From or Try.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

var _ fp.Fallible[int] = Result[int]{}

// Ok constructs a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err constructs a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From lifts an idiomatic (value, error) return into a Result. A non-nil
// error wins over the value.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk returns true if the operation succeeded.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the operation failed.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Err returns the error if the operation failed, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the error, mirroring a plain Go return.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success value. On Err it panics with an UnwrapError
// tagged error embedding the error; failure at an Unwrap site is a logic
// error in the caller.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(tagerr.NewUnwrap(fmt.Sprintf("called Unwrap on an Err Result: %v", r.err)))
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T]) Expect(message string) T {
	if !r.ok {
		panic(tagerr.NewUnwrap(message))
	}
	return r.value
}

// UnwrapOr returns the success value, or def on Err.
func (r Result[T]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapErr returns the error. On Ok it panics with an UnwrapError tagged
// error embedding the success value, guarding against misuse.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(tagerr.NewUnwrap(fmt.Sprintf("called UnwrapErr on an Ok Result: %v", r.value)))
	}
	return r.err
}

// Map applies f to a success value. Transforms that change the value type
// use the package-level Map.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.ok {
		return r
	}
	return Ok(f(r.value))
}

// MapErr transforms the error, preserving success untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// AndThen chains a function that itself returns a Result.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// Tee runs onOk for its side effect on success and returns the receiver
// unchanged.
func (r Result[T]) Tee(onOk func(T)) Result[T] {
	if r.ok {
		onOk(r.value)
	}
	return r
}

// Or returns r if it succeeded, otherwise alt.
func (r Result[T]) Or(alt Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return alt
}

// Map transforms a success value into Ok of f's result. Err passes through
// unchanged.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if !r.ok {
		return Err[Out](r.err)
	}
	return Ok(f(r.value))
}

// AndThen applies f to a success value and returns f's Result directly,
// flattening one level. Err short-circuits unchanged.
func AndThen[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if !r.ok {
		return Err[Out](r.err)
	}
	return f(r.value)
}

// Match dispatches to exactly one handler and returns its result.
func Match[In, Out any](r Result[In], onOk func(In) Out, onErr func(error) Out) Out {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Collect gathers the success values of all results. When any fail, it
// returns an Err joining every error encountered; fp.GetErrors recovers
// them individually.
func Collect[T any](results ...Result[T]) Result[[]T] {
	var errs []error
	values := make([]T, 0, len(results))

	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}

	if len(errs) > 0 {
		return Err[[]T](errors.Join(errs...))
	}
	return Ok(values)
}
