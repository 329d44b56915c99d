package res

import "github.com/ib-77/fpcore/pkg/fp/opt"

// FromOption lifts an Option into a Result, substituting err for absence.
func FromOption[T any](o opt.Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// ToOption drops the error channel, keeping only success as presence.
func ToOption[T any](r Result[T]) opt.Option[T] {
	if r.ok {
		return opt.Some(r.value)
	}
	return opt.None[T]()
}
