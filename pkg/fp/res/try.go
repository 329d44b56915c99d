package res

import "github.com/ib-77/fpcore/pkg/fp/tagerr"

// Try runs fn and converts its outcome into a Result. A returned error
// passes through unchanged; a panic is recovered and wrapped as the cause
// of a TryCatchError tagged error, so failures from foreign code land in
// the Result channel instead of unwinding the caller.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T](tagerr.NewTryCatch(v))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
