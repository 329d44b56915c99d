// Package res provides Result[T], a container for a computation that
// either succeeded with a value or failed with an error, plus adapters
// that bring idiomatic Go returns, panicking code and detached
// computations into the Result channel.
//
// Same-type transforms are methods; transforms that change the value type
// are package-level functions, since Go methods cannot introduce new type
// parameters.
//
// Key operations:
// - Ok/Err/From: construct a Result
// - Try: run a (T, error) function, recovering panics into the error channel
// - TryAsync: same contract on a detached goroutine, returning a Future
// - IsOk/IsErr: narrow the variant
// - Unwrap/Expect/UnwrapOr/UnwrapErr/Get: extract value or error
// - Map/MapErr/AndThen: transform or chain, short-circuiting on Err
// - Match: reduce to a concrete value via ok/err handlers
// - Collect: gather many Results, joining every error
// - FromOption/ToOption: convert between absence and failure
package res
