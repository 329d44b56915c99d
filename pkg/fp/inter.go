package fp

type ValueProvider[T any] interface {
	// Unwrap returns the contained value, panicking on the wrong variant
	Unwrap() T
	// Expect is Unwrap with a caller-supplied panic message
	Expect(message string) T
	// UnwrapOr returns the contained value, or def
	UnwrapOr(def T) T
}

// Maybe defines an interface for values that may be absent
type Maybe[T any] interface {
	ValueProvider[T]
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if the value is absent
	IsNone() bool
}

// Fallible extends ValueProvider with an error channel
type Fallible[T any] interface {
	ValueProvider[T]
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
	// Err returns the error if the operation failed
	Err() error
}
