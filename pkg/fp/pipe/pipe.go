package pipe

// Pipe carries a value through a chain of transformations.
type Pipe[T any] struct {
	v T
}

// From seeds a pipe with a value.
func From[T any](v T) Pipe[T] {
	return Pipe[T]{v: v}
}

// To applies f and rewraps the result. Steps that change the value type
// use the package-level To.
func (p Pipe[T]) To(f func(T) T) Pipe[T] {
	return Pipe[T]{v: f(p.v)}
}

// Tee runs f for its side effect without changing the value.
func (p Pipe[T]) Tee(f func(T)) Pipe[T] {
	f(p.v)
	return p
}

// Exec retrieves the final value.
func (p Pipe[T]) Exec() T {
	return p.v
}

// To applies a transformation that changes the value type.
func To[In, Out any](p Pipe[In], f func(In) Out) Pipe[Out] {
	return Pipe[Out]{v: f(p.v)}
}
