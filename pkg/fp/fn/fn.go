package fn

import "github.com/ib-77/fpcore/pkg/fp/pipe"

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type. It pairs with Match handlers that
// only produce side effects.
type Unit = struct{}

// Compose is left-to-right function composition:
// Compose(f, g)(x) == g(f(x)). Longer pipelines chain by composing the
// composed function again; every call returns a fresh independent
// function.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Identity returns its argument unchanged. It is the left and right
// identity of Compose.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields v.
func Const[B, A any](v A) func(B) A {
	return func(B) A {
		return v
	}
}

// Flip reverses the argument order of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Pipe seeds a value pipeline, re-exported from the pipe package so
// combinator call sites need a single import.
func Pipe[T any](v T) pipe.Pipe[T] {
	return pipe.From(v)
}

// PipeTo is the type-changing pipeline step, re-exported from pipe.
func PipeTo[In, Out any](p pipe.Pipe[In], f func(In) Out) pipe.Pipe[Out] {
	return pipe.To(p, f)
}
