// Package pipe provides a minimal value pipeline: seed a value, apply
// transformations in order, retrieve the final value.
//
// Key operations:
// - From: seed a pipe with a value
// - To (method): apply a same-type transformation
// - To (package-level): apply a type-changing transformation
// - Tee: run a side effect without changing the value
// - Exec: retrieve the final value
package pipe
