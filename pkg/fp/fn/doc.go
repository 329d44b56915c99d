// Package fn provides stateless function combinators, independent of the
// container packages.
//
// Key operations:
// - Compose: left-to-right function composition
// - Identity/Const: the trivial functions, useful with higher-order code
// - Flip: reverse the arguments of a binary function
// - Tap/TapAsync: run a side effect without letting its failure reach the caller
// - Pipe/PipeTo: value chaining, re-exported from the pipe package
package fn
