// Package tagerr provides a discriminated error value: a message plus a
// required tag string naming the error kind, with an optional cause holding
// the original failure.
//
// Tags survive wrapping, so mixed error values can be told apart by
// inspecting the discriminant instead of comparing concrete types.
//
// Key operations:
// - New/Newf: construct an error with an explicit tag
// - NewUnwrap: the error raised by unwrapping the wrong variant
// - NewTryCatch: wrap a recovered panic value, keeping it as Cause
// - Is: report whether an error chain contains a tagged error
// - TagOf/HasTag: read or compare the discriminant
package tagerr
