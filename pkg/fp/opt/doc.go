// Package opt provides Option[T], a container for a value that may be
// absent, with Some and None as its only variants.
//
// Same-type transforms are methods; transforms that change the value type
// are package-level functions, since Go methods cannot introduce new type
// parameters.
//
// Key operations:
// - Some/None: construct an Option
// - FromNullable/FromZero: route absent input to None (nil check vs zero check)
// - IsSome/IsNone: narrow the variant
// - Unwrap/Expect/UnwrapOr/Get: extract the value
// - Map/AndThen: transform or chain on a present value
// - Match: reduce to a concrete value via some/none handlers
package opt
