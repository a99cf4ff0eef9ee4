// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcome.Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between two chains by variant
// - Finally: reduce to a concrete value via handlers
//
// Operations that change the payload type stay package-level in outcome
// (Map, Bind, TryMap); Go methods cannot introduce type parameters.
package chain
