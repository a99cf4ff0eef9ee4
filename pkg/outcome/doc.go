// Package outcome provides Result[V], a two-variant discriminated union
// holding either a success payload or an Error value, so that expected
// failure paths travel as data instead of panics.
//
// Highlights:
// - Success/Fail/FailMessage/FailCode/FailFrom: construct Result[V]
// - Try: call a function (V, error) and convert the error to a failure
// - Map/Bind: transform or chain fallible operations, short-circuiting failures
// - Match: reduce to a concrete value via success/failure handlers
// - OnSuccess/OnFailure: side-effect helpers that return the receiver
// - Value/Err/Deconstruct: comma-ok extraction without branching on panics
//
// Domain failures are carried as Error values inside a failed Result.
// Passing a nil function where the active variant requires one is a
// programmer error and panics at the call site.
//
// For fluent synchronous composition over a single payload type, see the
// chain subpackage.
package outcome
