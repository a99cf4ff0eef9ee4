package outcome

import "errors"

// Map applies mapper to the payload of a successful result and wraps the
// output as a new success. A failed result passes through with its error
// and stamps unchanged and mapper is never invoked. mapper must not be nil,
// whichever variant is active.
func Map[V, W any](r Result[V], mapper func(V) W) Result[W] {
	if mapper == nil {
		panic("outcome: Map called with nil mapper")
	}

	if r.isSuccess {
		return Success(mapper(r.value))
	}
	return failFrom[V, W](r)
}

// Bind chains a fallible operation: binder runs only on success and its
// Result becomes the output. A failed result short-circuits without
// invoking binder. binder must not be nil, whichever variant is active.
func Bind[V, W any](r Result[V], binder func(V) Result[W]) Result[W] {
	if binder == nil {
		panic("outcome: Bind called with nil binder")
	}

	if r.isSuccess {
		return binder(r.value)
	}
	return failFrom[V, W](r)
}

// Match reduces the result to a value of type R by invoking exactly one of
// the two handlers. Only the handler the active variant needs must be
// non-nil; the other is never inspected.
func Match[V, R any](r Result[V], onSuccess func(V) R, onFailure func(Error) R) R {
	if r.isSuccess {
		if onSuccess == nil {
			panic("outcome: Match on a success requires onSuccess")
		}
		return onSuccess(r.value)
	}

	if onFailure == nil {
		panic("outcome: Match on a failure requires onFailure")
	}
	return onFailure(r.err)
}

// TryMap runs a (W, error) function on the payload, converting a returned
// error into a failure with that error as cause. Failed inputs
// short-circuit without invoking fn.
func TryMap[V, W any](r Result[V], fn func(V) (W, error)) Result[W] {
	if fn == nil {
		panic("outcome: TryMap called with nil fn")
	}

	if r.isSuccess {
		w, err := fn(r.value)
		if err != nil {
			return FailFrom[W](err)
		}
		return Success(w)
	}
	return failFrom[V, W](r)
}

// MapError transforms the error of a failed result; successes pass through
// untouched.
func MapError[V any](r Result[V], fn func(Error) Error) Result[V] {
	if fn == nil {
		panic("outcome: MapError called with nil fn")
	}

	if r.isSuccess {
		return r
	}

	out := r
	out.err = fn(r.err)
	return out
}

// Validate gates a successful result on a predicate, failing with message
// when the predicate rejects the payload. Failed inputs pass through.
func Validate[V any](r Result[V], valid func(V) bool, message string) Result[V] {
	if valid == nil {
		panic("outcome: Validate called with nil predicate")
	}

	if !r.isSuccess {
		return r
	}
	if valid(r.value) {
		return r
	}
	return FailMessage[V](message)
}

// ValidateAll applies each check to the input result. With breakOnError the
// first failing check's result is returned as-is; otherwise failures are
// collected and joined into a single failure via errors.Join. All checks
// passing returns the input unchanged.
func ValidateAll[V any](r Result[V], breakOnError bool, checks ...func(Result[V]) Result[V]) Result[V] {
	if !r.isSuccess || len(checks) == 0 {
		return r
	}

	var errs []error
	for _, check := range checks {
		out := check(r)
		if e, failed := out.Err(); failed {
			if breakOnError {
				return out
			}
			errs = append(errs, e)
		}
	}

	if len(errs) == 0 {
		return r
	}
	return FailFrom[V](errors.Join(errs...))
}
