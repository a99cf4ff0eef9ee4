package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Chain wraps an outcome.Result to enable fluent same-type composition.
type Chain[T any] struct {
	res outcome.Result[T]
}

func Start[T any](r outcome.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(outcome.Success(v))
}

func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes functions that already return outcome.Result[T]
func (c Chain[T]) Then(onSuccess func(T) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: outcome.Bind(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	return Chain[T]{res: outcome.TryMap(c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	return Chain[T]{res: outcome.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the
// result; nil callbacks are skipped
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(outcome.Error)) Chain[T] {
	if e, failed := c.res.Err(); failed {
		if onFailure != nil {
			onFailure(e)
		}
		return c
	}

	if onSuccess != nil {
		v, _ := c.res.Value()
		onSuccess(v)
	}
	return c
}

// Or keeps the receiver when it succeeded, otherwise the alternative when
// that one succeeded, otherwise the receiver's failure
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And yields the first failure of the pair, or the required chain when both
// succeeded
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value, delegating to outcome.Match
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(outcome.Error) T) T {
	return outcome.Match(c.res, onSuccess, onFailure)
}
