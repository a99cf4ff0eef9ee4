package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success payload of type V or an Error. Exactly one
// variant is active, chosen at construction; values are never mutated after
// that, so sharing a Result across goroutines needs no locking.
type Result[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       Error
	isSuccess bool
}

func Success[V any](v V) Result[V] {
	return Result[V]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[V any](e Error) Result[V] {
	return Result[V]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FailMessage[V any](message string) Result[V] {
	return Fail[V](NewError(message))
}

func FailCode[V any](message, code string) Result[V] {
	return Fail[V](NewErrorWithCode(message, code))
}

func FailFrom[V any](cause error) Result[V] {
	return Fail[V](ErrorFrom(cause))
}

// SuccessUnit is the success case for operations that produce no value.
func SuccessUnit() Result[Unit] {
	return Success(UnitValue())
}

// Try invokes fn and converts its error return into a failure whose Error
// keeps fn's error as cause. It is the bridge from (V, error) signatures
// into the Result world; fn must not be nil.
func Try[V any](fn func() (V, error)) Result[V] {
	if fn == nil {
		panic("outcome: Try called with nil fn")
	}

	v, err := fn()
	if err != nil {
		return FailFrom[V](err)
	}
	return Success(v)
}

// failFrom carries a failed result across a payload type change. The error
// value and the diagnostic stamps pass through unchanged, so a failure keeps
// its identity through a whole chain.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[V]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the payload and true on success, the zero value and false
// on failure.
func (r Result[V]) Value() (V, bool) {
	if !r.isSuccess {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Err returns the error and true on failure, the zero Error and false on
// success.
func (r Result[V]) Err() (Error, bool) {
	if r.isSuccess {
		return Error{}, false
	}
	return r.err, true
}

// Deconstruct projects the result into (ok, value, error) in one call.
// The inactive side comes back as its zero value.
func (r Result[V]) Deconstruct() (ok bool, v V, e Error) {
	if r.isSuccess {
		return true, r.value, Error{}
	}
	var zero V
	return false, zero, r.err
}

// OnSuccess invokes fn with the payload iff the result is successful and
// returns the receiver unchanged. fn may be nil only when it would not run.
func (r Result[V]) OnSuccess(fn func(V)) Result[V] {
	if r.isSuccess {
		if fn == nil {
			panic("outcome: OnSuccess on a success requires fn")
		}
		fn(r.value)
	}
	return r
}

// OnFailure invokes fn with the error iff the result is failed and returns
// the receiver unchanged. fn may be nil only when it would not run.
func (r Result[V]) OnFailure(fn func(Error)) Result[V] {
	if !r.isSuccess {
		if fn == nil {
			panic("outcome: OnFailure on a failure requires fn")
		}
		fn(r.err)
	}
	return r
}

// ID identifies the result for diagnostics; failures propagated through
// Map/Bind keep the id of the result that first failed.
func (r Result[V]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[V]) CreatedAt() time.Time {
	return r.createdAt
}
