package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Provider[V any] interface {
	// Value returns the payload and whether the result is successful
	Value() (V, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// ID identifies the result for diagnostics
	ID() uuid.UUID
}

// WithError defines an interface for types that carry a value or an error
type WithError[V any] interface {
	Provider[V]
	// Err returns the error and whether the result failed
	Err() (Error, bool)
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithError[int] = Result[int]{}
