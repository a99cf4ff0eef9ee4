package outcome

import (
	"fmt"
	"reflect"
)

// Error is an immutable failure descriptor: a message, an optional machine
// code and an optional wrapped cause. The cause is diagnostic only; it never
// drives control flow. The zero Error is the neutral value handed back when
// extraction misses the failure side.
type Error struct {
	message string
	code    string
	cause   error
}

func NewError(message string) Error {
	return Error{message: message}
}

func NewErrorWithCode(message, code string) Error {
	return Error{message: message, code: code}
}

// ErrorFrom builds an Error from a native error: the message is copied from
// cause.Error(), the cause itself is retained for Unwrap, no code is set.
// A nil cause yields the zero Error.
func ErrorFrom(cause error) Error {
	if IsNil(cause) {
		return Error{}
	}
	return Error{message: cause.Error(), cause: cause}
}

func (e Error) Message() string {
	return e.message
}

// Code returns the machine code and whether one is set.
func (e Error) Code() (string, bool) {
	return e.code, e.code != ""
}

// Cause returns the wrapped native error, or nil.
func (e Error) Cause() error {
	return e.cause
}

// Unwrap supports errors.Is / errors.As over the wrapped cause.
func (e Error) Unwrap() error {
	return e.cause
}

func (e Error) IsZero() bool {
	return e.message == "" && e.code == "" && e.cause == nil
}

// Error renders "message", or "[code] message" when a code is set. The
// cause never appears in the textual form.
func (e Error) Error() string {
	if e.code == "" {
		return e.message
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Equal reports value equality: messages must match case-sensitively, codes
// must match (absent equals absent), and causes are compared by runtime type
// and message only. A present cause never equals an absent one.
func (e Error) Equal(other Error) bool {
	if e.message != other.message || e.code != other.code {
		return false
	}

	if e.cause == nil && other.cause == nil {
		return true
	}
	if e.cause == nil || other.cause == nil {
		return false
	}

	return reflect.TypeOf(e.cause) == reflect.TypeOf(other.cause) &&
		e.cause.Error() == other.cause.Error()
}

// IsNil reports whether i is nil, including a typed nil pointer inside a
// non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
