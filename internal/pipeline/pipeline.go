// Package pipeline contains the result type shared by every lookup.
//
// Each lookup fetches, extracts, and presents data. The outcome is
// one of four kinds: a success carrying a value, a miss (the remote
// API answered but had no data for the input), a transport failure
// (network error, timeout, bad status, or malformed body), or an
// input error (the user passed something we cannot use).
package pipeline

import (
	"errors"

	"github.com/apitour/apitour-cli/internal/httpclientx"
)

// Kind is the kind of outcome of a lookup.
type Kind int

const (
	// KindSuccess means the lookup produced a value.
	KindSuccess Kind = iota

	// KindMiss means the remote API had no data for the input.
	KindMiss

	// KindTransportFailure means we could not get a usable response.
	KindTransportFailure

	// KindInputError means the input was rejected before any request.
	KindInputError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindMiss:
		return "miss"
	case KindTransportFailure:
		return "transport_failure"
	case KindInputError:
		return "input_error"
	default:
		return "unknown"
	}
}

var (
	// ErrMiss is the sentinel matched by every [*MissError].
	ErrMiss = errors.New("no data")

	// ErrInvalidInput is the sentinel matched by every [*InputError].
	ErrInvalidInput = errors.New("invalid input")
)

// MissError indicates that the remote API had no data.
type MissError struct {
	Reason string
}

// Error implements error.
func (e *MissError) Error() string {
	return e.Reason
}

// Is allows errors.Is(err, ErrMiss) to work.
func (e *MissError) Is(target error) bool {
	return target == ErrMiss
}

// NewMiss returns a new [*MissError] with the given reason.
func NewMiss(reason string) error {
	return &MissError{Reason: reason}
}

// InputError indicates that the user input is not acceptable.
type InputError struct {
	Reason string
}

// Error implements error.
func (e *InputError) Error() string {
	return e.Reason
}

// Is allows errors.Is(err, ErrInvalidInput) to work.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputError returns a new [*InputError] with the given reason.
func NewInputError(reason string) error {
	return &InputError{Reason: reason}
}

// Result is the outcome of a lookup.
type Result[T any] struct {
	// Kind is the outcome kind.
	Kind Kind

	// Value is only meaningful when Kind is KindSuccess.
	Value T

	// Reason is a human readable explanation for non-successful outcomes.
	Reason string
}

// OK returns whether the result is a success.
func (r Result[T]) OK() bool {
	return r.Kind == KindSuccess
}

// Success constructs a successful [Result].
func Success[T any](value T) Result[T] {
	return Result[T]{Kind: KindSuccess, Value: value}
}

// Classify converts the (value, err) pair returned by a service client
// into a [Result]. A 404 status counts as a miss.
func Classify[T any](value T, err error) Result[T] {
	if err == nil {
		return Success(value)
	}
	var (
		zero   T
		status *httpclientx.ErrRequestFailed
	)
	switch {
	case errors.Is(err, ErrMiss):
		return Result[T]{Kind: KindMiss, Value: zero, Reason: err.Error()}
	case errors.Is(err, ErrInvalidInput):
		return Result[T]{Kind: KindInputError, Value: zero, Reason: err.Error()}
	case errors.As(err, &status) && status.StatusCode == 404:
		return Result[T]{Kind: KindMiss, Value: zero, Reason: "not found"}
	default:
		return Result[T]{Kind: KindTransportFailure, Value: zero, Reason: err.Error()}
	}
}
