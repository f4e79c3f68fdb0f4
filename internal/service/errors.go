package service

import (
	"errors"
	"fmt"
)

// ErrDraftNotFound is returned when a draft ID does not resolve to a
// stored draft.
var ErrDraftNotFound = errors.New("draft not found")

// ErrInvalidStepAction is returned when a (step, action) pair has no entry
// in the transition table. No state is mutated.
var ErrInvalidStepAction = errors.New("invalid step/action combination")

// ValidationError is a caller-correctable request problem: a missing or
// malformed field, or an out-of-range heading index. It never mutates state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// UpstreamError reports a failure from the generation engine or the
// compiler, distinguished from store failures so callers can decide
// whether to retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StoreError reports a draft store failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("draft store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
