package anim

import (
	"errors"
	"fmt"
)

// InvariantError reports a violated internal contract: malformed input
// reaching this stage means the upstream parsing/validation stage has a
// bug, not the user. These conditions are fatal for the current
// generation run and are raised via panic; the CLI boundary recovers them
// and maps them to a command error.
type InvariantError struct {
	// Code identifies the violated invariant.
	Code InvariantCode

	// Message is a human-readable description.
	Message string

	// Detail carries the offending value, if useful for diagnosis.
	Detail string
}

// InvariantCode categorizes invariant violations.
type InvariantCode string

const (
	// CodeEmptyTimeline indicates a timeline with no keyframes reached
	// the canonicalizer.
	CodeEmptyTimeline InvariantCode = "IV001"

	// CodeUnknownEasing indicates an unrecognized easing kind.
	CodeUnknownEasing InvariantCode = "IV002"
)

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvariantError reports whether err (or anything it wraps) is an
// InvariantError. Uses errors.As to handle wrapped errors.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// ViolatedEmptyTimeline builds the invariant error for a timeline with an
// empty keyframe sequence.
func ViolatedEmptyTimeline() *InvariantError {
	return &InvariantError{
		Code:    CodeEmptyTimeline,
		Message: "timeline has no keyframes",
	}
}

func violatedUnknownEasing(k EasingKind) *InvariantError {
	return &InvariantError{
		Code:    CodeUnknownEasing,
		Message: "unrecognized easing kind",
		Detail:  fmt.Sprintf("kind=%d", int(k)),
	}
}
