// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the rule errors returned by contract operations.
// A rule error aborts the whole call with no state change; the runtime
// reverts to the pre-call checkpoint when one is returned.
package reverts

import "errors"

// Kind classifies a rule violation.
type Kind int

const (
	// Authorization wrong owner/operator/role caller.
	Authorization Kind = iota + 1
	// Bounds a rate/fee/amount outside its configured ceiling.
	Bounds
	// State an operation invalid for the current state, e.g. insufficient
	// stake or a zero-address target.
	State
	// Capacity the anti-whale transfer cap exceeded.
	Capacity
)

func (k Kind) String() string {
	switch k {
	case Authorization:
		return "authorization"
	case Bounds:
		return "bounds"
	case State:
		return "state"
	case Capacity:
		return "capacity"
	}
	return "unknown"
}

// RuleError a categorized rule violation.
type RuleError struct {
	kind    Kind
	message string
}

func (e *RuleError) Error() string {
	return e.message
}

// Kind returns the violation category.
func (e *RuleError) Kind() Kind {
	return e.kind
}

// Unauthorized creates an Authorization rule error.
func Unauthorized(message string) error {
	return &RuleError{Authorization, message}
}

// OutOfBounds creates a Bounds rule error.
func OutOfBounds(message string) error {
	return &RuleError{Bounds, message}
}

// BadState creates a State rule error.
func BadState(message string) error {
	return &RuleError{State, message}
}

// OverCapacity creates a Capacity rule error.
func OverCapacity(message string) error {
	return &RuleError{Capacity, message}
}

func is(err error, kind Kind) bool {
	var re *RuleError
	return errors.As(err, &re) && re.kind == kind
}

// IsAuthorization reports whether err is an Authorization rule error.
func IsAuthorization(err error) bool { return is(err, Authorization) }

// IsBounds reports whether err is a Bounds rule error.
func IsBounds(err error) bool { return is(err, Bounds) }

// IsState reports whether err is a State rule error.
func IsState(err error) bool { return is(err, State) }

// IsCapacity reports whether err is a Capacity rule error.
func IsCapacity(err error) bool { return is(err, Capacity) }

// IsRule reports whether err is any rule error.
func IsRule(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
