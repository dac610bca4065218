package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToSchedule is returned when no modules remain after filtering.
	ErrNothingToSchedule = errors.New("nothing to schedule")
	// ErrInvalidTargetDays is returned for a target day count below one.
	ErrInvalidTargetDays = errors.New("target days must be at least 1")
	// ErrInvariant is the parent of every InvariantError.
	ErrInvariant = errors.New("schedule invariant violated")
)

// InvariantError reports an allocation that broke one of the schedule
// invariants. It always indicates a logic defect, never bad input.
type InvariantError struct {
	Rule     string
	Expected int
	Got      int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s (expected %d, got %d)", ErrInvariant, e.Rule, e.Expected, e.Got)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Invariant rules checked by Verify.
const (
	RuleModuleCount = "module count mismatch"
	RuleOrder       = "catalog position placed out of order on day"
	RuleDayLimit    = "more days than target"
	RuleEmptyDay    = "empty day emitted"
	RuleNumbering   = "day numbers not dense"
)
