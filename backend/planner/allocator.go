package planner

import (
	"fmt"
	"slices"

	"studyplan/backend/models"
)

// Strategy names the allocation branch taken for n modules over targetDays.
func Strategy(n, targetDays int) string {
	if n <= targetDays {
		return "one module per day"
	}
	return fmt.Sprintf("base %d per day, %d days get +1", n/targetDays, n%targetDays)
}

// ExtraSlots returns the 0-based day-slots that receive base+1 modules.
// It is empty when every module fits on its own day.
func ExtraSlots(n, targetDays int, pace Pace) map[int]struct{} {
	slots := make(map[int]struct{})
	if targetDays < 1 || n <= targetDays {
		return slots
	}

	extra := n % targetDays
	switch pace {
	case PaceIntensive:
		for i := 0; i < extra; i++ {
			slots[i] = struct{}{}
		}
	case PaceRelaxed:
		for i := targetDays - extra; i < targetDays; i++ {
			slots[i] = struct{}{}
		}
	default:
		if extra == 0 {
			return slots
		}
		// step >= 1 because extra < targetDays; indices are collected as a
		// set so any collision collapses instead of double-booking a slot.
		step := float64(targetDays) / float64(extra)
		for i := 0; i < extra; i++ {
			slots[int(float64(i)*step)] = struct{}{}
		}
	}
	return slots
}

// Allocate assigns every module to exactly one day, keeping catalog order.
//
// With no more modules than days each module gets its own day and surplus
// days are left unused. Otherwise each of the targetDays slots gets
// n/targetDays modules and the n%targetDays remainder goes to the slots
// chosen by pace (see ExtraSlots). Slots are filled front to back and
// walking stops once modules run out, so days are never empty and are
// numbered densely from 1.
func Allocate(modules []models.Module, targetDays int, pace Pace) (models.Schedule, error) {
	if targetDays < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTargetDays, targetDays)
	}
	n := len(modules)
	if n == 0 {
		return nil, ErrNothingToSchedule
	}

	var schedule models.Schedule
	if n <= targetDays {
		schedule = make(models.Schedule, 0, n)
		for i, m := range modules {
			schedule = append(schedule, models.Day{
				DayNumber: i + 1,
				Topics:    []models.Module{m},
			})
		}
	} else {
		base := n / targetDays
		extra := ExtraSlots(n, targetDays, pace)
		schedule = make(models.Schedule, 0, targetDays)

		next := 0
		for slot := 0; slot < targetDays && next < n; slot++ {
			count := base
			if _, ok := extra[slot]; ok {
				count++
			}
			end := min(next+count, n)
			if end == next {
				continue
			}
			schedule = append(schedule, models.Day{
				DayNumber: len(schedule) + 1,
				Topics:    slices.Clone(modules[next:end]),
			})
			next = end
		}
	}

	if err := Verify(schedule, modules, targetDays); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Verify checks a schedule against the modules it was built from.
// The first broken invariant is returned as an *InvariantError.
func Verify(schedule models.Schedule, modules []models.Module, targetDays int) error {
	if got := schedule.ModuleCount(); got != len(modules) {
		return &InvariantError{Rule: RuleModuleCount, Expected: len(modules), Got: got}
	}
	if len(schedule) > targetDays {
		return &InvariantError{Rule: RuleDayLimit, Expected: targetDays, Got: len(schedule)}
	}

	pos := 0
	for i, day := range schedule {
		if day.DayNumber != i+1 {
			return &InvariantError{Rule: RuleNumbering, Expected: i + 1, Got: day.DayNumber}
		}
		if len(day.Topics) == 0 {
			return &InvariantError{Rule: RuleEmptyDay, Expected: 1, Got: 0}
		}
		for _, m := range day.Topics {
			if m != modules[pos] {
				return &InvariantError{Rule: RuleOrder, Expected: pos, Got: day.DayNumber}
			}
			pos++
		}
	}
	return nil
}
