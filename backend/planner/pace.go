package planner

import "strings"

// Pace controls which day-slots receive the remainder modules when there
// are more modules than days.
type Pace string

const (
	PaceIntensive Pace = "intensive"
	PaceRelaxed   Pace = "relaxed"
	PaceBalanced  Pace = "balanced"
)

// ParsePace maps client input onto a Pace. Anything unrecognized is balanced.
func ParsePace(s string) Pace {
	switch Pace(strings.ToLower(strings.TrimSpace(s))) {
	case PaceIntensive:
		return PaceIntensive
	case PaceRelaxed:
		return PaceRelaxed
	default:
		return PaceBalanced
	}
}

// PaceOption describes whether a pace is sensible for a planning window.
type PaceOption struct {
	Pace      Pace   `json:"pace"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailablePaces returns advisory pace options for a window of the given
// number of days. Allocation accepts every pace regardless of this advice.
func AvailablePaces(days int) []PaceOption {
	intensive := PaceOption{Pace: PaceIntensive, Available: true}
	balanced := PaceOption{Pace: PaceBalanced, Available: true}
	relaxed := PaceOption{Pace: PaceRelaxed, Available: true}

	if days < 25 {
		relaxed.Available = false
		relaxed.Reason = "Days are too short to be relaxed"
	}
	if days < 20 {
		balanced.Available = false
		balanced.Reason = "Not enough days for balanced pace"
	}
	if days > 35 {
		intensive.Available = false
		intensive.Reason = "Plenty of time, no need for intensive pace"
	}

	return []PaceOption{intensive, balanced, relaxed}
}

// SuggestedPace picks the first available option, preferring balanced.
func SuggestedPace(days int) Pace {
	options := AvailablePaces(days)
	if options[1].Available {
		return PaceBalanced
	}
	for _, opt := range options {
		if opt.Available {
			return opt.Pace
		}
	}
	return PaceBalanced
}
