package models

// Day is one scheduled study day. DayNumber is 1-based and dense.
type Day struct {
	DayNumber int      `json:"day_number" validate:"gte=1"`
	Topics    []Module `json:"topics" validate:"dive"`
}

// Schedule is the ordered list of days produced by the allocator.
type Schedule []Day

// ModuleCount returns the number of modules across all days.
func (s Schedule) ModuleCount() int {
	total := 0
	for _, day := range s {
		total += len(day.Topics)
	}
	return total
}

// Distribution returns the module count of each day in order.
func (s Schedule) Distribution() []int {
	counts := make([]int, len(s))
	for i, day := range s {
		counts[i] = len(day.Topics)
	}
	return counts
}

// DatedDay is a Day placed on the calendar.
type DatedDay struct {
	DayNumber int      `json:"day_number"`
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	Topics    []Module `json:"topics"`
}

type PlanMetrics struct {
	ScheduledDays int    `json:"scheduled_days"`
	TotalModules  int    `json:"total_modules"`
	FinishDate    string `json:"finish_date"`
	BufferDays    int    `json:"buffer_days"`
}
