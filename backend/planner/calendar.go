package planner

import (
	"fmt"
	"time"

	"studyplan/backend/models"
)

// DateLayout is the wire format for every date the service accepts or returns.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// TargetDays counts the days in the inclusive window [start, end].
func TargetDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// DayDate returns the calendar date of a 1-based day number.
func DayDate(start time.Time, dayNumber int) time.Time {
	return start.AddDate(0, 0, dayNumber-1)
}

// Materialize places each day of the schedule on the calendar.
func Materialize(schedule models.Schedule, start time.Time) []models.DatedDay {
	days := make([]models.DatedDay, 0, len(schedule))
	for _, day := range schedule {
		date := DayDate(start, day.DayNumber)
		days = append(days, models.DatedDay{
			DayNumber: day.DayNumber,
			Date:      date.Format(DateLayout),
			Weekday:   date.Weekday().String(),
			Topics:    day.Topics,
		})
	}
	return days
}

// Summarize computes the response metrics for a schedule.
func Summarize(schedule models.Schedule, start time.Time, targetDays int) models.PlanMetrics {
	return models.PlanMetrics{
		ScheduledDays: len(schedule),
		TotalModules:  schedule.ModuleCount(),
		FinishDate:    DayDate(start, len(schedule)).Format(DateLayout),
		BufferDays:    targetDays - len(schedule),
	}
}
