package planner

import (
	"fmt"

	"studyplan/backend/models"
)

func makeModules(n int) []models.Module {
	modules := make([]models.Module, n)
	for i := range modules {
		modules[i] = models.Module{
			Course: fmt.Sprintf("Course %d", i/5+1),
			Module: fmt.Sprintf("M%02d", i+1),
			Topics: fmt.Sprintf("Topic %d", i+1),
			Weight: models.DefaultWeight,
		}
	}
	return modules
}

func flatten(schedule models.Schedule) []models.Module {
	var out []models.Module
	for _, day := range schedule {
		out = append(out, day.Topics...)
	}
	return out
}
