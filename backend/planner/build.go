package planner

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"studyplan/backend/models"
)

// Build filters the catalog and allocates what remains. Diagnostics go to
// the logger carried by ctx.
func Build(ctx context.Context, catalog []models.Module, completed CompletedSet, targetDays int, pace Pace) (models.Schedule, error) {
	log := zerolog.Ctx(ctx)

	remaining := Filter(catalog, completed)
	if len(remaining) == 0 {
		log.Info().
			Int("catalog_modules", len(catalog)).
			Int("completed", len(completed)).
			Msg("no modules left to schedule")
		return nil, ErrNothingToSchedule
	}

	log.Debug().
		Int("modules", len(remaining)).
		Int("target_days", targetDays).
		Str("pace", string(pace)).
		Str("strategy", Strategy(len(remaining), targetDays)).
		Msg("scheduling modules")

	schedule, err := Allocate(remaining, targetDays, pace)
	if err != nil {
		var inv *InvariantError
		if errors.As(err, &inv) {
			log.Warn().
				Err(err).
				Str("rule", inv.Rule).
				Int("expected", inv.Expected).
				Int("got", inv.Got).
				Msg("allocation failed verification")
		}
		return nil, err
	}

	log.Info().
		Int("days_used", len(schedule)).
		Int("modules_scheduled", schedule.ModuleCount()).
		Ints("distribution", schedule.Distribution()).
		Msg("schedule created")
	return schedule, nil
}
