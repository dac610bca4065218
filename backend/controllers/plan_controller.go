package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"studyplan/backend/catalog"
	"studyplan/backend/config"
	"studyplan/backend/export"
	"studyplan/backend/models"
	"studyplan/backend/planner"
	"studyplan/backend/utils"
)

type PlanController struct {
	Catalog catalog.Loader
	Cfg     *config.Config
}

func NewPlanController(loader catalog.Loader, cfg *config.Config) *PlanController {
	return &PlanController{Catalog: loader, Cfg: cfg}
}

type PlanRequest struct {
	StartDate        string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Pace             string   `json:"pace"`
	CompletedModules []string `json:"completed_modules"`
}

type PlanResponse struct {
	Success    bool               `json:"success"`
	Pace       planner.Pace       `json:"pace"`
	TargetDays int                `json:"target_days"`
	Schedule   []models.DatedDay  `json:"schedule"`
	Metrics    models.PlanMetrics `json:"metrics"`
}

type ExportRequest struct {
	Schedule  []models.Day `json:"schedule" validate:"dive"`
	StartDate string       `json:"start_date" validate:"required,datetime=2006-01-02"`
	Pace      string       `json:"pace"`
}

type ModuleOption struct {
	Label  string `json:"label"`
	Course string `json:"course"`
	Module string `json:"module"`
	Topics string `json:"topics"`
}

func (pc *PlanController) minPlanDays() int {
	if pc.Cfg == nil || pc.Cfg.MinPlanDays < 1 {
		return 1
	}
	return pc.Cfg.MinPlanDays
}

// Generate godoc
// @Summary Generate study plan
// @Description Distributes the remaining catalog modules over the days between start_date and end_date
// @Tags plans
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan window, pace and completed modules"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /plans [post]
func (pc *PlanController) Generate(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := zerolog.Ctx(ctx)

	var input PlanRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, "Invalid plan request", errs)
	}

	start, err := planner.ParseDate(input.StartDate)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	end, err := planner.ParseDate(input.EndDate)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	targetDays := planner.TargetDays(start, end)
	pace := planner.ParsePace(input.Pace)
	log.Debug().
		Str("start_date", input.StartDate).
		Str("end_date", input.EndDate).
		Int("target_days", targetDays).
		Str("pace", string(pace)).
		Int("completed", len(input.CompletedModules)).
		Msg("plan requested")

	if minDays := pc.minPlanDays(); targetDays < minDays {
		log.Info().Int("target_days", targetDays).Int("min_days", minDays).Msg("plan window too short")
		return utils.BadRequest(c, fmt.Sprintf("Minimum %d days required", minDays))
	}

	modules, err := pc.Catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	schedule, err := planner.Build(ctx, modules, planner.NewCompletedSet(input.CompletedModules), targetDays, pace)
	switch {
	case errors.Is(err, planner.ErrNothingToSchedule):
		return utils.BadRequest(c, "No schedule generated: nothing to schedule")
	case errors.Is(err, planner.ErrInvariant):
		log.Error().Err(err).Int("modules", len(modules)).Int("target_days", targetDays).Msg("allocation invariant violated")
		return utils.InternalServerError(c, err.Error())
	case err != nil:
		return err
	}

	return c.JSON(PlanResponse{
		Success:    true,
		Pace:       pace,
		TargetDays: targetDays,
		Schedule:   planner.Materialize(schedule, start),
		Metrics:    planner.Summarize(schedule, start, targetDays),
	})
}

// Download godoc
// @Summary Export study plan
// @Description Returns a previously generated schedule as an xlsx workbook
// @Tags plans
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body ExportRequest true "Schedule, start date and pace"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Router /plans/export [post]
func (pc *PlanController) Download(c *fiber.Ctx) error {
	var input ExportRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, "Invalid export request", errs)
	}

	start, err := planner.ParseDate(input.StartDate)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	pace := planner.ParsePace(input.Pace)

	rows := export.Rows(models.Schedule(input.Schedule), start)
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rows); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	zerolog.Ctx(c.UserContext()).Info().
		Int("days", len(input.Schedule)).
		Int("rows", len(rows)).
		Msg("plan exported")

	c.Attachment(export.Filename(input.StartDate, pace))
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(buf.Bytes())
}

// ListModules godoc
// @Summary List catalog modules
// @Description Returns catalog modules in study order with the labels used for completed_modules
// @Tags plans
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /modules [get]
func (pc *PlanController) ListModules(c *fiber.Ctx) error {
	modules, err := pc.Catalog.Load(c.UserContext())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	options := make([]ModuleOption, 0, len(modules))
	for _, m := range modules {
		options = append(options, ModuleOption{
			Label:  m.Label(),
			Course: m.Course,
			Module: m.Module,
			Topics: m.Topics,
		})
	}

	return utils.Success(c, fiber.StatusOK, options, fiber.Map{"total": len(options)})
}

// GetPaces godoc
// @Summary Pace options
// @Description Advises which paces suit the window between start_date and end_date
// @Tags plans
// @Produce json
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /paces [get]
func (pc *PlanController) GetPaces(c *fiber.Ctx) error {
	start, err := planner.ParseDate(c.Query("start_date"))
	if err != nil {
		return utils.BadRequest(c, "Invalid start_date format. Use YYYY-MM-DD")
	}
	end, err := planner.ParseDate(c.Query("end_date"))
	if err != nil {
		return utils.BadRequest(c, "Invalid end_date format. Use YYYY-MM-DD")
	}

	days := planner.TargetDays(start, end)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"days":      days,
		"min_days":  pc.minPlanDays(),
		"suggested": planner.SuggestedPace(days),
		"options":   planner.AvailablePaces(days),
	})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
