// Package export writes study schedules as spreadsheet files.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"studyplan/backend/models"
	"studyplan/backend/planner"
)

const (
	SheetName   = "Study Plan"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns is the header row of every export.
var Columns = []string{"Day", "Date", "Course", "Module", "Topics", "Colab Link"}

var columnWidths = []float64{6, 12, 24, 12, 60, 40}

// Row is one module on one day.
type Row struct {
	Day       int
	Date      string
	Course    string
	Module    string
	Topics    string
	ColabLink string
}

// Rows flattens a schedule into one row per module.
func Rows(schedule models.Schedule, start time.Time) []Row {
	rows := make([]Row, 0, schedule.ModuleCount())
	for _, day := range schedule {
		date := planner.DayDate(start, day.DayNumber).Format(planner.DateLayout)
		for _, m := range day.Topics {
			rows = append(rows, Row{
				Day:       day.DayNumber,
				Date:      date,
				Course:    m.Course,
				Module:    m.Module,
				Topics:    m.Topics,
				ColabLink: m.ColabLink,
			})
		}
	}
	return rows
}

// Filename returns the download name for a plan starting on start.
func Filename(start string, pace planner.Pace) string {
	return fmt.Sprintf("study_plan_%s_%s.xlsx", start, pace)
}

// WriteXLSX writes rows to w as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Day, r.Date, r.Course, r.Module, r.Topics, r.ColabLink}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

// CountRows reads an export back and returns the number of module rows.
func CountRows(r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("export has no header row")
	}
	return len(rows) - 1, nil
}
