package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"studyplan/backend/models"
)

// Column headers of the catalog sheet.
const (
	ColCourse    = "Course"
	ColModule    = "Module"
	ColTopics    = "Topics"
	ColColabLink = "colab_link"
	ColHours     = "Hours"
)

var requiredColumns = []string{ColCourse, ColModule, ColTopics}

type columns map[string]int

func (cols columns) cell(row []string, name string) string {
	i, ok := cols[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseRows turns a header row plus data rows into modules.
// Blank rows are skipped; a row with some but not all identity cells is an error.
func ParseRows(rows [][]string) ([]models.Module, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	cols := make(columns, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup && key != "" {
			cols[key] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", name)
		}
	}

	modules := make([]models.Module, 0, len(rows)-1)
	seen := make(map[string]int, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		course := cols.cell(row, ColCourse)
		module := cols.cell(row, ColModule)
		topics := cols.cell(row, ColTopics)
		if course == "" && module == "" && topics == "" {
			continue
		}
		if course == "" || module == "" {
			return nil, fmt.Errorf("catalog row %d: Course and Module are required", line)
		}

		m := models.Module{
			Course:    course,
			Module:    module,
			Topics:    topics,
			ColabLink: cols.cell(row, ColColabLink),
			Weight:    parseHours(cols.cell(row, ColHours)),
		}
		if prev, dup := seen[m.Label()]; dup {
			return nil, fmt.Errorf("catalog row %d: duplicate module %q (first seen on row %d)", line, m.Label(), prev)
		}
		seen[m.Label()] = line
		modules = append(modules, m)
	}
	return modules, nil
}

func parseHours(s string) float64 {
	if s == "" {
		return models.DefaultWeight
	}
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return models.DefaultWeight
	}
	return hours
}
