package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleDay struct {
	DayNumber int `json:"day_number" validate:"gte=1"`
}

type sampleRequest struct {
	StartDate string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	Days      []sampleDay `json:"schedule" validate:"dive"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{StartDate: "2025-01-01"}))

	errs := ValidateStruct(sampleRequest{})
	assert.Equal(t, map[string]string{"start_date": "is required"}, errs)

	errs = ValidateStruct(sampleRequest{
		StartDate: "01/01/2025",
		Days:      []sampleDay{{DayNumber: 1}, {DayNumber: 0}},
	})
	assert.Equal(t, map[string]string{
		"start_date":             "must be a date in YYYY-MM-DD format",
		"schedule[1].day_number": "must be at least 1",
	}, errs)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "info", ParseLevel("").String())
	assert.Equal(t, "info", ParseLevel("loud").String())
}
