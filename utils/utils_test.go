package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barbersystem-backend/utils"
)

func TestBeginningOfMonth(t *testing.T) {
	instant := time.Date(2026, time.August, 29, 15, 42, 7, 123, time.Local)
	start := utils.BeginningOfMonth(instant)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.Local), start)
}

func TestDaysBetween(t *testing.T) {
	// Time of day must not matter, only the calendar date
	morning := time.Date(2026, time.August, 29, 1, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.September, 1, 23, 0, 0, 0, time.Local)

	assert.Equal(t, 3, utils.DaysBetween(morning, evening))
	assert.Equal(t, -3, utils.DaysBetween(evening, morning))
	assert.Equal(t, 0, utils.DaysBetween(morning, morning.Add(5*time.Hour)))
}

func TestDaysBetweenAcrossSpringForward(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2026-03-08 is the 23-hour spring-forward day in New York; it still
	// counts as a full calendar day
	before := time.Date(2026, time.March, 8, 0, 0, 0, 0, ny)
	after := time.Date(2026, time.March, 9, 12, 0, 0, 0, ny)

	assert.Equal(t, 1, utils.DaysBetween(before, after))
	assert.Equal(t, -1, utils.DaysBetween(after, before))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 35,00", utils.FormatCurrency(35.0))
	assert.Equal(t, "R$ 17,50", utils.FormatCurrency(17.5))
	assert.Equal(t, "R$ 1.234,56", utils.FormatCurrency(1234.56))
	assert.Equal(t, "R$ 0,00", utils.FormatCurrency(0))
	assert.Equal(t, "-R$ 12,00", utils.FormatCurrency(-12))
}
