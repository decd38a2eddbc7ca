package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDueDate(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	yesterday := today.AddDate(0, 0, -1)
	assert.Equal(t, StatusOverdue, ClassifyDueDate(&yesterday, today))

	tomorrow := today.AddDate(0, 0, 1)
	assert.Equal(t, StatusUpcoming, ClassifyDueDate(&tomorrow, today))

	// Same calendar day counts as due today regardless of time of day.
	laterToday := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)
	assert.Equal(t, StatusDueToday, ClassifyDueDate(&laterToday, today))

	earlierToday := time.Date(2024, 3, 15, 0, 1, 0, 0, time.Local)
	assert.Equal(t, StatusDueToday, ClassifyDueDate(&earlierToday, today))

	assert.Equal(t, "", ClassifyDueDate(nil, today))
}

func TestClassifyDueDateIsPure(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	due := today.AddDate(0, 0, -3)

	first := ClassifyDueDate(&due, today)
	second := ClassifyDueDate(&due, today)
	assert.Equal(t, first, second)
	assert.Equal(t, StatusOverdue, first)
}

func TestNextDueDate(t *testing.T) {
	ref := time.Date(2024, 1, 1, 8, 15, 0, 0, time.Local)

	cases := []struct {
		frequency string
		want      time.Time
	}{
		{FreqHourly, time.Date(2024, 1, 1, 9, 15, 0, 0, time.Local)},
		{FreqDaily, time.Date(2024, 1, 2, 8, 15, 0, 0, time.Local)},
		{FreqWeekly, time.Date(2024, 1, 8, 8, 15, 0, 0, time.Local)},
		{FreqSemiAnnual, ref.AddDate(0, 0, 182)},
		{FreqAnnual, ref.AddDate(0, 0, 365)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextDueDate(tc.frequency, ref), "frequency %s", tc.frequency)
	}
}

func TestNextDueDateUnknownLabelFallsBack(t *testing.T) {
	ref := time.Date(2024, 1, 1, 8, 15, 0, 0, time.Local)
	assert.Equal(t, ref, NextDueDate("fortnightly", ref))
	assert.Equal(t, ref, NextDueDate("", ref))
}

func TestNextDueDateKeepsMinutePrecision(t *testing.T) {
	ref := time.Date(2024, 6, 1, 14, 42, 0, 0, time.Local)
	next := NextDueDate(FreqHourly, ref)
	assert.Equal(t, 15, next.Hour())
	assert.Equal(t, 42, next.Minute())
}
