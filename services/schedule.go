package services

import "time"

// Status labels shown next to every maintenance item.
const (
	StatusOverdue  = "Overdue"
	StatusDueToday = "Due Today"
	StatusUpcoming = "Upcoming"
)

// Recurrence labels accepted on PMs and work orders.
const (
	FreqHourly     = "1hr"
	FreqDaily      = "24hrs"
	FreqWeekly     = "7days"
	FreqSemiAnnual = "6months"
	FreqAnnual     = "12months"
)

// NextDueDate returns the next due instant for a recurrence label counted
// from the reference time. The 6/12 month labels are fixed day offsets
// (182/365), not calendar-aware. An unrecognized label returns the
// reference unchanged rather than an error, so a bad frequency degrades
// to "due now" instead of blocking the form.
func NextDueDate(frequency string, from time.Time) time.Time {
	switch frequency {
	case FreqHourly:
		return from.Add(time.Hour)
	case FreqDaily:
		return from.AddDate(0, 0, 1)
	case FreqWeekly:
		return from.AddDate(0, 0, 7)
	case FreqSemiAnnual:
		return from.AddDate(0, 0, 182)
	case FreqAnnual:
		return from.AddDate(0, 0, 365)
	default:
		return from
	}
}

// ClassifyDueDate maps a due date to its display status relative to today.
// Due dates are stored at full precision (hourly PMs keep the minute), but
// classification truncates both sides to the calendar date: an item due
// later today is still "Due Today", not "Upcoming". A nil due date has no
// status.
func ClassifyDueDate(due *time.Time, today time.Time) string {
	if due == nil {
		return ""
	}
	d := truncateToDate(*due)
	t := truncateToDate(today)
	switch {
	case d.Before(t):
		return StatusOverdue
	case d.Equal(t):
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
