package payout

import "time"

// Scheduler computes settlement dates as pure functions of the request
// date. It never reads a wall clock, so scheduling is deterministic and
// replay-safe.
type Scheduler struct{}

// Standard returns the 5th calendar day of the month two months after
// the month containing requestDate. This models the monthly close: all
// earnings in the request month, including its last calendar day, settle
// together on the 5th of the month after next.
func (Scheduler) Standard(requestDate time.Time) time.Time {
	return time.Date(requestDate.Year(), requestDate.Month()+2, 5, 0, 0, 0, 0, requestDate.Location())
}

// Expedited returns requestDate advanced by leadDays business days.
// Saturdays and Sundays are skipped; holiday calendars are not modeled
// here and belong to an external collaborator.
func (Scheduler) Expedited(requestDate time.Time, leadDays int) time.Time {
	date := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	for remaining := leadDays; remaining > 0; {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return date
}
