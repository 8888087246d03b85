package payout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedulerStandard(t *testing.T) {
	var s Scheduler

	tests := []struct {
		name    string
		request time.Time
		want    time.Time
	}{
		{"mid-month", date(2025, time.January, 15), date(2025, time.March, 5)},
		{"first of month", date(2025, time.April, 1), date(2025, time.June, 5)},
		{"last day belongs to its own cycle", date(2025, time.January, 31), date(2025, time.March, 5)},
		{"november rolls into next year", date(2025, time.November, 20), date(2026, time.January, 5)},
		{"december rolls into next year", date(2025, time.December, 31), date(2026, time.February, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Standard(tt.request))
		})
	}
}

func TestSchedulerExpedited(t *testing.T) {
	var s Scheduler

	tests := []struct {
		name     string
		request  time.Time
		leadDays int
		want     time.Time
	}{
		{"wednesday plus three skips the weekend", date(2025, time.January, 15), 3, date(2025, time.January, 20)},
		{"monday plus three stays in the week", date(2025, time.January, 13), 3, date(2025, time.January, 16)},
		{"friday plus one lands on monday", date(2025, time.January, 17), 1, date(2025, time.January, 20)},
		{"saturday request counts from monday", date(2025, time.January, 18), 1, date(2025, time.January, 20)},
		{"five business days cross one weekend", date(2025, time.January, 15), 5, date(2025, time.January, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Expedited(tt.request, tt.leadDays))
		})
	}
}

func TestSchedulerIgnoresTimeOfDay(t *testing.T) {
	var s Scheduler

	late := time.Date(2025, time.January, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date(2025, time.January, 20), s.Expedited(late, 3))
	assert.Equal(t, date(2025, time.March, 5), s.Standard(late))
}
