package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupByDate(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	lecture := Event{ID: 1, Title: "Lecture", StartTime: day.Add(14 * time.Hour)}
	morning := Event{ID: 2, Title: "Morning", StartTime: day.Add(8 * time.Hour)}
	exam := Event{ID: 3, Title: "Exam", StartTime: day.Add(-24*time.Hour + 9*time.Hour)}
	// 23:30 in UTC+2 is still March 10th in UTC
	tz := time.FixedZone("UTC+2", 2*60*60)
	late := Event{ID: 4, Title: "Late", StartTime: time.Date(2024, time.March, 11, 1, 30, 0, 0, tz)}

	tests := []struct {
		name   string
		events []Event
		want   []DayEvents
	}{
		{name: "no events", events: nil, want: []DayEvents{}},
		{name: "single event", events: []Event{lecture}, want: []DayEvents{{Date: "2024-03-10", Events: []Event{lecture}}}},
		{
			name:   "sorted by date then start time",
			events: []Event{lecture, exam, morning},
			want: []DayEvents{
				{Date: "2024-03-09", Events: []Event{exam}},
				{Date: "2024-03-10", Events: []Event{morning, lecture}},
			},
		},
		{
			name:   "dates are UTC",
			events: []Event{late, morning},
			want:   []DayEvents{{Date: "2024-03-10", Events: []Event{morning, late}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupByDate(tt.events)
			assert.Equal(t, tt.want, got)

			var count int
			for _, g := range got {
				count += len(g.Events)
			}
			assert.Equal(t, len(tt.events), count, "every event appears exactly once")
		})
	}
}
