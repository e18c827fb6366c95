package calendar

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Event types
const (
	TypeLecture  = "lecture"
	TypeExam     = "exam"
	TypeWorkshop = "workshop"
	TypeOther    = "other"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType"`
	StartTime   time.Time `json:"startTime"` // UTC
	EndTime     time.Time `json:"endTime"`   // UTC
}

// NewEvent contains information needed to create a new Event.
type NewEvent struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType" validate:"required,oneof=lecture exam workshop other"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required,gtefield=StartTime"`
}

func (ne *NewEvent) Clean() {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	ne.EventType = core.CleanString(ne.EventType, true /* lower */)
}

// Range is the requested time window. It is passed through to the data source, which may ignore it.
type Range struct {
	Start time.Time
	End   time.Time
}

type CreateResult struct {
	Success bool `json:"success"`
	EventID int  `json:"eventId"`
}

// DayEvents holds the events starting on a given UTC date.
type DayEvents struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Events []Event `json:"events"`
}
