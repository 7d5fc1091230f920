package calendar

import (
	"context"
	"time"
)

// Event is the provider-neutral view of a calendar entry.
type Event struct {
	ID            string
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	Link          string
	AttendeeEmail string
}

// API defines the calendar-provider operations the scheduling services need.
// The provider is the sole source of truth for booked time.
type API interface {
	// ListEvents returns every event with a concrete start time overlapping
	// [timeMin, timeMax]. All-day entries are skipped.
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error)
	// InsertEvent creates one event with attendee notifications enabled and
	// returns the provider-assigned copy (id and shareable link populated).
	InsertEvent(ctx context.Context, ev Event) (Event, error)
}
