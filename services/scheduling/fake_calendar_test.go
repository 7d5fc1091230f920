package scheduling

import (
	"context"
	"fmt"
	"time"

	"brightpath/services/calendar"
)

// fakeCalendar records calls and serves canned events.
type fakeCalendar struct {
	events    []calendar.Event
	listErr   error
	insertErr error

	listCalls int
	inserted  []calendar.Event
}

func (f *fakeCalendar) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeCalendar) InsertEvent(ctx context.Context, ev calendar.Event) (calendar.Event, error) {
	if f.insertErr != nil {
		return calendar.Event{}, f.insertErr
	}
	ev.ID = fmt.Sprintf("evt-%d", len(f.inserted)+1)
	ev.Link = "https://calendar.example.com/" + ev.ID
	f.inserted = append(f.inserted, ev)
	return ev, nil
}

func eventAt(hour int) calendar.Event {
	start := time.Date(2025, time.March, 10, hour, 0, 0, 0, time.UTC)
	return calendar.Event{
		ID:      fmt.Sprintf("existing-%d", hour),
		Summary: "Busy",
		Start:   start,
		End:     start.Add(time.Hour),
	}
}
