package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Credentials holds the OAuth triplet plus the target calendar. The caller
// decides whether the triplet is complete; this package assumes it is.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
}

// GoogleClient implements API against the Google Calendar v3 API using a
// refresh-token OAuth client.
type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
}

func NewGoogleClient(ctx context.Context, creds Credentials) (*GoogleClient, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarScope},
	}
	token := &oauth2.Token{RefreshToken: creds.RefreshToken}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(conf.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	calendarID := creds.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleClient{svc: svc, calendarID: calendarID}, nil
}

func (g *GoogleClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	res, err := g.svc.Events.List(g.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	var events []Event
	for _, item := range res.Items {
		// All-day entries carry only a Date; they have no concrete start.
		if item.Start == nil || item.Start.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		ev := Event{
			ID:      item.Id,
			Summary: item.Summary,
			Start:   start,
			Link:    item.HtmlLink,
		}
		if item.End != nil && item.End.DateTime != "" {
			if end, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				ev.End = end
			}
		}
		events = append(events, ev)
	}
	return events, nil
}

func (g *GoogleClient) InsertEvent(ctx context.Context, ev Event) (Event, error) {
	entry := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
		Attendees: []*gcal.EventAttendee{
			{Email: ev.AttendeeEmail},
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, entry).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to insert calendar event: %w", err)
	}

	ev.ID = created.Id
	ev.Link = created.HtmlLink
	return ev, nil
}
