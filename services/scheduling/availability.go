package scheduling

import (
	"context"
	"fmt"
	"time"

	"brightpath/models"
	"brightpath/services/calendar"
)

// DefaultAvailabilityService computes free slots by subtracting booked event
// hours from the fixed business-hour window.
type DefaultAvailabilityService struct {
	Calendar calendar.API
	Resolver *DateTimeResolver
}

// DaySchedule fetches the events overlapping the given day and marks each
// concrete start hour inside business bounds as booked.
func (s *DefaultAvailabilityService) DaySchedule(ctx context.Context, date string) (models.DaySchedule, error) {
	day, err := s.Resolver.ResolveDay(date)
	if err != nil {
		return models.DaySchedule{}, err
	}

	dayStart := day
	dayEnd := day.Add(24*time.Hour - time.Millisecond)
	events, err := s.Calendar.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		return models.DaySchedule{}, NewProviderError(err)
	}

	booked := make(map[int]bool)
	for _, ev := range events {
		h := ev.Start.In(s.Resolver.Location).Hour()
		if h >= models.BusinessStartHour && h < models.BusinessEndHour {
			booked[h] = true
		}
	}

	return models.DaySchedule{
		Date:        day,
		Day:         day.Format("2006-01-02"),
		BookedHours: booked,
	}, nil
}

// Check returns the unbooked business-hour slots for the day, formatted for
// display, in ascending order.
func (s *DefaultAvailabilityService) Check(ctx context.Context, date string) (*DayAvailability, error) {
	schedule, err := s.DaySchedule(ctx, date)
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, h := range schedule.FreeHours() {
		slots = append(slots, FormatHour(h))
	}

	return &DayAvailability{
		Date:           schedule.Day,
		AvailableSlots: slots,
		FormattedDate:  schedule.Date.Format("Monday, January 2"),
	}, nil
}

// FormatHour renders an hour mark on the 12-hour clock, e.g. 13 -> "1:00 PM".
func FormatHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
