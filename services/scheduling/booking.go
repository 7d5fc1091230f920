package scheduling

import (
	"context"
	"fmt"

	"brightpath/models"
	"brightpath/services/calendar"
)

// DefaultBookingService creates one calendar event per confirmed request.
// There is no idempotency key: resubmitting the same request creates a
// duplicate event.
type DefaultBookingService struct {
	Calendar calendar.API
	Resolver *DateTimeResolver
}

// Book validates the request, resolves its interval and inserts the event.
// Every failure is also reflected in the returned BookingResult so the
// caller can relay it without inspecting the error.
func (s *DefaultBookingService) Book(ctx context.Context, req models.AppointmentRequest) (models.BookingResult, error) {
	if err := validateRequest(req); err != nil {
		return failure(err), err
	}

	interval, err := s.Resolver.Resolve(req.Date, req.Time)
	if err != nil {
		return failure(err), err
	}

	topic := req.Topic
	if topic == "" {
		topic = models.DefaultTopic
	}

	event := calendar.Event{
		Summary: fmt.Sprintf("Meeting with %s", req.Name),
		Description: fmt.Sprintf("Topic: %s\n\nRequested through the website by %s (%s).",
			topic, req.Name, req.Email),
		Start:         interval.Start,
		End:           interval.End,
		AttendeeEmail: req.Email,
	}

	created, err := s.Calendar.InsertEvent(ctx, event)
	if err != nil {
		perr := NewProviderError(err)
		return failure(perr), perr
	}

	return models.BookingResult{
		Success:   true,
		EventID:   created.ID,
		EventLink: created.Link,
		StartTime: interval.ISOStart(),
		EndTime:   interval.ISOEnd(),
	}, nil
}

func validateRequest(req models.AppointmentRequest) error {
	switch {
	case req.Name == "":
		return NewMissingFieldError("name")
	case req.Email == "":
		return NewMissingFieldError("email")
	case req.Date == "":
		return NewMissingFieldError("date")
	}
	return nil
}

func failure(err error) models.BookingResult {
	return models.BookingResult{Success: false, Error: ErrorMessage(err)}
}
