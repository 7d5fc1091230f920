package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightpath/models"
)

func validRequest() models.AppointmentRequest {
	return models.AppointmentRequest{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Date:  "2025-03-10",
		Time:  "2:00 PM",
		Topic: "Consult",
	}
}

func TestBookCreatesCalendarEvent(t *testing.T) {
	fc := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	result, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "evt-1", result.EventID)
	assert.Equal(t, "https://calendar.example.com/evt-1", result.EventLink)
	assert.Equal(t, "2025-03-10T14:00:00.000Z", result.StartTime)
	assert.Equal(t, "2025-03-10T15:00:00.000Z", result.EndTime)

	require.Len(t, fc.inserted, 1)
	ev := fc.inserted[0]
	assert.Equal(t, "Meeting with Jane Doe", ev.Summary)
	assert.Contains(t, ev.Description, "Consult")
	assert.Contains(t, ev.Description, "jane@x.com")
	assert.Equal(t, "jane@x.com", ev.AttendeeEmail)
}

func TestBookMissingFieldSkipsProvider(t *testing.T) {
	fc := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	req := validRequest()
	req.Email = ""

	result, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "email")
	assert.Empty(t, fc.inserted, "no external call for an invalid request")
}

func TestBookUnparseableDate(t *testing.T) {
	fc := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	req := validRequest()
	req.Date = "sometime next week"

	result, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.False(t, result.Success)
	assert.Empty(t, fc.inserted)
}

func TestBookProviderFailure(t *testing.T) {
	fc := &fakeCalendar{insertErr: errors.New("calendar unavailable")}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	result, err := svc.Book(context.Background(), validRequest())
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestBookDefaultsTopic(t *testing.T) {
	fc := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	req := validRequest()
	req.Topic = ""

	_, err := svc.Book(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, fc.inserted, 1)
	assert.Contains(t, fc.inserted[0].Description, models.DefaultTopic)
}

// Idempotency is explicitly not guaranteed: the same request twice books two
// distinct events.
func TestBookTwiceCreatesDuplicateEvents(t *testing.T) {
	fc := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: fc, Resolver: newUTCResolver()}

	first, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.EventID, second.EventID)
	assert.Len(t, fc.inserted, 2)
}
