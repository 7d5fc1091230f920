package scheduling

import (
	"context"

	"brightpath/models"
)

// AvailabilityService reports free business-hour slots for a day.
type AvailabilityService interface {
	Check(ctx context.Context, date string) (*DayAvailability, error)
}

// BookingService creates a calendar event for a resolved appointment.
// The returned BookingResult is always populated; the error, when non-nil,
// classifies the failure for the transport layer.
type BookingService interface {
	Book(ctx context.Context, req models.AppointmentRequest) (models.BookingResult, error)
}

// DayAvailability is the computed free-slot view of one calendar day.
type DayAvailability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	FormattedDate  string   `json:"formattedDate"`
}
