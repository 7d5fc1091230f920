package models

import "time"

// AppointmentRequest carries the visitor-supplied appointment details.
// Date and Time are free-form text; resolution into concrete instants is the
// scheduling service's job.
type AppointmentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
	Topic string `json:"topic,omitempty"`
}

// DefaultTopic is used when the visitor did not state one.
const DefaultTopic = "Consultation"

// ResolvedInterval is the concrete start/end pair computed from an
// AppointmentRequest. End is always Start plus one hour.
type ResolvedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ISOStart returns the start instant in ISO-8601 UTC wire form.
func (iv ResolvedInterval) ISOStart() string {
	return iv.Start.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ISOEnd returns the end instant in ISO-8601 UTC wire form.
func (iv ResolvedInterval) ISOEnd() string {
	return iv.End.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// BookingResult is the outcome of a single booking attempt against the
// calendar provider.
type BookingResult struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId,omitempty"`
	EventLink string `json:"eventLink,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Error     string `json:"error,omitempty"`
}
