package models

// ChatMessage is one turn of the visitor conversation. The site widget sends
// the full transcript with every request; nothing is stored server-side.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ExtractedAppointment holds the best-effort fields pulled out of free text
// by the regex extractor. Any field may be empty; the booking flow performs
// its own validation regardless.
type ExtractedAppointment struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time,omitempty"`
	Topic string `json:"topic,omitempty"`
}

// Complete reports whether enough fields are present to offer a booking.
func (e ExtractedAppointment) Complete() bool {
	return e.Name != "" && e.Email != "" && e.Date != ""
}
