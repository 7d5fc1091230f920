package models

import "time"

// Business hours for bookable slots. Slots start on the hour; the last slot
// begins at 16:00 and ends at BusinessEnd.
const (
	BusinessStartHour = 9
	BusinessEndHour   = 17
)

// DaySchedule is a read-only view of one calendar day: which business-hour
// marks are already occupied by events. Recomputed per query, never cached.
type DaySchedule struct {
	Date        time.Time    `json:"-"`
	Day         string       `json:"date"` // YYYY-MM-DD
	BookedHours map[int]bool `json:"-"`
}

// FreeHours returns the unbooked business-hour marks in ascending order.
func (ds DaySchedule) FreeHours() []int {
	var free []int
	for h := BusinessStartHour; h < BusinessEndHour; h++ {
		if !ds.BookedHours[h] {
			free = append(free, h)
		}
	}
	return free
}

// AvailabilityResponse is the GET availability payload.
type AvailabilityResponse struct {
	Available      bool     `json:"available"`
	Configured     bool     `json:"configured"`
	Date           string   `json:"date,omitempty"`
	AvailableSlots []string `json:"availableSlots,omitempty"`
	FormattedDate  string   `json:"formattedDate,omitempty"`
	Error          string   `json:"error,omitempty"`
	MockData       *MockDay `json:"mockData,omitempty"`
}

// MockDay is the illustrative slot set served when the calendar integration
// is not configured.
type MockDay struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	FormattedDate  string   `json:"formattedDate"`
}
