package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brightpath/models"
)

func TestExtractAppointmentFullSentence(t *testing.T) {
	text := "My name is Jane Doe, email jane@x.com. I'd like to meet on 2025-03-10 at 2:00 PM about a brand refresh."

	got := ExtractAppointment(text)

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@x.com", got.Email)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, "2:00 PM", got.Time)
	assert.Equal(t, "a brand refresh", got.Topic)
	assert.True(t, got.Complete())
}

func TestExtractAppointmentSlashDate(t *testing.T) {
	got := ExtractAppointment("can we do 3/10/25 at 15:00?")
	assert.Equal(t, "3/10/25", got.Date)
	assert.Equal(t, "15:00", got.Time)
}

func TestExtractAppointmentMissingFieldsStayEmpty(t *testing.T) {
	got := ExtractAppointment("hello, what do you charge?")
	assert.Equal(t, models.ExtractedAppointment{}, got)
	assert.False(t, got.Complete())
}

// The capitalized-words fallback is a known false-positive source: plain
// capitalized text is accepted as a name.
func TestExtractAppointmentNameFallbackIsFuzzy(t *testing.T) {
	got := ExtractAppointment("I saw the Portfolio Page yesterday")
	assert.Equal(t, "Portfolio Page", got.Name)
	assert.False(t, got.Complete())
}

func TestMergeExtractionsPrefersFirst(t *testing.T) {
	a := models.ExtractedAppointment{Name: "Jane Doe"}
	b := models.ExtractedAppointment{Name: "Wrong Guess", Email: "jane@x.com"}

	merged := MergeExtractions(a, b)
	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "jane@x.com", merged.Email)
}
