package intelligence

import (
	"regexp"
	"strings"

	"brightpath/models"
)

// Best-effort patterns for pulling appointment fields out of free text.
// Known to produce false positives (the bare capitalized-words fallback in
// particular); extraction failures never block the booking flow's own
// validation.
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	datePattern  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\b`)
	timePattern  = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b|\b(\d{1,2}:\d{2})\b`)
	topicPattern = regexp.MustCompile(`(?i)(?:about|regarding|discuss(?:ing)?|topic(?:\s+is)?[:]?)\s+([^.,\n]{3,80})`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:my name is|i am|i'm|this is)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		regexp.MustCompile(`(?i)name[:]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		// Fallback: any run of capitalized words. Accepts plain capitalized
		// text as a "name"; callers must treat the result as a guess.
		regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\b`),
	}
)

// ExtractAppointment scans free text for appointment fields. Fields it
// cannot find stay empty; nothing here is validated.
func ExtractAppointment(text string) models.ExtractedAppointment {
	var out models.ExtractedAppointment

	if m := emailPattern.FindString(text); m != "" {
		out.Email = m
	}
	if m := datePattern.FindStringSubmatch(text); m != nil {
		out.Date = m[1]
	}
	if m := timePattern.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			out.Time = strings.TrimSpace(m[1])
		} else {
			out.Time = m[2]
		}
	}
	if m := topicPattern.FindStringSubmatch(text); m != nil {
		out.Topic = strings.TrimSpace(m[1])
	}
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			out.Name = strings.TrimSpace(m[1])
			break
		}
	}
	return out
}

// MergeExtractions overlays non-empty fields of b onto a. Used to combine a
// scan of the model reply with a scan of the visitor's own words.
func MergeExtractions(a, b models.ExtractedAppointment) models.ExtractedAppointment {
	if a.Name == "" {
		a.Name = b.Name
	}
	if a.Email == "" {
		a.Email = b.Email
	}
	if a.Date == "" {
		a.Date = b.Date
	}
	if a.Time == "" {
		a.Time = b.Time
	}
	if a.Topic == "" {
		a.Topic = b.Topic
	}
	return a
}
