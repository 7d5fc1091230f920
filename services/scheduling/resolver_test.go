package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUTCResolver() *DateTimeResolver {
	return NewDateTimeResolver(time.UTC)
}

func TestResolveDayAcceptedFormats(t *testing.T) {
	r := newUTCResolver()

	inputs := []string{
		"2025-03-10",
		"03/10/2025",
		"3/10/2025",
		"03-10-25",
		"3.10.25",
		"March 10, 2025",
	}
	for _, input := range inputs {
		day, err := r.ResolveDay(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, 2025, day.Year(), "input %q", input)
		assert.Equal(t, time.March, day.Month(), "input %q", input)
		assert.Equal(t, 10, day.Day(), "input %q", input)
		assert.Equal(t, 0, day.Hour(), "input %q", input)
	}
}

func TestResolveDayRejectsGarbage(t *testing.T) {
	r := newUTCResolver()

	for _, input := range []string{"", "soon", "13/45/2020", "2/31/2024", "10--2025", "a/b/c"} {
		_, err := r.ResolveDay(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, IsValidationError(err), "input %q", input)
	}
}

func TestResolveClockConversions(t *testing.T) {
	r := newUTCResolver()

	cases := []struct {
		timeStr    string
		wantHour   int
		wantMinute int
	}{
		{"3:00 PM", 15, 0},
		{"15:00", 15, 0},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"9am", 9, 0},
		{"9:30am", 9, 30},
		{"2 pm", 14, 0},
	}
	for _, tc := range cases {
		iv, err := r.Resolve("2025-03-10", tc.timeStr)
		require.NoError(t, err, "time %q", tc.timeStr)
		assert.Equal(t, tc.wantHour, iv.Start.Hour(), "time %q", tc.timeStr)
		assert.Equal(t, tc.wantMinute, iv.Start.Minute(), "time %q", tc.timeStr)
	}
}

func TestResolveUnusableTimeDegradesToDefault(t *testing.T) {
	r := newUTCResolver()

	for _, timeStr := range []string{"", "whenever", "25:00", "12:99 PM"} {
		iv, err := r.Resolve("2025-03-10", timeStr)
		require.NoError(t, err, "time %q", timeStr)
		assert.Equal(t, 10, iv.Start.Hour(), "time %q", timeStr)
		assert.Equal(t, 11, iv.End.Hour(), "time %q", timeStr)
	}
}

func TestResolveIntervalIsAlwaysOneHour(t *testing.T) {
	r := newUTCResolver()

	for _, timeStr := range []string{"", "3:00 PM", "9am", "nonsense"} {
		iv, err := r.Resolve("2025-03-10", timeStr)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, iv.End.Sub(iv.Start), "time %q", timeStr)
		assert.Zero(t, iv.Start.Second())
		assert.Zero(t, iv.Start.Nanosecond())
	}
}

func TestResolvedIntervalWireFormat(t *testing.T) {
	r := newUTCResolver()

	iv, err := r.Resolve("2025-03-10", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T14:00:00.000Z", iv.ISOStart())
	assert.Equal(t, "2025-03-10T15:00:00.000Z", iv.ISOEnd())
}
