package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday, 2025-06-11.
var reference = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

func TestDeadlineSentinel(t *testing.T) {
	assert.Equal(t, "Not specified", Deadline("", reference))
	assert.Equal(t, "Not specified", Deadline("Not specified", reference))
	assert.Equal(t, "Not specified", Deadline("not specified", reference))
}

func TestDeadlineRelativePhrases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"today", "2025-06-11"},
		{"tonight", "2025-06-11"},
		{"this evening", "2025-06-11"},
		{"tomorrow", "2025-06-12"},
		{"by tomorrow", "2025-06-12"},
		{"Tomorrow", "2025-06-12"},
		{"day after tomorrow", "2025-06-13"},
		{"this week", "2025-06-18"},
		{"next week", "2025-06-18"},
		{"this month", "2025-07-11"},
		{"next month", "2025-07-11"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Deadline(tt.in, reference), "input %q", tt.in)
	}
}

// "day after tomorrow" contains "tomorrow"; the more specific phrase
// must win.
func TestDeadlineMostSpecificPhraseWins(t *testing.T) {
	assert.Equal(t, "2025-06-13", Deadline("the day after tomorrow", reference))
}

func TestDeadlineWeekdays(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"thursday", "2025-06-12"},
		{"friday", "2025-06-13"},
		{"saturday", "2025-06-14"},
		{"sunday", "2025-06-15"},
		{"monday", "2025-06-16"},
		{"tuesday", "2025-06-17"},
		{"by Friday", "2025-06-13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Deadline(tt.in, reference), "input %q", tt.in)
	}
}

// A bare weekday name never resolves to today, even when today is that
// weekday: it rolls a full week forward.
func TestDeadlineWeekdayNeverToday(t *testing.T) {
	assert.Equal(t, "2025-06-18", Deadline("wednesday", reference))
}

func TestDeadlineNumericOffsets(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"in 1 day", "2025-06-12"},
		{"in 3 days", "2025-06-14"},
		{"in 2 weeks", "2025-06-25"},
		{"in 1 month", "2025-07-11"},
		{"in 2 months", "2025-08-10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Deadline(tt.in, reference), "input %q", tt.in)
	}
}

// Unrecognized text is passed through unchanged, not treated as an
// error: the caller keeps it as an opaque deadline.
func TestDeadlineUnparsedPassthrough(t *testing.T) {
	assert.Equal(t, "2025-12-24", Deadline("2025-12-24", reference))
	assert.Equal(t, "before the board review", Deadline("before the board review", reference))
}
