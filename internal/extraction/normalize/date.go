package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// relativePhrase maps a deadline phrase to a day offset from today.
// Matching is substring containment, first entry wins, so overlapping
// phrases are ordered most-specific-first ("day after tomorrow" must be
// checked before "tomorrow").
type relativePhrase struct {
	phrase string
	days   int
}

var relativePhrases = []relativePhrase{
	{"day after tomorrow", 2},
	{"tomorrow", 1},
	{"today", 0},
	{"tonight", 0},
	{"this evening", 0},
	{"next week", 7},
	{"this week", 7},
	{"next month", 30},
	{"this month", 30},
}

// weekdays maps day names to time.Weekday. Checked in Monday..Sunday
// order like the original deadline grammar.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// numericPattern handles "in N day(s)/week(s)/month(s)". Months use a
// flat 30-day approximation, not calendar arithmetic.
var numericPatterns = []struct {
	re         *regexp.Regexp
	multiplier int
}{
	{regexp.MustCompile(`in (\d+) days?`), 1},
	{regexp.MustCompile(`in (\d+) weeks?`), 7},
	{regexp.MustCompile(`in (\d+) months?`), 30},
}

// Deadline converts a natural-language deadline phrase into a YYYY-MM-DD
// date relative to now. "Not specified" and empty input pass through as
// the sentinel. Text that matches no known pattern is returned unchanged
// so the caller can keep it as an opaque deadline.
func Deadline(raw string, now time.Time) string {
	if raw == "" || strings.EqualFold(strings.TrimSpace(raw), "not specified") {
		return "Not specified"
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, p := range relativePhrases {
		if strings.Contains(lower, p.phrase) {
			return today.AddDate(0, 0, p.days).Format(dateLayout)
		}
	}

	for _, w := range weekdays {
		if strings.Contains(lower, w.name) {
			ahead := int(w.day-now.Weekday()+7) % 7
			if ahead == 0 {
				// A bare weekday name always means the next occurrence,
				// never today.
				ahead = 7
			}
			return today.AddDate(0, 0, ahead).Format(dateLayout)
		}
	}

	for _, p := range numericPatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				return today.AddDate(0, 0, n*p.multiplier).Format(dateLayout)
			}
		}
	}

	return raw
}
