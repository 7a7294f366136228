package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalLayout is the fixed rendering used as the day-level grouping key.
// Two ExtractedDate values on the same calendar day always format identically.
const CanonicalLayout = "January 2, 2006"

// Format renders a date with the canonical layout.
func Format(t time.Time) string {
	return t.Format(CanonicalLayout)
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rule is one step of the resolution ladder: a pattern and the resolver that
// turns its submatches into a date. Rules are evaluated in order and the first
// matching rule wins, so specific expressions beat the generic fallback.
type rule struct {
	pattern *regexp.Regexp
	resolve func(m []string, ref time.Time) (time.Time, bool)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var ladder = []rule{
	{
		pattern: regexp.MustCompile(`(?i)^(today|yesterday|tomorrow)$`),
		resolve: resolveLiteral,
	},
	{
		pattern: regexp.MustCompile(`(?i)^(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return nextWeekday(ref, weekdays[strings.ToLower(m[1])]), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^next\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return nextWeekday(ref, weekdays[strings.ToLower(m[1])]), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^last\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return lastWeekday(ref, weekdays[strings.ToLower(m[1])]), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)$`),
		resolve: resolveOrdinal,
	},
	{
		pattern: regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2})$`),
		resolve: resolveMonthDay,
	},
	{
		pattern: regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`),
		resolve: resolveNumericMonthDay,
	},
	{
		pattern: regexp.MustCompile(`(?i)^end\s+of\s+(?:the\s+)?week$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return nextWeekday(ref, time.Friday), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^end\s+of\s+(?:the\s+)?month$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^beginning\s+of\s+(?:next\s+)?week$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return nextWeekday(ref, time.Monday), true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)^beginning\s+of\s+(?:next\s+)?month$`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, ref.Location()), true
		},
	},
}

// Layouts tried by the generic fallback, most specific first. Header lines
// often carry a weekday name and a time-of-day, so those variants are covered.
var fallbackLayouts = []string{
	"Monday, January 2, 2006 3:04 PM",
	"Monday, January 2, 2006 15:04",
	"Monday, January 2, 2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"1-2-2006",
	"2006-01-02",
}

// Parse resolves a free-text date expression against the reference date.
// It never fails hard: malformed input reports ok=false. The result is always
// normalized to the start of the day.
func Parse(expr string, ref time.Time) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	ref = StartOfDay(ref)

	for _, r := range ladder {
		m := r.pattern.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		if resolved, ok := r.resolve(m, ref); ok {
			return StartOfDay(resolved), true
		}
		// A matched rule that cannot resolve (e.g. "Foobar 12") falls
		// through to the remaining rules and the generic fallback.
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, expr, ref.Location()); err == nil {
			return StartOfDay(t), true
		}
	}

	return time.Time{}, false
}

func resolveLiteral(m []string, ref time.Time) (time.Time, bool) {
	switch strings.ToLower(m[1]) {
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	default:
		return ref, true
	}
}

// nextWeekday returns the next occurrence of dow strictly after ref. When ref
// already falls on dow the result is a full week out, never ref itself.
func nextWeekday(ref time.Time, dow time.Weekday) time.Time {
	delta := (int(dow) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

// lastWeekday is the symmetric past-facing counterpart of nextWeekday.
func lastWeekday(ref time.Time, dow time.Weekday) time.Time {
	delta := (int(ref.Weekday()) - int(dow) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, -delta)
}

// resolveOrdinal handles "the 15th" style day-of-month expressions. A day that
// has already passed this month rolls forward to the same day next month. Day
// numbers that do not exist in the target month are unresolvable.
func resolveOrdinal(m []string, ref time.Time) (time.Time, bool) {
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	candidate := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
	if candidate.Day() != day {
		return time.Time{}, false
	}
	if candidate.Before(ref) {
		candidate = time.Date(ref.Year(), ref.Month()+1, day, 0, 0, 0, 0, ref.Location())
		if candidate.Day() != day {
			return time.Time{}, false
		}
	}
	return candidate, true
}

// resolveMonthDay handles "<Month> <day>" with no year: current year, rolling
// to next year when the date is already behind the reference.
func resolveMonthDay(m []string, ref time.Time) (time.Time, bool) {
	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return monthDayThisOrNextYear(ref, month, day)
}

// resolveNumericMonthDay handles "MM/DD" and "MM-DD" with no year.
func resolveNumericMonthDay(m []string, ref time.Time) (time.Time, bool) {
	month, err := strconv.Atoi(m[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return monthDayThisOrNextYear(ref, time.Month(month), day)
}

func monthDayThisOrNextYear(ref time.Time, month time.Month, day int) (time.Time, bool) {
	candidate := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
	if candidate.Month() != month || candidate.Day() != day {
		return time.Time{}, false
	}
	if candidate.Before(ref) {
		candidate = time.Date(ref.Year()+1, month, day, 0, 0, 0, 0, ref.Location())
		if candidate.Month() != month || candidate.Day() != day {
			return time.Time{}, false
		}
	}
	return candidate, true
}
