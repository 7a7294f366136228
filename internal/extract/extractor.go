package extract

import (
	"bufio"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpeart73/clockwork-elite/internal/dates"
	"github.com/rpeart73/clockwork-elite/internal/models"
)

// overridePattern is the exact bracketed marker carrying the manually entered
// last response date, e.g. "[Last date in response: March 14]".
var overridePattern = regexp.MustCompile(`(?i)\[\s*last\s+date\s+in\s+response\s*:\s*([^\]]+)\]`)

// headerPatterns recognize message-timestamp positions. Dates mentioned in
// prose are deliberately never extracted; false positives cost more than
// missed body dates here. Evaluated in order, first match per line wins.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[>\s]*sent\s*:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?i)^[>\s]*date\s*:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?i)^[>\s]*on\s+(.+?),\s+[^,]+\s+wrote:\s*$`),
}

// Extractor pulls published message timestamps out of multi-line text.
type Extractor struct {
	logger zerolog.Logger
}

// New creates an extractor that reports skipped candidates to the logger.
func New(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// HasOverride reports whether the manual last-date marker is present in the
// text, independent of whether its value parses. Callers gate the pending
// state on marker presence alone; a malformed value degrades to header-only
// extraction rather than blocking.
func (e *Extractor) HasOverride(text string) bool {
	return overridePattern.MatchString(text)
}

// Extract returns every date published as a message timestamp in the text.
// Header lines resolving to the same calendar day are collapsed to one entry
// (first occurrence's context wins). The override date, when present and
// parseable, is always appended and flagged as the last date. Unparseable
// candidates are skipped, never fatal.
func (e *Extractor) Extract(text string, ref time.Time) []models.ExtractedDate {
	var results []models.ExtractedDate
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		value, ok := matchHeaderLine(line)
		if !ok {
			continue
		}

		resolved, ok := dates.Parse(value, ref)
		if !ok {
			e.logger.Debug().Str("value", value).Msg("Skipping unparseable header date")
			continue
		}

		formatted := dates.Format(resolved)
		if seen[formatted] {
			continue
		}
		seen[formatted] = true

		results = append(results, models.ExtractedDate{
			Date:      resolved,
			Formatted: formatted,
			Context:   "Email header: " + strings.TrimSpace(line),
		})
	}

	if m := overridePattern.FindStringSubmatch(text); m != nil {
		value := strings.TrimSpace(m[1])
		resolved, ok := dates.Parse(value, ref)
		if !ok {
			e.logger.Debug().Str("value", value).Msg("Dropping unparseable override date")
			return results
		}
		results = append(results, models.ExtractedDate{
			Date:       resolved,
			Formatted:  dates.Format(resolved),
			Context:    "Last response: " + value,
			IsLastDate: true,
		})
	}

	return results
}

func matchHeaderLine(line string) (string, bool) {
	for _, p := range headerPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
