package poc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/rpeart73/clockwork-elite/internal/models"
	"github.com/rpeart73/clockwork-elite/internal/utils"
)

// Keyword hints for classifying a contact beyond the default email type.
var (
	callKeywords    = map[string]struct{}{"call": {}, "called": {}, "phone": {}, "spoke": {}, "voicemail": {}}
	meetingKeywords = map[string]struct{}{"meeting": {}, "met": {}, "appointment": {}, "session": {}, "visit": {}}
)

// Consolidate turns extracted dates into day-level points of contact.
//
// Without the last-date override the result is a single pending sentinel:
// downstream grouping cannot be trusted to be complete until the user supplies
// the end boundary, so the pipeline defers instead of guessing. With the
// override present, same-day dates are merged into one record each, sorted
// ascending. Every call produces fresh records; nothing is retained.
func Consolidate(extracted []models.ExtractedDate, rawText string, hasOverride bool) []models.PointOfContact {
	if !hasOverride {
		return []models.PointOfContact{pendingContact(rawText)}
	}

	merged := make([]models.PointOfContact, 0, len(extracted))
	byDay := make(map[string]int, len(extracted))

	for _, d := range extracted {
		idx, exists := byDay[d.Formatted]
		if !exists {
			byDay[d.Formatted] = len(merged)
			merged = append(merged, draftContact(d))
			continue
		}
		merged[idx] = mergeContacts(merged[idx], draftContact(d))
	}

	for i := range merged {
		merged[i].Context = summarizeContext(merged[i])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}

func pendingContact(rawText string) models.PointOfContact {
	return models.PointOfContact{
		ID:      uuid.New().String(),
		Type:    models.ContactTypePending,
		DateStr: models.PendingDateStr,
		Context: "Awaiting last response date",
		Content: rawText,
	}
}

func draftContact(d models.ExtractedDate) models.PointOfContact {
	return models.PointOfContact{
		ID:              uuid.New().String(),
		Date:            d.Date,
		DateStr:         d.Formatted,
		Type:            classifyContext(d.Context),
		Exchanges:       1,
		Context:         d.Context,
		CombinedContext: []string{d.Context},
	}
}

// classifyContext infers the contact kind from the extraction context. Email
// is the default; call and meeting hints in the surrounding text win over it.
func classifyContext(context string) string {
	for _, token := range utils.ExtractMeaningfulTokens(context) {
		if _, ok := callKeywords[token]; ok {
			return models.ContactTypeCall
		}
		if _, ok := meetingKeywords[token]; ok {
			return models.ContactTypeMeeting
		}
	}
	return models.ContactTypeEmail
}

// mergeContacts folds a later same-day draft into the accumulated record,
// returning a new record. The first draft's identity and date win; the type is
// upgraded from the email default to a more specific kind but never downgraded.
func mergeContacts(acc, next models.PointOfContact) models.PointOfContact {
	out := acc
	out.Exchanges = acc.Exchanges + next.Exchanges
	out.CombinedContext = append(append([]string{}, acc.CombinedContext...), next.CombinedContext...)
	if acc.Type == models.ContactTypeEmail && isSpecificType(next.Type) {
		out.Type = next.Type
	}
	return out
}

func isSpecificType(t string) bool {
	return t == models.ContactTypeMeeting || t == models.ContactTypeCall
}

func summarizeContext(c models.PointOfContact) string {
	if c.Exchanges <= 1 {
		return c.Context
	}
	return fmt.Sprintf("%d exchanges on this day: %s", c.Exchanges, strings.Join(c.CombinedContext, "; "))
}
