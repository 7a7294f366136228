package threads

import (
	"sort"
	"time"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

// Merge-candidate thresholds.
const (
	mergeOverlapStrong   = 0.8
	mergeOverlapWithDate = 0.5
	mergeStartProximity  = 48 * time.Hour
)

// Merge runs the optional post-process pass that joins threads the
// incremental grouper split. Two threads are candidates when their normalized
// subjects match, their participant overlap is strong, or they started around
// the same time with moderate overlap. Each thread takes part in at most one
// merge per pass: once merged, a thread is excluded from further pairing, so
// chains of three or more related threads are not collapsed in a single pass.
func (g *Grouper) Merge(threads []models.EmailThread) []models.EmailThread {
	used := make([]bool, len(threads))
	out := make([]models.EmailThread, 0, len(threads))

	for i := range threads {
		if used[i] {
			continue
		}
		current := threads[i]
		for j := i + 1; j < len(threads); j++ {
			if used[j] {
				continue
			}
			if !mergeCandidates(&threads[i], &threads[j]) {
				continue
			}
			current = mergeThreads(current, threads[j])
			used[i] = true
			used[j] = true
			current.Summary = summarizeThread(&current)
			break
		}
		out = append(out, current)
	}

	return out
}

func mergeCandidates(a, b *models.EmailThread) bool {
	if foldSubject(a.Subject) == foldSubject(b.Subject) {
		return true
	}
	overlap := overlapRatio(a.Participants, b.Participants)
	if overlap > mergeOverlapStrong {
		return true
	}
	gap := a.StartDate.Sub(b.StartDate)
	if gap < 0 {
		gap = -gap
	}
	return gap <= mergeStartProximity && overlap > mergeOverlapWithDate
}

// mergeThreads unions two threads into a new one. The receiver of the pass
// keeps its identity and subject; messages are re-sorted chronologically.
func mergeThreads(a, b models.EmailThread) models.EmailThread {
	merged := a
	merged.Messages = make([]models.EmailMessage, 0, len(a.Messages)+len(b.Messages))
	merged.Messages = append(merged.Messages, a.Messages...)
	merged.Messages = append(merged.Messages, b.Messages...)
	sort.SliceStable(merged.Messages, func(i, j int) bool {
		return merged.Messages[i].Date.Before(merged.Messages[j].Date)
	})

	merged.Participants = unionParticipants(a.Participants, b.Participants)
	if b.StartDate.Before(merged.StartDate) {
		merged.StartDate = b.StartDate
	}
	if b.EndDate.After(merged.EndDate) {
		merged.EndDate = b.EndDate
	}
	merged.IsActive = a.IsActive || b.IsActive
	return merged
}
