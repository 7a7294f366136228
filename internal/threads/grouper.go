package threads

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

// Signal weights for the thread match score. The total is 1.0 and a message
// only joins a thread when its best score strictly clears the threshold.
const (
	subjectWeight      = 0.4
	participantsWeight = 0.3
	referencesWeight   = 0.2
	timingWeight       = 0.1

	matchThreshold = 0.7

	// DefaultActiveWindow is the recency window for the isActive flag.
	DefaultActiveWindow = 30 * 24 * time.Hour

	timingFullCredit = 24 * time.Hour
	timingCutoff     = 7 * 24 * time.Hour
)

var (
	replyPrefixPattern = regexp.MustCompile(`(?i)^(re|fw|fwd)\s*:\s*`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	subjectFolder      = cases.Fold()
)

// Grouper clusters discrete messages into conversation threads.
type Grouper struct {
	activeWindow time.Duration
}

// NewGrouper creates a grouper with the default activity window.
func NewGrouper() *Grouper {
	return &Grouper{activeWindow: DefaultActiveWindow}
}

// NewGrouperWithWindow creates a grouper with a custom activity window.
func NewGrouperWithWindow(window time.Duration) *Grouper {
	if window <= 0 {
		window = DefaultActiveWindow
	}
	return &Grouper{activeWindow: window}
}

// NormalizeSubject strips repeated reply/forward prefixes and collapses
// whitespace. The original letter case is kept; comparisons case-fold
// separately. Normalizing an already-normalized subject is a no-op.
func NormalizeSubject(subject string) string {
	s := strings.TrimSpace(subject)
	for {
		stripped := replyPrefixPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = strings.TrimSpace(stripped)
	}
	return whitespacePattern.ReplaceAllString(s, " ")
}

func foldSubject(subject string) string {
	return subjectFolder.String(NormalizeSubject(subject))
}

// Group partitions messages into threads. Messages are placed in chronological
// order, so a message can only join threads formed from strictly earlier
// messages. now is sampled once by the caller and used for every derived
// field, keeping a single invocation internally consistent.
func (g *Grouper) Group(messages []models.EmailMessage, now time.Time) []models.EmailThread {
	ordered := make([]models.EmailMessage, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var threads []models.EmailThread
	for _, msg := range ordered {
		idx, ok := g.bestMatch(msg, threads)
		if ok {
			threads[idx] = joinThread(threads[idx], msg)
		} else {
			threads = append(threads, newThread(msg))
		}
	}

	for i := range threads {
		g.finalize(&threads[i], now)
	}

	return threads
}

// bestMatch returns the index of the highest-scoring thread, or ok=false when
// no thread strictly clears the threshold or the best score is tied.
func (g *Grouper) bestMatch(msg models.EmailMessage, threads []models.EmailThread) (int, bool) {
	bestIdx := -1
	bestScore := 0.0
	tied := false

	for i := range threads {
		score := g.Score(msg, &threads[i])
		switch {
		case score > bestScore:
			bestIdx = i
			bestScore = score
			tied = false
		case score == bestScore && bestIdx >= 0:
			tied = true
		}
	}

	if bestIdx < 0 || tied || bestScore <= matchThreshold {
		return -1, false
	}
	return bestIdx, true
}

// Score computes the weighted match score of a message against a thread.
// The result is always within [0, 1].
func (g *Grouper) Score(msg models.EmailMessage, thread *models.EmailThread) float64 {
	score := subjectScore(msg.Subject, thread.Subject)
	score += participantsScore(messageParticipants(msg), thread.Participants)
	score += referencesScore(msg, thread)
	score += timingScore(msg.Date, thread)
	return score
}

func subjectScore(msgSubject, threadSubject string) float64 {
	a := foldSubject(msgSubject)
	b := foldSubject(threadSubject)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return subjectWeight
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return subjectWeight / 2
	}
	return 0
}

func participantsScore(msgParticipants, threadParticipants []string) float64 {
	if len(msgParticipants) == 0 || len(threadParticipants) == 0 {
		return 0
	}
	return participantsWeight * overlapRatio(msgParticipants, threadParticipants)
}

// overlapRatio is the intersection size divided by the size of the larger set.
func overlapRatio(a, b []string) float64 {
	set := make(map[string]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	intersection := 0
	for _, p := range b {
		if set[p] {
			intersection++
		}
	}
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}
	return float64(intersection) / float64(larger)
}

func referencesScore(msg models.EmailMessage, thread *models.EmailThread) float64 {
	ids := make(map[string]bool, len(thread.Messages))
	for _, m := range thread.Messages {
		if m.MessageID != "" {
			ids[m.MessageID] = true
		}
	}
	if msg.InReplyTo != "" && ids[msg.InReplyTo] {
		return referencesWeight
	}
	for _, ref := range msg.References {
		if ids[ref] {
			return referencesWeight / 2
		}
	}
	return 0
}

func timingScore(date time.Time, thread *models.EmailThread) float64 {
	if len(thread.Messages) == 0 {
		return 0
	}
	gap := date.Sub(thread.EndDate)
	if gap < 0 {
		gap = -gap
	}
	if gap < timingFullCredit {
		return timingWeight
	}
	if gap >= timingCutoff {
		return 0
	}
	days := float64(gap) / float64(24*time.Hour)
	return timingWeight * (1 - days/7)
}

func newThread(msg models.EmailMessage) models.EmailThread {
	return models.EmailThread{
		ID:           uuid.New().String(),
		Subject:      NormalizeSubject(msg.Subject),
		Participants: messageParticipants(msg),
		Messages:     []models.EmailMessage{msg},
		StartDate:    msg.Date,
		EndDate:      msg.Date,
	}
}

func joinThread(thread models.EmailThread, msg models.EmailMessage) models.EmailThread {
	thread.Messages = append(thread.Messages, msg)
	thread.Participants = unionParticipants(thread.Participants, messageParticipants(msg))
	if msg.Date.Before(thread.StartDate) {
		thread.StartDate = msg.Date
	}
	if msg.Date.After(thread.EndDate) {
		thread.EndDate = msg.Date
	}
	return thread
}

func (g *Grouper) finalize(thread *models.EmailThread, now time.Time) {
	thread.IsActive = now.Sub(thread.EndDate) <= g.activeWindow
	thread.Summary = summarizeThread(thread)
}

// messageParticipants returns the normalized from/to/cc address set of one message.
func messageParticipants(msg models.EmailMessage) []string {
	addrs := make([]string, 0, 2+len(msg.To)+len(msg.Cc))
	addrs = append(addrs, msg.From)
	addrs = append(addrs, msg.To...)
	addrs = append(addrs, msg.Cc...)

	seen := make(map[string]bool, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func unionParticipants(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, p := range a {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range b {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
