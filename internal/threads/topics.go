package threads

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rpeart73/clockwork-elite/internal/models"
	"github.com/rpeart73/clockwork-elite/internal/utils"
)

// topicKeywords maps detected topic categories to the keywords that count
// toward them. Detection is frequency-based over subject and body tokens.
var topicKeywords = map[string][]string{
	"scheduling": {"meeting", "appointment", "schedule", "reschedule", "calendar", "availability"},
	"reporting":  {"report", "update", "status", "summary", "progress"},
	"billing":    {"invoice", "payment", "billing", "receipt", "budget"},
	"support":    {"issue", "problem", "error", "broken", "help", "urgent"},
	"planning":   {"plan", "proposal", "deadline", "milestone", "review"},
}

const topTopics = 3

var topicTitleCaser = cases.Title(language.English)

// detectTopics counts keyword occurrences across all messages and returns up
// to three topics by descending frequency. Ties break alphabetically so the
// result is deterministic.
func detectTopics(messages []models.EmailMessage) []string {
	counts := make(map[string]int, len(topicKeywords))
	for _, msg := range messages {
		tokens := utils.Tokenize(msg.Subject + " " + msg.Content)
		for _, token := range tokens {
			for topic, keywords := range topicKeywords {
				for _, kw := range keywords {
					if token == kw {
						counts[topic]++
					}
				}
			}
		}
	}

	topics := make([]string, 0, len(counts))
	for topic, n := range counts {
		if n > 0 {
			topics = append(topics, topic)
		}
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return topics[i] < topics[j]
	})

	if len(topics) > topTopics {
		topics = topics[:topTopics]
	}
	return topics
}

// summarizeThread builds the derived descriptive string: message count,
// day span and the top detected topics.
func summarizeThread(thread *models.EmailThread) string {
	count := len(thread.Messages)
	noun := "messages"
	if count == 1 {
		noun = "message"
	}

	days := int(thread.EndDate.Sub(thread.StartDate).Hours() / 24)
	span := fmt.Sprintf("%d days", days)
	if days == 1 {
		span = "1 day"
	}

	summary := fmt.Sprintf("%d %s over %s", count, noun, span)

	topics := detectTopics(thread.Messages)
	if len(topics) > 0 {
		labels := make([]string, len(topics))
		for i, t := range topics {
			labels[i] = topicTitleCaser.String(t)
		}
		summary += "; topics: " + strings.Join(labels, ", ")
	}
	return summary
}
