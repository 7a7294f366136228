package models

import "time"

// EmailMessage represents a single discrete message fed to the thread grouper
type EmailMessage struct {
	MessageID  string    `json:"message_id,omitempty"`
	From       string    `json:"from"`
	To         []string  `json:"to"`
	Cc         []string  `json:"cc,omitempty"`
	Subject    string    `json:"subject"`
	Date       time.Time `json:"date"`
	Content    string    `json:"content"`
	InReplyTo  string    `json:"in_reply_to,omitempty"`
	References []string  `json:"references,omitempty"`
}

// EmailThread represents a conversation thread assembled by the grouper
type EmailThread struct {
	ID           string         `json:"id"`
	Subject      string         `json:"subject"`      // Reply/forward prefixes stripped, original case kept
	Participants []string       `json:"participants"` // Union of from/to/cc across member messages
	Messages     []EmailMessage `json:"messages"`     // Chronological
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	IsActive     bool           `json:"is_active"` // Most recent message within the recency window
	Summary      string         `json:"summary"`
}

// MessageCount returns the number of messages in the thread.
func (t *EmailThread) MessageCount() int {
	return len(t.Messages)
}
