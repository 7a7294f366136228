package models

import "time"

// Contact types for a PointOfContact. Pending is the sentinel used while the
// last-date override is missing and consolidation cannot complete.
const (
	ContactTypeEmail   = "email"
	ContactTypeMeeting = "meeting"
	ContactTypeCall    = "call"
	ContactTypePending = "pending"
)

// PendingDateStr is the placeholder date string on the pending sentinel record.
const PendingDateStr = "Pending - awaiting last response date"

// ExtractedDate represents a single date pulled out of pasted text
// @Description Date extracted from an email header or override marker
type ExtractedDate struct {
	Date       time.Time `json:"date"`                    // Resolved calendar date (start of day)
	Formatted  string    `json:"formatted"`               // Canonical display string, the grouping key
	Context    string    `json:"context"`                 // Where the date was found
	IsLastDate bool      `json:"is_last_date,omitempty"`  // True only for the manual override
}

// PointOfContact represents one consolidated communication record for a calendar day
// @Description Consolidated point of contact
type PointOfContact struct {
	ID              string    `json:"id" example:"5f8d7a2e-1c34-4b6a-9e21-0f3b8c4d5e6f"` // Generation-order stable identifier
	Date            time.Time `json:"date"`                                              // Representative calendar date
	DateStr         string    `json:"date_str" example:"January 6, 2025"`                // Canonical date string
	Type            string    `json:"type" example:"email"`                              // email, meeting, call or pending
	Exchanges       int       `json:"exchanges" example:"2"`                             // Source occurrences merged into this record
	Context         string    `json:"context"`                                           // Human-readable summary
	CombinedContext []string  `json:"combined_context,omitempty"`                        // Original contexts in discovery order
	Content         string    `json:"content,omitempty"`                                 // Raw text, set on the pending sentinel only
}
