package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// NotesRequest represents the request body for the note generation endpoint
// @Description Note generation request payload
type NotesRequest struct {
	Text   string `json:"text"`             // Pasted email thread or task description
	Client string `json:"client,omitempty"` // Client name for the note header
	Staff  string `json:"staff,omitempty"`  // Staff member recording the note
}

// NotesResponse represents the response from the note generation endpoint
// @Description Note generation response payload
type NotesResponse struct {
	Contacts    []PointOfContact `json:"contacts"`                   // Consolidated points of contact, ascending by date
	Note        string           `json:"note"`                       // Rendered case-note text
	Pending     bool             `json:"pending" example:"false"`    // True when the last-date override is missing
	HasOverride bool             `json:"has_override" example:"true"`
	Cached      bool             `json:"cached,omitempty" example:"false"` // True when served from the result cache
	Error       string           `json:"error,omitempty" example:""`
}

// ThreadsRequest represents the request body for the thread grouping endpoint
// @Description Thread grouping request payload
type ThreadsRequest struct {
	Messages []EmailMessage `json:"messages"` // Unordered collection of discrete messages
	Merge    *bool          `json:"merge,omitempty"` // Override the configured merge-pass toggle
}

// ThreadsResponse represents the response from the thread grouping endpoint
// @Description Thread grouping response payload
type ThreadsResponse struct {
	Threads []EmailThread `json:"threads"`
	Error   string        `json:"error,omitempty" example:""`
}

// DraftRequest represents a draft save payload
// @Description Draft save payload
type DraftRequest struct {
	Key   string `json:"key"`   // Opaque client key
	Input string `json:"input"` // Last raw input text
	Note  string `json:"note"`  // Last rendered output
}

// DraftResponse represents a stored draft
// @Description Stored draft payload
type DraftResponse struct {
	Key       string    `json:"key"`
	Input     string    `json:"input"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updated_at"`
	Error     string    `json:"error,omitempty" example:""`
}
