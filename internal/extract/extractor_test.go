package extract

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newExtractor() *Extractor {
	return New(zerolog.Nop())
}

func TestExtract_HeaderLines(t *testing.T) {
	text := `From: John Smith <john@example.com>
Sent: Monday, January 6, 2025 10:30 AM
To: Jane Doe

Thanks for the update, I will follow up shortly.

> Date: 1/3/2025
> From: jane@example.com
> Original message body here.`

	got := newExtractor().Extract(text, ref)
	require.Len(t, got, 2)

	assert.Equal(t, "January 6, 2025", got[0].Formatted)
	assert.Equal(t, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.Contains(t, got[0].Context, "Email header:")
	assert.False(t, got[0].IsLastDate)

	assert.Equal(t, "January 3, 2025", got[1].Formatted)
}

func TestExtract_OnWroteLine(t *testing.T) {
	text := "On Monday, January 6, 2025, John Smith wrote:\n> earlier message"

	got := newExtractor().Extract(text, ref)
	require.Len(t, got, 1)
	assert.Equal(t, "January 6, 2025", got[0].Formatted)
}

func TestExtract_ProseDatesIgnored(t *testing.T) {
	text := `Hi team,

Let's plan to meet on January 6, 2025 to review the report.
The deadline of 3/15 still stands.`

	got := newExtractor().Extract(text, ref)
	assert.Empty(t, got)
}

func TestExtract_DeduplicatesSameDay(t *testing.T) {
	text := `Sent: Monday, January 6, 2025 10:30 AM
Sent: Monday, January 6, 2025 4:45 PM
Sent: Tuesday, January 7, 2025 9:00 AM`

	got := newExtractor().Extract(text, ref)
	require.Len(t, got, 2)
	assert.Equal(t, "January 6, 2025", got[0].Formatted)
	// First occurrence's context wins.
	assert.Contains(t, got[0].Context, "10:30 AM")
	assert.Equal(t, "January 7, 2025", got[1].Formatted)
}

func TestExtract_Override(t *testing.T) {
	text := `Sent: Monday, January 6, 2025 10:30 AM

Client confirmed receipt.

[Last date in response: January 8, 2025]`

	got := newExtractor().Extract(text, ref)
	require.Len(t, got, 2)

	last := got[1]
	assert.True(t, last.IsLastDate)
	assert.Equal(t, "January 8, 2025", last.Formatted)
	assert.Contains(t, last.Context, "Last response:")
}

func TestExtract_OverrideRelativeDate(t *testing.T) {
	got := newExtractor().Extract("[Last date in response: yesterday]", ref)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLastDate)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), got[0].Date)
}

func TestExtract_MalformedOverrideDropped(t *testing.T) {
	text := `Sent: Monday, January 6, 2025
[Last date in response: gibberish]`

	e := newExtractor()
	got := e.Extract(text, ref)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsLastDate)

	// Marker presence is still reported even when the value cannot parse.
	assert.True(t, e.HasOverride(text))
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newExtractor()
	assert.Empty(t, e.Extract("", ref))
	assert.Empty(t, e.Extract("   \n  \n", ref))
	assert.False(t, e.HasOverride(""))
}

func TestHasOverride(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"present", "notes\n[Last date in response: March 14]", true},
		{"case insensitive", "[last DATE in response: tomorrow]", true},
		{"extra spacing", "[ Last date in response:  the 15th ]", true},
		{"absent", "no marker here", false},
		{"similar prose", "the last date in response was March 14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newExtractor().HasOverride(tt.text))
		})
	}
}

func TestExtract_UnparseableHeaderSkipped(t *testing.T) {
	text := `Sent: whenever it was
Date: Monday, January 6, 2025`

	got := newExtractor().Extract(text, ref)
	require.Len(t, got, 1)
	assert.Equal(t, "January 6, 2025", got[0].Formatted)
}
