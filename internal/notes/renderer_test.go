package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

func TestRender_ContactList(t *testing.T) {
	contacts := []models.PointOfContact{
		{
			ID:        "1",
			Date:      time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			DateStr:   "January 6, 2025",
			Type:      models.ContactTypeEmail,
			Exchanges: 2,
			Context:   "2 exchanges on this day: morning; afternoon",
		},
		{
			ID:        "2",
			Date:      time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
			DateStr:   "January 8, 2025",
			Type:      models.ContactTypeEmail,
			Exchanges: 1,
			Context:   "Email header: Sent: Wednesday",
		},
	}

	note, err := Render(contacts, "Jordan Fisher", "R. Peart")
	require.NoError(t, err)

	assert.Contains(t, note, "CASE NOTE")
	assert.Contains(t, note, "Client: Jordan Fisher")
	assert.Contains(t, note, "Staff: R. Peart")
	assert.Contains(t, note, "- January 6, 2025 (email): 2 exchanges on this day: morning; afternoon")
	assert.Contains(t, note, "- January 8, 2025 (email): Email header: Sent: Wednesday")
	assert.Contains(t, note, "Total contacts: 2")
	assert.NotContains(t, note, "Status:")
}

func TestRender_Pending(t *testing.T) {
	contacts := []models.PointOfContact{
		{
			ID:      "1",
			Type:    models.ContactTypePending,
			DateStr: models.PendingDateStr,
			Content: "raw text",
		},
	}

	note, err := Render(contacts, "", "")
	require.NoError(t, err)

	assert.Contains(t, note, "Status: "+models.PendingDateStr)
	assert.Contains(t, note, "Client: (not recorded)")
	assert.NotContains(t, note, "Points of contact")
}

func TestRender_EmptyContacts(t *testing.T) {
	note, err := Render(nil, "A", "B")
	require.NoError(t, err)
	assert.Contains(t, note, "Total contacts: 0")
}

func TestIsPending(t *testing.T) {
	pending := []models.PointOfContact{{Type: models.ContactTypePending}}
	assert.True(t, IsPending(pending))
	assert.False(t, IsPending(nil))
	assert.False(t, IsPending([]models.PointOfContact{{Type: models.ContactTypeEmail}}))
	assert.False(t, IsPending([]models.PointOfContact{{Type: models.ContactTypePending}, {Type: models.ContactTypeEmail}}))
}
