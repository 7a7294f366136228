package notes

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

// noteTemplate is the fixed institutional case-note layout. One section per
// consolidated point of contact, in ascending date order.
var noteTemplate = template.Must(template.New("note").Parse(
	`CASE NOTE
Client: {{.Client}}
Staff: {{.Staff}}

{{if .Pending -}}
Status: {{.PendingDateStr}}
Add a [Last date in response: ...] marker to complete this note.
{{- else -}}
Points of contact:
{{- range .Contacts}}
- {{.DateStr}} ({{.Type}}): {{.Context}}
{{- end}}

Total contacts: {{len .Contacts}}
{{- end}}
`))

type noteData struct {
	Client         string
	Staff          string
	Pending        bool
	PendingDateStr string
	Contacts       []models.PointOfContact
}

// Render turns consolidated contact records into the display note. A pending
// sentinel renders as an explicit incomplete-note notice rather than a contact
// list.
func Render(contacts []models.PointOfContact, client, staff string) (string, error) {
	if client == "" {
		client = "(not recorded)"
	}
	if staff == "" {
		staff = "(not recorded)"
	}

	data := noteData{
		Client:         client,
		Staff:          staff,
		PendingDateStr: models.PendingDateStr,
		Contacts:       contacts,
	}
	if len(contacts) == 1 && contacts[0].Type == models.ContactTypePending {
		data.Pending = true
	}

	var b strings.Builder
	if err := noteTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}
	return b.String(), nil
}

// IsPending reports whether a consolidation result is the pending sentinel.
func IsPending(contacts []models.PointOfContact) bool {
	return len(contacts) == 1 && contacts[0].Type == models.ContactTypePending
}
