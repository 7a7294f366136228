package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rpeart73/clockwork-elite/internal/cache"
	"github.com/rpeart73/clockwork-elite/internal/database"
	"github.com/rpeart73/clockwork-elite/internal/extract"
	"github.com/rpeart73/clockwork-elite/internal/models"
	"github.com/rpeart73/clockwork-elite/internal/notes"
	"github.com/rpeart73/clockwork-elite/internal/poc"
	"github.com/rpeart73/clockwork-elite/internal/sanitize"
)

// NotesHandler runs the full note pipeline: sanitize, extract dates,
// consolidate points of contact and render the case note.
// @Summary Generate a case note from pasted text
// @Description Extracts header dates from an email thread dump, consolidates same-day contacts and renders the institutional note template
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body models.NotesRequest true "Pasted text plus optional client/staff names"
// @Success 200 {object} models.NotesResponse
// @Failure 400 {object} models.NotesResponse
// @Router /api/notes [post]
func NotesHandler(extractor *extract.Extractor, resultCache *cache.Cache, drafts *database.DraftStore, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.NotesRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NotesResponse{
				Error: "Invalid request body",
			})
		}

		key := cache.Key(req.Text, req.Client, req.Staff)
		if cached, ok := resultCache.Get(key); ok {
			return c.JSON(http.StatusOK, models.NotesResponse{
				Contacts:    cached.Contacts,
				Note:        cached.Note,
				Pending:     cached.Pending,
				HasOverride: cached.HasOverride,
				Cached:      true,
			})
		}

		// Sample now once so relative dates and header dates inside a single
		// request resolve against the same day.
		now := time.Now()

		clean := sanitize.Clean(req.Text)
		extracted := extractor.Extract(clean, now)
		hasOverride := extractor.HasOverride(clean)
		contacts := poc.Consolidate(extracted, clean, hasOverride)

		note, err := notes.Render(contacts, req.Client, req.Staff)
		if err != nil {
			logger.Error().Err(err).Msg("Note rendering failed")
			return c.JSON(http.StatusInternalServerError, models.NotesResponse{
				Error: "Failed to render note",
			})
		}

		result := cache.Result{
			Contacts:    contacts,
			Note:        note,
			Pending:     notes.IsPending(contacts),
			HasOverride: hasOverride,
		}
		resultCache.Set(key, result)

		// Draft persistence is best effort; note generation works without it.
		if drafts != nil {
			draftKey := req.Client
			if draftKey == "" {
				draftKey = "default"
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			if err := drafts.Save(ctx, draftKey, req.Text, note); err != nil {
				logger.Warn().Err(err).Str("key", draftKey).Msg("Draft save failed")
			}
		}

		return c.JSON(http.StatusOK, models.NotesResponse{
			Contacts:    contacts,
			Note:        note,
			Pending:     result.Pending,
			HasOverride: hasOverride,
		})
	}
}
