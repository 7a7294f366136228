package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rpeart73/clockwork-elite/internal/database"
	"github.com/rpeart73/clockwork-elite/internal/models"
)

// GetDraftHandler loads the last saved input and note for a client key.
// @Summary Load a saved draft
// @Tags Drafts
// @Produce json
// @Param key path string true "Draft key"
// @Success 200 {object} models.DraftResponse
// @Failure 404 {object} models.DraftResponse
// @Failure 503 {object} models.DraftResponse
// @Router /api/drafts/{key} [get]
func GetDraftHandler(drafts *database.DraftStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if drafts == nil {
			return c.JSON(http.StatusServiceUnavailable, models.DraftResponse{
				Error: "Draft storage not available",
			})
		}

		key := c.Param("key")
		draft, err := drafts.Get(c.Request().Context(), key)
		if err != nil {
			if errors.Is(err, database.ErrDraftNotFound) {
				return c.JSON(http.StatusNotFound, models.DraftResponse{
					Key:   key,
					Error: "No draft saved for this key",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.DraftResponse{
				Key:   key,
				Error: err.Error(),
			})
		}

		return c.JSON(http.StatusOK, *draft)
	}
}

// SaveDraftHandler stores the last input and note for a client key.
// @Summary Save a draft
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body models.DraftRequest true "Draft to save"
// @Success 200 {object} models.DraftResponse
// @Failure 400 {object} models.DraftResponse
// @Failure 503 {object} models.DraftResponse
// @Router /api/drafts [put]
func SaveDraftHandler(drafts *database.DraftStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if drafts == nil {
			return c.JSON(http.StatusServiceUnavailable, models.DraftResponse{
				Error: "Draft storage not available",
			})
		}

		var req models.DraftRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.DraftResponse{
				Error: "Invalid request body",
			})
		}
		if req.Key == "" {
			return c.JSON(http.StatusBadRequest, models.DraftResponse{
				Error: "Draft key is required",
			})
		}

		if err := drafts.Save(c.Request().Context(), req.Key, req.Input, req.Note); err != nil {
			return c.JSON(http.StatusInternalServerError, models.DraftResponse{
				Key:   req.Key,
				Error: err.Error(),
			})
		}

		draft, err := drafts.Get(c.Request().Context(), req.Key)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.DraftResponse{
				Key:   req.Key,
				Error: err.Error(),
			})
		}
		return c.JSON(http.StatusOK, *draft)
	}
}
