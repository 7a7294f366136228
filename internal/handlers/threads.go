package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rpeart73/clockwork-elite/internal/config"
	"github.com/rpeart73/clockwork-elite/internal/models"
	"github.com/rpeart73/clockwork-elite/internal/threads"
)

// ThreadsHandler groups discrete messages into conversation threads.
// @Summary Group messages into email threads
// @Description Clusters messages by subject, participants, references and timing; optionally runs the merge pass
// @Tags Threads
// @Accept json
// @Produce json
// @Param request body models.ThreadsRequest true "Messages to group"
// @Success 200 {object} models.ThreadsResponse
// @Failure 400 {object} models.ThreadsResponse
// @Router /api/threads [post]
func ThreadsHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ThreadsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ThreadsResponse{
				Error: "Invalid request body",
			})
		}

		window := time.Duration(cfg.ActiveWindowDays) * 24 * time.Hour
		grouper := threads.NewGrouperWithWindow(window)

		grouped := grouper.Group(req.Messages, time.Now())

		merge := cfg.MergeThreads
		if req.Merge != nil {
			merge = *req.Merge
		}
		if merge {
			grouped = grouper.Merge(grouped)
		}

		if grouped == nil {
			grouped = []models.EmailThread{}
		}
		return c.JSON(http.StatusOK, models.ThreadsResponse{Threads: grouped})
	}
}
