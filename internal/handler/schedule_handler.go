package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedule-assistant/soc-api/internal/models"
	appErrors "github.com/schedule-assistant/soc-api/pkg/errors"
	"github.com/schedule-assistant/soc-api/pkg/response"
)

type scheduleFetcher interface {
	Fetch(ctx context.Context, query models.ScheduleQuery) (*models.Schedule, bool, error)
}

// ScheduleHandler manages the schedule lookup endpoint.
type ScheduleHandler struct {
	service scheduleFetcher
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc scheduleFetcher) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Retrieve godoc
// @Summary Retrieve schedule of classes
// @Tags Schedule Generator
// @Produce json
// @Param year query string true "Academic year"
// @Param term query string true "Term" Enums(Spring, Summer, Fall, Winter)
// @Param campus query string true "Campus" Enums(Newark, New Brunswick, Camden)
// @Success 200 {object} models.Schedule
// @Router /schedules [get]
func (h *ScheduleHandler) Retrieve(c *gin.Context) {
	var query models.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule query"))
		return
	}

	schedule, cacheHit, err := h.service.Fetch(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	if cacheHit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, schedule)
}
