package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "coachly/database/repository/provider"
	"coachly/models"
	"coachly/services/availability"
	"coachly/services/slots"
	"coachly/utils"
)

// SlotsHandler serves the client-facing slot picker: start times for a
// date, then valid end times for a chosen start.
type SlotsHandler struct {
	Repo   providerRepo.ProviderRepository
	Logger *zap.Logger
}

// NewSlotsHandler constructs the handler.
func NewSlotsHandler(repo providerRepo.ProviderRepository, logger *zap.Logger) *SlotsHandler {
	return &SlotsHandler{Repo: repo, Logger: logger}
}

// GetStartTimes returns the bookable start times for a provider on a date,
// resolved through unavailable dates, custom overrides, and the weekly
// schedule. An unavailable or empty day returns an empty list, not an
// error.
func (h *SlotsHandler) GetStartTimes(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")
	if _, err := availability.WeekdayOf(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}

	day, err := availability.Resolve(*pa, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	starts := slots.GenerateStartTimes(day.Ranges, slots.DefaultInterval)
	if starts == nil {
		starts = []models.TimeOfDay{}
	}
	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"startTimes": starts,
	})
}

// GetEndTimes returns the valid (end, duration) options for a chosen start
// time, bounded by the containing range's session-length limits. A start
// outside every range yields an empty list.
func (h *SlotsHandler) GetEndTimes(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")
	if _, err := availability.WeekdayOf(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	start, err := models.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start time", err.Error())
		return
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}

	day, err := availability.Resolve(*pa, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	options, err := slots.EndTimesForStart(start, day.Ranges)
	if errors.Is(err, slots.ErrNoContainingRange) {
		options = nil
		err = nil
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute end times", err.Error())
		return
	}
	if options == nil {
		options = []slots.EndOption{}
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"start":    start,
		"endTimes": options,
	})
}
