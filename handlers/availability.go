package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "coachly/database/repository/provider"
	"coachly/models"
	"coachly/services/availability"
	"coachly/services/events"
	"coachly/utils"
)

// AvailabilityHandler exposes availability editing endpoints.
type AvailabilityHandler struct {
	Repo   providerRepo.ProviderRepository
	Bus    *events.Bus
	Logger *zap.Logger
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(repo providerRepo.ProviderRepository, bus *events.Bus, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo, Bus: bus, Logger: logger}
}

// GetAvailability returns the provider's full availability document.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	providerID := c.Param("providerID")
	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, pa)
}

// UpdateWeekly replaces one weekday's schedule. Overlapping ranges are
// accepted but flagged so the client can prompt for an explicit merge.
func (h *AvailabilityHandler) UpdateWeekly(c *gin.Context) {
	providerID := c.Param("providerID")
	var input struct {
		Weekday  string             `json:"weekday" binding:"required"`
		Schedule models.DaySchedule `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !validWeekday(input.Weekday) {
		utils.JSONError(c, http.StatusBadRequest, "invalid weekday", input.Weekday)
		return
	}
	for _, r := range input.Schedule.Ranges {
		if err := availability.ValidateRange(r); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid availability range", err.Error())
			return
		}
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	pa.Weekly[input.Weekday] = input.Schedule
	if err := h.Repo.SaveAvailability(c.Request.Context(), pa); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", err.Error())
		return
	}

	h.notifyChanged(providerID)
	c.JSON(http.StatusOK, gin.H{
		"schedule":    input.Schedule,
		"hasOverlaps": availability.HasOverlaps(input.Schedule),
	})
}

// UpdateCustom replaces the schedule for one specific date. A non-empty
// custom schedule fully overrides the weekly entry for that date.
func (h *AvailabilityHandler) UpdateCustom(c *gin.Context) {
	providerID := c.Param("providerID")
	var input struct {
		Date     string             `json:"date" binding:"required"`
		Schedule models.DaySchedule `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := availability.WeekdayOf(input.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	for _, r := range input.Schedule.Ranges {
		if err := availability.ValidateRange(r); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid availability range", err.Error())
			return
		}
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	if pa.Custom == nil {
		pa.Custom = models.CustomAvailability{}
	}
	if len(input.Schedule.Ranges) == 0 {
		delete(pa.Custom, input.Date)
	} else {
		pa.Custom[input.Date] = input.Schedule
	}
	if err := h.Repo.SaveAvailability(c.Request.Context(), pa); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", err.Error())
		return
	}

	h.notifyChanged(providerID)
	c.JSON(http.StatusOK, gin.H{
		"schedule":    input.Schedule,
		"hasOverlaps": availability.HasOverlaps(input.Schedule),
	})
}

// SetUnavailableDates replaces the provider's blackout dates.
func (h *AvailabilityHandler) SetUnavailableDates(c *gin.Context) {
	providerID := c.Param("providerID")
	var input struct {
		Dates []string `json:"dates"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	for _, d := range input.Dates {
		if _, err := availability.WeekdayOf(d); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	pa.UnavailableDates = input.Dates
	if err := h.Repo.SaveAvailability(c.Request.Context(), pa); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", err.Error())
		return
	}

	h.notifyChanged(providerID)
	c.JSON(http.StatusOK, gin.H{"unavailableDates": pa.UnavailableDates})
}

// MergeDay collapses overlapping ranges for a weekday or a custom date.
// Merging is an explicit user action triggered from the overlap warning.
func (h *AvailabilityHandler) MergeDay(c *gin.Context) {
	providerID := c.Param("providerID")
	var input struct {
		Weekday string `json:"weekday,omitempty"`
		Date    string `json:"date,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if (input.Weekday == "") == (input.Date == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "exactly one of weekday or date is required")
		return
	}

	pa, err := h.Repo.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}

	var merged models.DaySchedule
	if input.Weekday != "" {
		if !validWeekday(input.Weekday) {
			utils.JSONError(c, http.StatusBadRequest, "invalid weekday", input.Weekday)
			return
		}
		merged = availability.Merge(pa.Weekly[input.Weekday])
		pa.Weekly[input.Weekday] = merged
	} else {
		day, ok := pa.Custom[input.Date]
		if !ok {
			utils.JSONError(c, http.StatusNotFound, "no custom schedule for date", input.Date)
			return
		}
		merged = availability.Merge(day)
		pa.Custom[input.Date] = merged
	}

	if err := h.Repo.SaveAvailability(c.Request.Context(), pa); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save availability", err.Error())
		return
	}

	h.notifyChanged(providerID)
	c.JSON(http.StatusOK, gin.H{"schedule": merged})
}

func (h *AvailabilityHandler) notifyChanged(providerID string) {
	if h.Bus != nil {
		h.Bus.Publish(events.Event{Type: events.TypeAvailabilityChanged, ProviderID: providerID})
	}
}

func validWeekday(day string) bool {
	for _, d := range models.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
