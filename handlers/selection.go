package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "coachly/database/repository/provider"
	"coachly/models"
	"coachly/services/booking"
	"coachly/services/selection"
	"coachly/utils"
)

// SelectionHandler manages a client's Redis-backed selection session:
// toggling slot picks, the priced summary, and final submission into
// bookings.
type SelectionHandler struct {
	Store        *selection.SessionStore
	ProviderRepo providerRepo.ProviderRepository
	Bookings     booking.BookingService
	Logger       *zap.Logger
}

// NewSelectionHandler constructs the handler.
func NewSelectionHandler(store *selection.SessionStore, repo providerRepo.ProviderRepository, bookings booking.BookingService, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{Store: store, ProviderRepo: repo, Bookings: bookings, Logger: logger}
}

// CreateSession opens a fresh selection session.
func (h *SelectionHandler) CreateSession(c *gin.Context) {
	sessionID, err := h.Store.Create(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create selection session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": sessionID})
}

type toggleInput struct {
	Date            string           `json:"date" binding:"required"`
	StartTime       models.TimeOfDay `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	ProviderID      string           `json:"providerId"`
	Technique       string           `json:"technique,omitempty"`
	SkillLevel      string           `json:"skillLevel,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// Toggle flips one (date, start time) selection on or off.
func (h *SelectionHandler) Toggle(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input toggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.DurationMinutes <= 0 || input.DurationMinutes%models.SlotGranularity != 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration",
			fmt.Sprintf("durationMinutes must be a positive multiple of %d", models.SlotGranularity))
		return
	}

	agg, err := h.loadSession(c, sessionID)
	if err != nil {
		return
	}
	agg.Toggle(input.Date, input.StartTime, input.DurationMinutes, selection.BlockMeta{
		ProviderID: input.ProviderID,
		Technique:  input.Technique,
		SkillLevel: input.SkillLevel,
		Notes:      input.Notes,
	})
	h.saveAndRespond(c, sessionID, agg)
}

// Remove drops one selection without the toggle-on fallback.
func (h *SelectionHandler) Remove(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date      string           `json:"date" binding:"required"`
		StartTime models.TimeOfDay `json:"startTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	agg, err := h.loadSession(c, sessionID)
	if err != nil {
		return
	}
	agg.Remove(input.Date, input.StartTime)
	h.saveAndRespond(c, sessionID, agg)
}

// Clear empties the session's selections.
func (h *SelectionHandler) Clear(c *gin.Context) {
	sessionID := c.Param("sessionID")
	agg, err := h.loadSession(c, sessionID)
	if err != nil {
		return
	}
	agg.Clear()
	h.saveAndRespond(c, sessionID, agg)
}

// Summary prices the session's selections at each provider's current rate
// and returns the grouped totals plus per-date display ranges.
func (h *SelectionHandler) Summary(c *gin.Context) {
	sessionID := c.Param("sessionID")
	agg, err := h.loadSession(c, sessionID)
	if err != nil {
		return
	}

	summary := agg.Summarize(h.providerRates(c, agg))

	// Display grouping is per provider within a date; two providers'
	// picks never merge into one range.
	displayRanges := make(map[string]map[string][]models.DisplayRange)
	for date, blocks := range agg.Blocks {
		displayRanges[date] = selection.GroupContiguousByProvider(blocks)
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":       summary,
		"displayRanges": displayRanges,
	})
}

// Submit converts every selected block into its own booking and deletes
// the session only when all blocks succeeded. Per-item failures come back
// in the results; the session survives so the client can retry the failed
// blocks.
func (h *SelectionHandler) Submit(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		ClientID  string `json:"clientId" binding:"required"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	agg, err := h.loadSession(c, sessionID)
	if err != nil {
		return
	}
	if agg.Count() == 0 {
		utils.JSONError(c, http.StatusBadRequest, "empty selection", "no slots selected")
		return
	}

	results := h.Bookings.SubmitSelections(c.Request.Context(), booking.ClientInfo{
		ClientID:  input.ClientID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}, agg.All())

	// Drop every block that became a booking so a retry of the session
	// only resubmits the failed items.
	allOK := true
	for _, r := range results {
		if r.Error != "" {
			allOK = false
			continue
		}
		agg.Remove(r.Block.Date, r.Block.StartTime)
	}
	if allOK {
		if err := h.Store.Delete(c.Request.Context(), sessionID); err != nil {
			h.Logger.Warn("failed to delete selection session after submit",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
	} else if err := h.Store.Save(c.Request.Context(), sessionID, agg); err != nil {
		h.Logger.Warn("failed to save selection session after partial submit",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	status := http.StatusCreated
	if !allOK {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"results": results})
}

func (h *SelectionHandler) loadSession(c *gin.Context, sessionID string) (*selection.Aggregator, error) {
	agg, err := h.Store.Load(c.Request.Context(), sessionID)
	if errors.Is(err, selection.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "selection session not found", sessionID)
		return nil, err
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load selection session", err.Error())
		return nil, err
	}
	return agg, nil
}

func (h *SelectionHandler) saveAndRespond(c *gin.Context, sessionID string, agg *selection.Aggregator) {
	if err := h.Store.Save(c.Request.Context(), sessionID, agg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save selection session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"count":     agg.Count(),
		"blocks":    agg.Blocks,
	})
}

// providerRates loads current rates for every provider referenced by the
// selection. An unknown provider simply falls back to the default rate.
func (h *SelectionHandler) providerRates(c *gin.Context, agg *selection.Aggregator) map[string]selection.Rate {
	rates := make(map[string]selection.Rate)
	for _, blocks := range agg.Blocks {
		for _, b := range blocks {
			if _, ok := rates[b.ProviderID]; ok {
				continue
			}
			p, err := h.ProviderRepo.GetByID(c.Request.Context(), b.ProviderID)
			if err != nil {
				h.Logger.Debug("provider rate lookup failed, using fallback",
					zap.String("providerId", b.ProviderID), zap.Error(err))
				rates[b.ProviderID] = selection.Rate{}
				continue
			}
			rates[b.ProviderID] = selection.Rate{Custom: p.CustomRate, Hourly: p.HourlyRate}
		}
	}
	return rates
}
