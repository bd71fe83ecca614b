package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "coachly/database/repository/booking"
	providerRepo "coachly/database/repository/provider"
	"coachly/services/stats"
	"coachly/utils"
)

// StatsHandler serves the provider dashboard summary.
type StatsHandler struct {
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Logger    *zap.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(bookings bookingRepo.BookingRepository, providers providerRepo.ProviderRepository, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{Bookings: bookings, Providers: providers, Logger: logger}
}

// GetProviderStats computes today's bookings, the coming week's bookings,
// pending requests, and projected earnings from the provider's full
// booking history.
func (h *StatsHandler) GetProviderStats(c *gin.Context) {
	providerID := c.Param("providerID")

	provider, err := h.Providers.GetByID(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	bookings, err := h.Bookings.GetByProvider(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, stats.Compute(bookings, provider.HourlyRate, time.Now()))
}
