package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"coachly/config"
	"coachly/models"
	"coachly/services/booking"
	"coachly/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service  booking.BookingService
	Payments booking.PaymentProcessor
	Logger   *zap.Logger
}

// NewBookingHandler constructs the handler.
func NewBookingHandler(service booking.BookingService, payments booking.PaymentProcessor, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Payments: payments, Logger: logger}
}

// CreateBooking creates a new booking. The record always starts pending; a
// provider entering a confirmed session by hand creates it and then
// confirms it as a second call.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBooking returns one booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err, "failed to load booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListProviderBookings returns all bookings for a provider, optionally
// filtered by date.
func (h *BookingHandler) ListProviderBookings(c *gin.Context) {
	providerID := c.Param("providerID")
	var (
		bookings []models.Booking
		err      error
	)
	if date := c.Query("date"); date != "" {
		bookings, err = h.Service.ListByProviderAndDate(c.Request.Context(), providerID, date)
	} else {
		bookings, err = h.Service.ListByProvider(c.Request.Context(), providerID)
	}
	if err != nil {
		h.respondError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBooking applies a partial edit. Unsent fields are preserved; the
// time slot and session details merge field by field.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var upd booking.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.Update(c.Request.Context(), c.Param("bookingID"), upd)
	if err != nil {
		h.respondError(c, err, "failed to update booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBooking transitions pending -> confirmed.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	b, err := h.Service.Confirm(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err, "failed to confirm booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

type reasonInput struct {
	Reason string `json:"reason"`
}

// RejectBooking transitions pending -> rejected with a required reason.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var input reasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.Reject(c.Request.Context(), c.Param("bookingID"), input.Reason)
	if err != nil {
		h.respondError(c, err, "failed to reject booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking transitions confirmed -> cancelled with a required reason.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input reasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.Cancel(c.Request.Context(), c.Param("bookingID"), input.Reason)
	if err != nil {
		h.respondError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// RecordPayment adds a received amount to the booking's ledger.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.RecordPayment(c.Request.Context(), c.Param("bookingID"), input.Amount)
	if err != nil {
		h.respondError(c, err, "failed to record payment")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreatePaymentIntent opens a Stripe payment intent for the booking's
// outstanding balance and returns its client secret.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err, "failed to load booking")
		return
	}

	currency := config.AppConfig.Currency
	if currency == "" {
		currency = "usd"
	}
	pi, err := h.Payments.CreatePaymentIntent(c.Request.Context(), *b, currency)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentIntentId": pi.ID,
		"clientSecret":    pi.ClientSecret,
		"amount":          pi.Amount,
	})
}

// respondError maps domain errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error, msg string) {
	var transition *booking.TransitionError
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.Is(err, booking.ErrStaleRecord):
		utils.JSONError(c, http.StatusConflict, "booking already finalized", err.Error())
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "illegal booking transition", err.Error())
	case errors.Is(err, booking.ErrMissingReason):
		utils.JSONError(c, http.StatusBadRequest, "a reason is required", err.Error())
	default:
		h.Logger.Error(msg, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msg, err.Error())
	}
}
