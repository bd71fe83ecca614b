package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"coachly/handlers"
)

// HandlerBundle collects the handlers the route registrars wire up.
type HandlerBundle struct {
	Provider     *handlers.ProviderHandler
	Availability *handlers.AvailabilityHandler
	Slots        *handlers.SlotsHandler
	Selection    *handlers.SelectionHandler
	Booking      *handlers.BookingHandler
	Stats        *handlers.StatsHandler
}

// RegisterProviderRoutes registers provider profile, availability, slot,
// and stats endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("", hb.Provider.CreateProvider)
		api.GET("/:providerID", hb.Provider.GetProvider)
		api.PATCH("/:providerID", hb.Provider.UpdateProvider)
		api.DELETE("/:providerID", hb.Provider.DeleteProvider)

		api.GET("/:providerID/availability", hb.Availability.GetAvailability)
		api.PUT("/:providerID/availability/weekly", hb.Availability.UpdateWeekly)
		api.PUT("/:providerID/availability/custom", hb.Availability.UpdateCustom)
		api.PUT("/:providerID/availability/unavailable", hb.Availability.SetUnavailableDates)
		api.POST("/:providerID/availability/merge", hb.Availability.MergeDay)

		api.GET("/:providerID/slots/starts", hb.Slots.GetStartTimes)
		api.GET("/:providerID/slots/ends", hb.Slots.GetEndTimes)

		api.GET("/:providerID/bookings", hb.Booking.ListProviderBookings)
		api.GET("/:providerID/stats", hb.Stats.GetProviderStats)
	}
}

// RegisterSelectionRoutes registers the client slot-picking session.
func RegisterSelectionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/selection")
	{
		api.POST("/session", hb.Selection.CreateSession)
		api.POST("/session/:sessionID/toggle", hb.Selection.Toggle)
		api.POST("/session/:sessionID/remove", hb.Selection.Remove)
		api.POST("/session/:sessionID/clear", hb.Selection.Clear)
		api.GET("/session/:sessionID/summary", hb.Selection.Summary)
		api.POST("/session/:sessionID/submit", hb.Selection.Submit)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:bookingID", hb.Booking.GetBooking)
		api.PATCH("/:bookingID", hb.Booking.UpdateBooking)
		api.POST("/:bookingID/confirm", hb.Booking.ConfirmBooking)
		api.POST("/:bookingID/reject", hb.Booking.RejectBooking)
		api.POST("/:bookingID/cancel", hb.Booking.CancelBooking)
		api.POST("/:bookingID/payments", hb.Booking.RecordPayment)
		api.POST("/:bookingID/payment-intent", hb.Booking.CreatePaymentIntent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coachly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterProviderRoutes(r, hb)
	RegisterSelectionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
