// File: coachly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachly/config"
	"coachly/cron"
	"coachly/database"
	bookingRepo "coachly/database/repository/booking"
	providerRepo "coachly/database/repository/provider"
	"coachly/handlers"
	"coachly/middleware"
	"coachly/routes"
	"coachly/services/booking"
	"coachly/services/events"
	"coachly/services/selection"
	"coachly/services/tasks"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	if err := bookRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("failed to ensure booking indexes", zap.Error(err))
	}

	// event bus, explicitly passed to whoever needs it.
	bus := events.NewBus()
	bus.Subscribe(events.TypeBookingCompleted, func(e events.Event) {
		logger.Info("booking completed", zap.String("bookingId", e.BookingID))
	})

	// background completion scheduling.
	scheduler := tasks.NewScheduler(cron.RedisOpts())
	defer scheduler.Close()
	cron.InitCompletionWorker(bookRepo, bus)

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		ProviderRepo: provRepo,
		Bus:          bus,
		Completions:  scheduler,
		Logger:       logger,
	}
	paymentHandler := booking.NewStripePaymentHandler(logger)
	sessionStore := selection.NewSessionStore(utils.GetSessionCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Provider:     handlers.NewProviderHandler(provRepo, logger),
		Availability: handlers.NewAvailabilityHandler(provRepo, bus, logger),
		Slots:        handlers.NewSlotsHandler(provRepo, logger),
		Selection:    handlers.NewSelectionHandler(sessionStore, provRepo, bookingService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, paymentHandler, logger),
		Stats:        handlers.NewStatsHandler(bookRepo, provRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
