// Package cron runs the background asynq worker that applies time-driven
// booking transitions.
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"coachly/config"
	bookingRepo "coachly/database/repository/booking"
	"coachly/services/booking"
	"coachly/services/events"
	"coachly/services/tasks"
	"coachly/utils"
)

// RedisOpts builds the asynq Redis connection from app config.
func RedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitCompletionWorker runs the async worker in the background. It picks
// up scheduled completion tasks and moves confirmed bookings whose
// sessions have ended to completed.
func InitCompletionWorker(repo bookingRepo.BookingRepository, bus *events.Bus) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		RedisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCompleteBooking, handleCompletionTask(repo, bus, logger))

	go func() {
		logger.Info("starting completion worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("completion worker stopped", zap.Error(err))
		}
	}()
}

func handleCompletionTask(repo bookingRepo.BookingRepository, bus *events.Bus, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid completion payload", zap.Error(err))
			return err
		}

		current, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			// A deleted booking has nothing to complete; retrying the
			// task cannot change that.
			if errors.Is(err, mongo.ErrNoDocuments) {
				logger.Debug("skipping completion for missing booking",
					zap.String("bookingId", p.BookingID))
				return nil
			}
			return err
		}

		next, err := booking.Complete(*current, time.Now())
		if err != nil {
			// Already cancelled or otherwise terminal; nothing to do.
			if errors.Is(err, booking.ErrStaleRecord) {
				logger.Debug("skipping completion for terminal booking",
					zap.String("bookingId", p.BookingID))
				return nil
			}
			var terr *booking.TransitionError
			if errors.As(err, &terr) {
				logger.Debug("skipping completion for non-confirmed booking",
					zap.String("bookingId", p.BookingID),
					zap.String("status", string(terr.From)))
				return nil
			}
			return err
		}

		if err := repo.Update(ctx, &next); err != nil {
			return err
		}

		if bus != nil {
			bus.Publish(events.Event{
				Type:       events.TypeBookingCompleted,
				BookingID:  next.ID,
				ProviderID: next.ProviderID,
			})
		}
		logger.Info("booking completed", zap.String("bookingId", next.ID))
		return nil
	}
}
