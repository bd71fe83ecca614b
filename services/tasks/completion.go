// Package tasks schedules deferred booking work on an asynq queue.
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TypeCompleteBooking marks a confirmed booking completed once its session
// has ended.
const TypeCompleteBooking = "booking:complete"

// CompletionPayload identifies the booking to complete.
type CompletionPayload struct {
	BookingID string `json:"bookingId"`
}

// NewCompletionTask builds a completion task scheduled at the session's
// end time.
func NewCompletionTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(CompletionPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCompleteBooking, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// Scheduler enqueues booking tasks.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler wraps an asynq client.
func NewScheduler(redisOpts asynq.RedisClientOpt) *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts)}
}

// ScheduleCompletion enqueues the completion task for a booking.
func (s *Scheduler) ScheduleCompletion(bookingID string, fireAt time.Time) error {
	task, opts, err := NewCompletionTask(bookingID, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build completion task for booking %s: %w", bookingID, err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue completion task for booking %s: %w", bookingID, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
