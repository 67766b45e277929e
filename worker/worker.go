package worker

import (
	"context"
	"fmt"
	"time"

	"stayhub/services/notification"
	"stayhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EmailWorker drains the confirmation-email queue.
type EmailWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewEmailWorker builds the asynq server over the queue database.
func NewEmailWorker(redisOpts asynq.RedisClientOpt, mailer notification.Mailer, logger *zap.Logger) *EmailWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, HandleBookingConfirmation(mailer, logger))

	return &EmailWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying start-up with backoff.
func (w *EmailWorker) Start() {
	go func() {
		w.logger.Info("starting email worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("email worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				w.logger.Error("email worker gave up, confirmation emails stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *EmailWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleBookingConfirmation renders and sends one confirmation email.
// Malformed payloads are skipped instead of retried.
func HandleBookingConfirmation(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingConfirmationTask(task)
		if err != nil {
			logger.Error("invalid booking confirmation payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		subject, body, err := notification.RenderBookingConfirmation(p)
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := mailer.Send(ctx, p.To, subject, body); err != nil {
			logger.Warn("failed to send booking confirmation",
				zap.String("booking", p.BookingID),
				zap.Error(err),
			)
			return err
		}

		logger.Info("booking confirmation sent",
			zap.String("booking", p.BookingID),
			zap.String("to", p.To),
		)
		return nil
	}
}
