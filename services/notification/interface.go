package notification

import (
	"context"

	"stayhub/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
)

// NotificationService queues guest emails and pushes owner alerts.
type NotificationService interface {
	EnqueueBookingConfirmation(ctx context.Context, email models.BookingConfirmationEmail) error
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	NotifyBookingPaid(ctx context.Context, booking *models.Booking) error
}

// TaskEnqueuer is the part of *asynq.Client the service uses.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PushSender is the part of *messaging.Client the service uses.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Mailer delivers one HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
