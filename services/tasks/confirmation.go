package tasks

import (
	"encoding/json"
	"time"

	"stayhub/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

func NewBookingConfirmationTask(payload models.BookingConfirmationEmail) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

func ParseBookingConfirmationTask(task *asynq.Task) (models.BookingConfirmationEmail, error) {
	var p models.BookingConfirmationEmail
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
