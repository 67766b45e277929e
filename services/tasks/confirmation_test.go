package tasks

import (
	"testing"
	"time"

	"stayhub/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirmationTaskPayload(t *testing.T) {
	in := models.BookingConfirmationEmail{
		To:          "asha@example.com",
		BookingID:   "b-1",
		HotelName:   "Summit Lodge",
		CheckInDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalPrice:  400,
	}

	task, opts, err := NewBookingConfirmationTask(in)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirmation, task.Type())
	assert.Len(t, opts, 2)

	out, err := ParseBookingConfirmationTask(task)
	require.NoError(t, err)
	assert.Equal(t, in.BookingID, out.BookingID)
	assert.True(t, in.CheckInDate.Equal(out.CheckInDate))
}

func TestParseBookingConfirmationTaskRejectsGarbage(t *testing.T) {
	_, err := ParseBookingConfirmationTask(asynq.NewTask(TypeBookingConfirmation, []byte("{")))
	assert.Error(t, err)
}
