package worker

import (
	"context"
	"errors"
	"testing"

	"stayhub/models"
	"stayhub/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct{ to, subject, body string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func TestHandleBookingConfirmationSends(t *testing.T) {
	mailer := &fakeMailer{}
	task, _, err := tasks.NewBookingConfirmationTask(models.BookingConfirmationEmail{
		To:        "asha@example.com",
		BookingID: "b-1",
		HotelName: "Summit Lodge",
	})
	require.NoError(t, err)

	require.NoError(t, HandleBookingConfirmation(mailer, zap.NewNop())(context.Background(), task))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
	assert.Equal(t, "Hotel Booking Details", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Summit Lodge")
}

func TestHandleBookingConfirmationRetriesOnSendFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection reset")}
	task, _, err := tasks.NewBookingConfirmationTask(models.BookingConfirmationEmail{To: "asha@example.com"})
	require.NoError(t, err)

	err = HandleBookingConfirmation(mailer, zap.NewNop())(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleBookingConfirmationSkipsBadPayload(t *testing.T) {
	mailer := &fakeMailer{}
	task := asynq.NewTask(tasks.TypeBookingConfirmation, []byte("not json"))

	err := HandleBookingConfirmation(mailer, zap.NewNop())(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, mailer.sent)
}
