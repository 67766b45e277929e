package notification

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "stayhub/database/repository/hotel"
	userRepo "stayhub/database/repository/user"
	"stayhub/models"
	"stayhub/services/tasks"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// ErrNoPushTarget is returned when the recipient has no registered device.
var ErrNoPushTarget = errors.New("recipient has no FCM token")

// DefaultNotificationService is the production implementation. Push may be
// nil when Firebase is not configured; pushes are then skipped.
type DefaultNotificationService struct {
	users  userRepo.UserRepository
	hotels hotelRepo.HotelRepository
	queue  TaskEnqueuer
	push   PushSender
	logger *zap.Logger
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	hotels hotelRepo.HotelRepository,
	queue TaskEnqueuer,
	push PushSender,
	logger *zap.Logger,
) (*DefaultNotificationService, error) {
	if users == nil || hotels == nil || queue == nil {
		return nil, fmt.Errorf("notification service initialization error: users, hotels or queue is nil")
	}
	return &DefaultNotificationService{
		users:  users,
		hotels: hotels,
		queue:  queue,
		push:   push,
		logger: logger,
	}, nil
}

func (s *DefaultNotificationService) EnqueueBookingConfirmation(ctx context.Context, email models.BookingConfirmationEmail) error {
	task, opts, err := tasks.NewBookingConfirmationTask(email)
	if err != nil {
		return fmt.Errorf("EnqueueBookingConfirmation: encode payload: %w", err)
	}
	info, err := s.queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("EnqueueBookingConfirmation: %w", err)
	}
	s.logger.Debug("booking confirmation queued",
		zap.String("booking", email.BookingID),
		zap.String("task", info.ID),
	)
	return nil
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	if s.push == nil {
		return nil
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return ErrNoPushTarget
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	id, err := s.push.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	s.logger.Debug("push sent", zap.String("user", userID), zap.String("message", id))
	return nil
}

// NotifyBookingPaid tells the hotel owner that a booking has been paid.
// Owners without a device are skipped silently.
func (s *DefaultNotificationService) NotifyBookingPaid(ctx context.Context, booking *models.Booking) error {
	hotel, err := s.hotels.GetByID(ctx, booking.HotelID)
	if err != nil {
		return fmt.Errorf("NotifyBookingPaid: hotel %s: %w", booking.HotelID, err)
	}

	title := "New paid booking"
	body := fmt.Sprintf("A booking at %s from %s to %s has been paid (%.2f).",
		hotel.Name,
		booking.CheckInDate.Format("Jan 2"),
		booking.CheckOutDate.Format("Jan 2, 2006"),
		booking.TotalPrice,
	)
	err = s.SendUserPushNotification(ctx, hotel.OwnerID, title, body, map[string]string{
		"type":      "booking_paid",
		"bookingId": booking.ID,
		"role":      models.RoleHotelOwner,
	})
	if errors.Is(err, ErrNoPushTarget) {
		return nil
	}
	return err
}
