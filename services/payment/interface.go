package payment

import (
	"context"

	bookingRepo "stayhub/database/repository/booking"
	hotelRepo "stayhub/database/repository/hotel"
	roomRepo "stayhub/database/repository/room"
	"stayhub/models"

	"go.uber.org/zap"
)

// PaymentService starts checkouts and applies processor webhooks.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, bookingID, origin string) (string, error)
	ParseEvent(payload []byte, signature string) (models.PaymentEvent, error)
	HandleEvent(ctx context.Context, evt models.PaymentEvent) error
}

// CheckoutGateway is the processor-facing side of payments.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	// FindBookingIDByPaymentIntent returns "" when no session matches.
	FindBookingIDByPaymentIntent(ctx context.Context, paymentIntentID string) (string, error)
}

// PaidNotifier is told once per booking when it becomes paid.
type PaidNotifier interface {
	NotifyBookingPaid(ctx context.Context, booking *models.Booking) error
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Bookings      bookingRepo.BookingRepository
	Rooms         roomRepo.RoomRepository
	Hotels        hotelRepo.HotelRepository
	Gateway       CheckoutGateway
	Notifier      PaidNotifier
	WebhookSecret string
	Currency      string
	Logger        *zap.Logger
}
