package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"stayhub/models"
	"stayhub/services"

	"go.uber.org/zap"
)

const msgPaymentFailed = "Payment Failed"

// CreateCheckoutSession opens a one-item checkout for the booking and
// returns the hosted payment page URL. The booking itself is not touched.
func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, bookingID, origin string) (string, error) {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return "", services.Validation("Missing request origin")
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return "", services.Upstream(msgPaymentFailed, err)
	}
	room, err := s.Rooms.GetByID(ctx, booking.RoomID)
	if err != nil {
		return "", services.Upstream(msgPaymentFailed, err)
	}
	if _, err := s.Hotels.GetByID(ctx, room.HotelID); err != nil {
		return "", services.Upstream(msgPaymentFailed, err)
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, models.CheckoutRequest{
		BookingID:   booking.ID,
		ProductName: room.PackageName,
		AmountMinor: int64(math.Round(booking.TotalPrice * 100)),
		Currency:    s.currency(),
		SuccessURL:  origin + "/loader/my-bookings",
		CancelURL:   origin + "/my-bookings",
	})
	if err != nil {
		s.Logger.Error("checkout session failed", zap.String("booking", booking.ID), zap.Error(err))
		return "", services.Upstream(msgPaymentFailed, err)
	}

	s.Logger.Info("checkout session created",
		zap.String("booking", booking.ID),
		zap.String("session", session.ID),
	)
	return session.URL, nil
}

func (s *DefaultPaymentService) currency() string {
	if s.Currency == "" {
		return "usd"
	}
	return strings.ToLower(s.Currency)
}

func (s *DefaultPaymentService) ParseEvent(payload []byte, signature string) (models.PaymentEvent, error) {
	evt, err := ParseStripeEvent(payload, signature, s.WebhookSecret)
	if err != nil {
		return models.PaymentEvent{}, services.Unauthorized("Webhook Error", err)
	}
	return evt, nil
}

// HandleEvent applies a verified event. Unknown bookings and sessions are
// logged and ignored; the caller acknowledges the event either way.
func (s *DefaultPaymentService) HandleEvent(ctx context.Context, evt models.PaymentEvent) error {
	var bookingID string

	switch evt.Kind {
	case models.CheckoutCompleted:
		bookingID = evt.BookingID
	case models.PaymentSucceeded:
		id, err := s.Gateway.FindBookingIDByPaymentIntent(ctx, evt.PaymentIntentID)
		if err != nil {
			return fmt.Errorf("resolve payment intent %s: %w", evt.PaymentIntentID, err)
		}
		bookingID = id
	default:
		s.Logger.Debug("unhandled payment event", zap.String("type", evt.RawType), zap.String("event", evt.ID))
		return nil
	}

	if bookingID == "" {
		s.Logger.Warn("payment event without booking",
			zap.String("event", evt.ID),
			zap.String("type", evt.RawType),
			zap.String("paymentIntent", evt.PaymentIntentID),
		)
		return nil
	}
	return s.markPaid(ctx, bookingID, evt)
}

func (s *DefaultPaymentService) markPaid(ctx context.Context, bookingID string, evt models.PaymentEvent) error {
	changed, err := s.Bookings.MarkPaid(ctx, bookingID, models.PayWithStripe)
	if err != nil {
		return fmt.Errorf("mark booking %s paid: %w", bookingID, err)
	}
	if !changed {
		// Already paid, or no such booking.
		s.Logger.Info("payment event caused no change",
			zap.String("booking", bookingID),
			zap.String("event", evt.ID),
		)
		return nil
	}

	s.Logger.Info("booking paid", zap.String("booking", bookingID), zap.String("event", evt.ID))

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		s.Logger.Warn("paid booking lookup failed", zap.String("booking", bookingID), zap.Error(err))
		return nil
	}
	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingPaid(ctx, booking); err != nil {
			s.Logger.Warn("owner notification failed", zap.String("booking", bookingID), zap.Error(err))
		}
	}
	return nil
}
