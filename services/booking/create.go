package booking

import (
	"context"
	"errors"
	"fmt"

	"stayhub/database"
	"stayhub/models"
	"stayhub/services"
	"stayhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgRoomUnavailable = "Room is not available"
	msgRoomNotFound    = "Room or Hotel not found"
	msgInvalidPrice    = "Invalid total price"
	msgCreateFailed    = "Failed to create Booking"
)

// CreateBooking re-checks availability under the room lock, stores a pending
// unpaid booking and queues the confirmation email.
//
// Pricing is per guest: expected = pricePerNight * guests, regardless of the
// number of nights.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, user *models.User, req models.BookingRequest) (*models.Booking, error) {
	if req.Guests <= 0 {
		return nil, services.Validation("Guests must be a positive number")
	}
	if req.TotalPrice < 0 {
		return nil, services.Validation(msgInvalidPrice)
	}
	checkIn, checkOut, err := s.parseStay(req)
	if err != nil {
		return nil, err
	}

	release, err := s.Locker.Lock(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, utils.ErrLockBusy) {
			return nil, services.Conflict(msgRoomUnavailable)
		}
		return nil, services.Upstream(msgCreateFailed, err)
	}
	defer release()

	if !s.IsAvailable(ctx, req.RoomID, checkIn, checkOut) {
		return nil, services.Conflict(msgRoomUnavailable)
	}

	room, err := s.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound(msgRoomNotFound)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	hotel, err := s.Hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound(msgRoomNotFound)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	in, out := NormalizeRange(checkIn, checkOut, s.loc())
	expectedPrice := room.PricePerNight * float64(req.Guests)

	totalPrice := req.TotalPrice
	if totalPrice == 0 {
		totalPrice = expectedPrice
	}

	booking := &models.Booking{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		RoomID:        room.ID,
		HotelID:       hotel.ID,
		CheckInDate:   in,
		CheckOutDate:  out,
		Guests:        req.Guests,
		TotalPrice:    totalPrice,
		Status:        models.BookingPending,
		IsPaid:        false,
		PaymentMethod: models.PayAtProperty,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("booking", booking.ID),
		zap.String("room", room.ID),
		zap.String("user", user.ID),
		zap.Int("nights", Nights(in, out)),
		zap.Float64("totalPrice", totalPrice),
	)

	// The price is checked only after the insert, so a mismatch leaves the
	// pending booking in place and holds the dates.
	if req.TotalPrice != expectedPrice {
		s.Logger.Warn("booking total price mismatch",
			zap.String("booking", booking.ID),
			zap.Float64("expected", expectedPrice),
			zap.Float64("got", req.TotalPrice),
		)
		return booking, services.Validation(msgInvalidPrice)
	}

	email := models.BookingConfirmationEmail{
		To:           user.Email,
		GuestName:    user.Username,
		BookingID:    booking.ID,
		PackageName:  room.PackageName,
		HotelName:    hotel.Name,
		HotelAddress: hotel.Address,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		TotalPrice:   booking.TotalPrice,
	}
	if err := s.Notifier.EnqueueBookingConfirmation(ctx, email); err != nil {
		s.Logger.Error("failed to queue booking confirmation",
			zap.String("booking", booking.ID),
			zap.Error(err),
		)
	}

	return booking, nil
}
