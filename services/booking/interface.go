package booking

import (
	"context"
	"time"

	bookingRepo "stayhub/database/repository/booking"
	hotelRepo "stayhub/database/repository/hotel"
	roomRepo "stayhub/database/repository/room"
	"stayhub/models"

	"go.uber.org/zap"
)

// BookingService covers availability, booking creation and the read views.
type BookingService interface {
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) bool
	CheckAvailability(ctx context.Context, req models.BookingRequest) (bool, error)
	CreateBooking(ctx context.Context, user *models.User, req models.BookingRequest) (*models.Booking, error)
	UserBookings(ctx context.Context, userID string) ([]models.BookingDetails, error)
	OwnerDashboard(ctx context.Context, ownerID string) (*models.OwnerDashboard, error)
}

// RoomLocker serializes the check-then-insert sequence for one room.
type RoomLocker interface {
	Lock(ctx context.Context, roomID string) (release func(), err error)
}

// ConfirmationNotifier hands the confirmation email off for delivery.
type ConfirmationNotifier interface {
	EnqueueBookingConfirmation(ctx context.Context, email models.BookingConfirmationEmail) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Hotels   hotelRepo.HotelRepository
	Locker   RoomLocker
	Notifier ConfirmationNotifier
	Location *time.Location
	Logger   *zap.Logger
}

func (s *DefaultBookingService) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
