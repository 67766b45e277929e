package bookingRepo

import (
	"context"
	"time"

	"stayhub/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by id; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindOverlapping returns the non-cancelled bookings of a room whose range
	// intersects [checkIn, checkOut].
	FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]models.Booking, error)
	// MarkPaid flips an unpaid booking to paid. It reports false when nothing
	// changed, either because the booking is already paid or does not exist.
	MarkPaid(ctx context.Context, id string, method models.PaymentMethod) (bool, error)
	// GetDetails retrieves one booking with room, hotel and guest resolved.
	GetDetails(ctx context.Context, id string) (*models.BookingDetails, error)
	// ListByUser returns a guest's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.BookingDetails, error)
	// ListByHotel returns a hotel's bookings, newest first.
	ListByHotel(ctx context.Context, hotelID string) ([]models.BookingDetails, error)
}
