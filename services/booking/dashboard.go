package booking

import (
	"context"
	"errors"
	"fmt"

	"stayhub/database"
	"stayhub/models"
	"stayhub/services"
)

// UserBookings lists the guest's bookings, newest first.
func (s *DefaultBookingService) UserBookings(ctx context.Context, userID string) ([]models.BookingDetails, error) {
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

// OwnerDashboard totals the bookings of the owner's hotel.
func (s *DefaultBookingService) OwnerDashboard(ctx context.Context, ownerID string) (*models.OwnerDashboard, error) {
	hotel, err := s.Hotels.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound("No hotel found")
		}
		return nil, fmt.Errorf("owner dashboard: %w", err)
	}

	bookings, err := s.Bookings.ListByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("owner dashboard: %w", err)
	}

	dashboard := &models.OwnerDashboard{
		TotalBookings: len(bookings),
		Bookings:      bookings,
	}
	for _, b := range bookings {
		dashboard.TotalRevenue += b.TotalPrice
	}
	return dashboard, nil
}
