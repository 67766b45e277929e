package roomRepo

import (
	"context"

	"stayhub/models"
)

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	// GetByID retrieves a room by id; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// ListAvailable returns bookable rooms with their hotel, newest first.
	ListAvailable(ctx context.Context) ([]models.RoomWithHotel, error)
	// ListByHotel returns every room of a hotel with the hotel resolved.
	ListByHotel(ctx context.Context, hotelID string) ([]models.RoomWithHotel, error)
	// SetAvailability updates the isAvailable flag.
	SetAvailability(ctx context.Context, id string, available bool) error
}
