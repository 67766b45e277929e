package hotelRepo

import (
	"context"

	"stayhub/models"
)

// HotelRepository defines methods for hotel data access.
type HotelRepository interface {
	// Create inserts a hotel; ErrOwnerHasHotel when the owner already has one.
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	// GetByOwner returns the owner's hotel; database.ErrNotFound when none.
	GetByOwner(ctx context.Context, ownerID string) (*models.Hotel, error)
}
