package room

import (
	"context"
	"errors"
	"fmt"

	"stayhub/database"
	hotelRepo "stayhub/database/repository/hotel"
	roomRepo "stayhub/database/repository/room"
	"stayhub/models"
	"stayhub/services"
	"stayhub/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxImages   = 4
	imageFolder = "stayhub/rooms"
)

type RoomService interface {
	CreateRoom(ctx context.Context, owner *models.User, input models.NewRoomInput, images []storage.Upload) (*models.Room, error)
	ListAvailable(ctx context.Context) ([]models.RoomWithHotel, error)
	ListOwnerRooms(ctx context.Context, owner *models.User) ([]models.RoomWithHotel, error)
	ToggleAvailability(ctx context.Context, owner *models.User, roomID string) (*models.Room, error)
}

type DefaultRoomService struct {
	Rooms   roomRepo.RoomRepository
	Hotels  hotelRepo.HotelRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

func (s *DefaultRoomService) ownerHotel(ctx context.Context, owner *models.User) (*models.Hotel, error) {
	h, err := s.Hotels.GetByOwner(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound("No Hotel found")
		}
		return nil, fmt.Errorf("owner hotel: %w", err)
	}
	return h, nil
}

// CreateRoom uploads the images and stores a bookable room for the owner's
// hotel.
func (s *DefaultRoomService) CreateRoom(ctx context.Context, owner *models.User, input models.NewRoomInput, images []storage.Upload) (*models.Room, error) {
	if input.PackageName == "" || input.RoomType == "" {
		return nil, services.Validation("packageName and roomType are required")
	}
	if input.PricePerNight <= 0 {
		return nil, services.Validation("pricePerNight must be positive")
	}
	if len(images) > MaxImages {
		return nil, services.Validation(fmt.Sprintf("At most %d images are allowed", MaxImages))
	}

	h, err := s.ownerHotel(ctx, owner)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.Storage.UploadImage(ctx, img, imageFolder)
		if err != nil {
			return nil, services.Upstream("Image upload failed", err)
		}
		urls = append(urls, url)
	}

	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	r := &models.Room{
		ID:            uuid.NewString(),
		HotelID:       h.ID,
		PackageName:   input.PackageName,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Amenities:     amenities,
		Images:        urls,
		IsAvailable:   true,
	}
	if err := s.Rooms.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	s.Logger.Info("room created", zap.String("room", r.ID), zap.String("hotel", h.ID), zap.Int("images", len(urls)))
	return r, nil
}

func (s *DefaultRoomService) ListAvailable(ctx context.Context) ([]models.RoomWithHotel, error) {
	rooms, err := s.Rooms.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *DefaultRoomService) ListOwnerRooms(ctx context.Context, owner *models.User) ([]models.RoomWithHotel, error) {
	h, err := s.ownerHotel(ctx, owner)
	if err != nil {
		return nil, err
	}
	rooms, err := s.Rooms.ListByHotel(ctx, h.ID)
	if err != nil {
		return nil, fmt.Errorf("list owner rooms: %w", err)
	}
	return rooms, nil
}

// ToggleAvailability flips isAvailable on one of the owner's rooms. Rooms of
// other hotels are reported as missing.
func (s *DefaultRoomService) ToggleAvailability(ctx context.Context, owner *models.User, roomID string) (*models.Room, error) {
	h, err := s.ownerHotel(ctx, owner)
	if err != nil {
		return nil, err
	}
	r, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound("Room not found")
		}
		return nil, fmt.Errorf("toggle availability: %w", err)
	}
	if r.HotelID != h.ID {
		return nil, services.NotFound("Room not found")
	}

	r.IsAvailable = !r.IsAvailable
	if err := s.Rooms.SetAvailability(ctx, r.ID, r.IsAvailable); err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}
	return r, nil
}
