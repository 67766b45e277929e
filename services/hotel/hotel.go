package hotel

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "stayhub/database/repository/hotel"
	userRepo "stayhub/database/repository/user"
	"stayhub/models"
	"stayhub/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	RegisterHotel(ctx context.Context, owner *models.User, req models.HotelRegistration) (*models.Hotel, error)
}

type DefaultHotelService struct {
	Hotels hotelRepo.HotelRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// RegisterHotel creates the owner's single hotel and promotes them to
// hotelOwner.
func (s *DefaultHotelService) RegisterHotel(ctx context.Context, owner *models.User, req models.HotelRegistration) (*models.Hotel, error) {
	h := &models.Hotel{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		City:    req.City,
		OwnerID: owner.ID,
	}
	if err := s.Hotels.Create(ctx, h); err != nil {
		if errors.Is(err, hotelRepo.ErrOwnerHasHotel) {
			return nil, services.Conflict("Hotel Already Registered")
		}
		return nil, fmt.Errorf("register hotel: %w", err)
	}

	if err := s.Users.SetRole(ctx, owner.ID, models.RoleHotelOwner); err != nil {
		return nil, fmt.Errorf("promote hotel owner %s: %w", owner.ID, err)
	}
	owner.Role = models.RoleHotelOwner

	s.Logger.Info("hotel registered", zap.String("hotel", h.ID), zap.String("owner", owner.ID))
	return h, nil
}
