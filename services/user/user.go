package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayhub/database"
	"stayhub/models"
	"stayhub/services"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound("User not found")
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

// StoreRecentSearch appends a city to the user's history, keeping the newest
// MaxRecentSearchedCities entries. A repeated city moves to the end.
func (s *DefaultUserService) StoreRecentSearch(ctx context.Context, user *models.User, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, services.Validation("City is required")
	}

	cities := make([]string, 0, models.MaxRecentSearchedCities)
	for _, c := range user.RecentSearchedCities {
		if !strings.EqualFold(c, city) {
			cities = append(cities, c)
		}
	}
	cities = append(cities, city)
	if len(cities) > models.MaxRecentSearchedCities {
		cities = cities[len(cities)-models.MaxRecentSearchedCities:]
	}

	if err := s.Repo.SetRecentSearchedCities(ctx, user.ID, cities); err != nil {
		return nil, fmt.Errorf("store recent search: %w", err)
	}
	user.RecentSearchedCities = cities
	return cities, nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if strings.TrimSpace(token) == "" {
		return services.Validation("fcmToken is required")
	}
	if err := s.Repo.SetFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return services.NotFound("User not found")
		}
		return fmt.Errorf("update fcm token: %w", err)
	}
	return nil
}
