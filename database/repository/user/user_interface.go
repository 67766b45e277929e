package userRepo

import (
	"context"

	"stayhub/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its identity-provider id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Upsert creates the user or overwrites its profile fields. Role, search
	// history and device token are left untouched on update.
	Upsert(ctx context.Context, user *models.User) error
	// Delete removes a user; deleting a missing user is not an error.
	Delete(ctx context.Context, id string) error
	SetRole(ctx context.Context, id, role string) error
	SetRecentSearchedCities(ctx context.Context, id string, cities []string) error
	SetFCMToken(ctx context.Context, id, token string) error
}
