package user

import (
	"context"
	"net/http"

	userRepo "stayhub/database/repository/user"
	"stayhub/models"

	"go.uber.org/zap"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// Identity-provider sync
	ParseClerkWebhook(payload []byte, headers http.Header) (models.ClerkEvent, error)
	ApplyClerkEvent(ctx context.Context, evt models.ClerkEvent) error

	// Profile
	StoreRecentSearch(ctx context.Context, user *models.User, city string) ([]string, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
}

// WebhookVerifier checks svix-signed deliveries.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Verifier WebhookVerifier
	Logger   *zap.Logger
}
