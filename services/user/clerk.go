package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"stayhub/models"
	"stayhub/services"

	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

const (
	clerkUserCreated = "user.created"
	clerkUserUpdated = "user.updated"
	clerkUserDeleted = "user.deleted"
)

// NewClerkVerifier returns a verifier for the endpoint's whsec_ secret.
func NewClerkVerifier(secret string) (WebhookVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid clerk webhook secret: %w", err)
	}
	return wh, nil
}

// ParseClerkWebhook verifies the svix headers and decodes the event.
func (s *DefaultUserService) ParseClerkWebhook(payload []byte, headers http.Header) (models.ClerkEvent, error) {
	if err := s.Verifier.Verify(payload, headers); err != nil {
		return models.ClerkEvent{}, services.Unauthorized("Invalid webhook signature", err)
	}
	var evt models.ClerkEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return models.ClerkEvent{}, services.Validation("Invalid webhook payload")
	}
	return evt, nil
}

// ApplyClerkEvent mirrors a Clerk user into the users collection.
func (s *DefaultUserService) ApplyClerkEvent(ctx context.Context, evt models.ClerkEvent) error {
	if evt.Data.ID == "" {
		return services.Validation("Webhook event has no user id")
	}

	switch evt.Type {
	case clerkUserCreated, clerkUserUpdated:
		u := userFromClerk(evt.Data)
		if err := s.Repo.Upsert(ctx, u); err != nil {
			return fmt.Errorf("sync clerk user %s: %w", u.ID, err)
		}
		s.Logger.Info("user synced", zap.String("user", u.ID), zap.String("event", evt.Type))
	case clerkUserDeleted:
		if err := s.Repo.Delete(ctx, evt.Data.ID); err != nil {
			return fmt.Errorf("delete clerk user %s: %w", evt.Data.ID, err)
		}
		s.Logger.Info("user deleted", zap.String("user", evt.Data.ID))
	default:
		s.Logger.Debug("ignoring clerk event", zap.String("type", evt.Type))
	}
	return nil
}

func userFromClerk(d models.ClerkUserData) *models.User {
	u := &models.User{ID: d.ID}
	if len(d.EmailAddresses) > 0 {
		u.Email = d.EmailAddresses[0].EmailAddress
	}
	var parts []string
	for _, p := range []*string{d.FirstName, d.LastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	u.Username = strings.Join(parts, " ")
	if d.ImageURL != nil {
		u.Image = *d.ImageURL
	}
	return u
}
