package middleware

import (
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"stayhub/database"
	userRepo "stayhub/database/repository/user"
	"stayhub/models"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxUserKey   = "user"
	ctxUserIDKey = "userID"
)

// ClerkAuthMiddleware verifies the Clerk session token in the Authorization
// header and loads the matching user into the context.
func ClerkAuthMiddleware(key *rsa.PublicKey, users userRepo.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Not authenticated")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		userID, err := utils.ValidateSessionToken(tokenString, key)
		if err != nil {
			logger.Debug("session token rejected", zap.Error(err))
			abortUnauthorized(c, "Not authenticated")
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				logger.Error("failed to load session user", zap.String("user", userID), zap.Error(err))
			}
			abortUnauthorized(c, "Not authenticated")
			return
		}

		SetUser(c, u)
		c.Next()
	}
}

// SetUser stores an authenticated user on the context.
func SetUser(c *gin.Context, u *models.User) {
	c.Set(ctxUserKey, u)
	c.Set(ctxUserIDKey, u.ID)
}

// CurrentUser returns the user set by ClerkAuthMiddleware. It must only be
// used behind that middleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}
