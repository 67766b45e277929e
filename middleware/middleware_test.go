package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/database/repository/memory"
	"stayhub/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, key *rsa.PrivateKey, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func newAuthRouter(t *testing.T) (*gin.Engine, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	store := memory.NewStore()
	store.Seed(
		models.User{ID: "user_1", Role: models.RoleUser},
		models.User{ID: "owner_1", Role: models.RoleHotelOwner},
	)

	r := gin.New()
	r.Use(ClerkAuthMiddleware(&key.PublicKey, store.Repositories().Users, zap.NewNop()))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})
	r.GET("/owner", RequireRole(models.RoleHotelOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, key
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClerkAuthMiddleware(t *testing.T) {
	r, key := newAuthRouter(t)

	w := get(r, "/me", signToken(t, key, "user_1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user_1"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", signToken(t, key, "ghost")).Code)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", signToken(t, other, "user_1")).Code)
}

func TestRequireRole(t *testing.T) {
	r, key := newAuthRouter(t)

	assert.Equal(t, http.StatusForbidden, get(r, "/owner", signToken(t, key, "user_1")).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/owner", signToken(t, key, "owner_1")).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "198.51.100.1")
	assert.Equal(t, "198.51.100.1", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}
