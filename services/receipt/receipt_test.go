package receipt

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/database/repository/memory"
	"stayhub/models"
	"stayhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*DefaultReceiptService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed(
		models.User{ID: "guest", Username: "Asha Rai", Email: "asha@example.com"},
		models.User{ID: "owner", Username: "Dawa"},
		models.Room{ID: "room_1", HotelID: "hotel_1", PackageName: "Everest Base Camp"},
		models.Hotel{ID: "hotel_1", Name: "Summit Lodge", Address: "Lukla", OwnerID: "owner"},
		models.Booking{
			ID:            "b-1",
			UserID:        "guest",
			RoomID:        "room_1",
			HotelID:       "hotel_1",
			CheckInDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2025, 3, 12, 23, 59, 59, 999000000, time.UTC),
			Guests:        2,
			TotalPrice:    100,
			Status:        models.BookingPending,
			PaymentMethod: models.PayAtProperty,
		},
	)
	return &DefaultReceiptService{
		Bookings: store.Repositories().Bookings,
		LogoPath: "does/not/exist.png",
		Logger:   zap.NewNop(),
	}, store
}

func TestRenderForGuest(t *testing.T) {
	svc, _ := newTestService(t)

	r, err := svc.Render(context.Background(), &models.User{ID: "guest"}, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "receipt-b-1.pdf", r.Filename)
	assert.True(t, bytes.HasPrefix(r.Content, []byte("%PDF-")))
}

func TestRenderForHotelOwner(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Render(context.Background(), &models.User{ID: "owner"}, "b-1")
	assert.NoError(t, err)
}

func TestRenderHidesOtherUsersBookings(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Render(context.Background(), &models.User{ID: "stranger"}, "b-1")
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestRenderMissingBooking(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Render(context.Background(), &models.User{ID: "guest"}, "nope")
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
	assert.Equal(t, "Booking not found", services.MessageOf(err, ""))
}

func TestRenderStoreFailure(t *testing.T) {
	svc, store := newTestService(t)
	store.Err = errors.New("timeout")

	_, err := svc.Render(context.Background(), &models.User{ID: "guest"}, "b-1")
	require.Error(t, err)
	assert.Empty(t, services.KindOf(err))
}
