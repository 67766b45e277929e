package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stayhub/database/repository"
	"stayhub/database/repository/memory"
	"stayhub/models"

	"go.uber.org/zap"
)

// mutexLocker serializes per process; enough to exercise the lock path.
type mutexLocker struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (l *mutexLocker) Lock(context.Context, string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.mu.Lock()
	l.calls++
	return l.mu.Unlock, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	emails []models.BookingConfirmationEmail
	err    error
}

func (n *recordingNotifier) EnqueueBookingConfirmation(_ context.Context, e models.BookingConfirmationEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, e)
	return n.err
}

type fixture struct {
	svc      *DefaultBookingService
	store    *memory.Store
	repos    *repository.Repositories
	locker   *mutexLocker
	notifier *recordingNotifier
	guest    *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed(
		models.Room{ID: "room_1", HotelID: "hotel_1", PackageName: "Everest Base Camp", PricePerNight: 200, IsAvailable: true},
		models.Room{ID: "orphan", HotelID: "missing", PricePerNight: 50},
		models.Hotel{ID: "hotel_1", Name: "Summit Lodge", Address: "Lukla", OwnerID: "owner_1"},
	)
	repos := store.Repositories()
	locker := &mutexLocker{}
	notifier := &recordingNotifier{}

	return &fixture{
		store:    store,
		repos:    repos,
		locker:   locker,
		notifier: notifier,
		guest:    &models.User{ID: "user_1", Username: "Asha", Email: "asha@example.com", Role: models.RoleUser},
		svc: &DefaultBookingService{
			Bookings: repos.Bookings,
			Rooms:    repos.Rooms,
			Hotels:   repos.Hotels,
			Locker:   locker,
			Notifier: notifier,
			Location: time.UTC,
			Logger:   zap.NewNop(),
		},
	}
}

var errStore = errors.New("connection refused")
