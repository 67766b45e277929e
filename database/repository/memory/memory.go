// Package memory holds in-process repository implementations for tests and
// local runs without MongoDB.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"stayhub/database"
	"stayhub/database/repository"
	hotelRepo "stayhub/database/repository/hotel"
	"stayhub/models"
)

// Store is shared by all repositories so populated views can resolve
// references. Err, when set, is returned by every call.
type Store struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	rooms    map[string]models.Room
	hotels   map[string]models.Hotel
	users    map[string]models.User

	Err error
}

func NewStore() *Store {
	return &Store{
		bookings: map[string]models.Booking{},
		rooms:    map[string]models.Room{},
		hotels:   map[string]models.Hotel{},
		users:    map[string]models.User{},
	}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Bookings: BookingRepo{s},
		Rooms:    RoomRepo{s},
		Hotels:   HotelRepo{s},
		Users:    UserRepo{s},
	}
}

// Seed inserts documents as-is, keeping any timestamps already set.
func (s *Store) Seed(items ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		switch v := item.(type) {
		case models.Booking:
			s.bookings[v.ID] = v
		case models.Room:
			s.rooms[v.ID] = v
		case models.Hotel:
			s.hotels[v.ID] = v
		case models.User:
			s.users[v.ID] = v
		}
	}
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

type BookingRepo struct{ s *Store }

func (r BookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	stamp(&b.CreatedAt, &b.UpdatedAt)
	r.s.bookings[b.ID] = *b
	return nil
}

func (r BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (r BookingRepo) FindOverlapping(_ context.Context, roomID string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var res []models.Booking
	for _, b := range r.s.bookings {
		if b.RoomID != roomID || b.Status == models.BookingCancelled {
			continue
		}
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r BookingRepo) MarkPaid(_ context.Context, id string, method models.PaymentMethod) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	b, ok := r.s.bookings[id]
	if !ok || b.IsPaid {
		return false, nil
	}
	b.IsPaid = true
	b.Status = models.BookingConfirmed
	b.PaymentMethod = method
	b.UpdatedAt = time.Now()
	r.s.bookings[id] = b
	return true, nil
}

// details must be called with the lock held.
func (r BookingRepo) details(b models.Booking) models.BookingDetails {
	d := models.BookingDetails{Booking: b}
	if room, ok := r.s.rooms[b.RoomID]; ok {
		d.Room = &room
	}
	if hotel, ok := r.s.hotels[b.HotelID]; ok {
		d.Hotel = &hotel
	}
	if user, ok := r.s.users[b.UserID]; ok {
		d.Guest = &user
	}
	return d
}

func (r BookingRepo) GetDetails(_ context.Context, id string) (*models.BookingDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	d := r.details(b)
	return &d, nil
}

func (r BookingRepo) list(match func(models.Booking) bool) ([]models.BookingDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	res := []models.BookingDetails{}
	for _, b := range r.s.bookings {
		if match(b) {
			res = append(res, r.details(b))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r BookingRepo) ListByUser(_ context.Context, userID string) ([]models.BookingDetails, error) {
	return r.list(func(b models.Booking) bool { return b.UserID == userID })
}

func (r BookingRepo) ListByHotel(_ context.Context, hotelID string) ([]models.BookingDetails, error) {
	return r.list(func(b models.Booking) bool { return b.HotelID == hotelID })
}

type RoomRepo struct{ s *Store }

func (r RoomRepo) Create(_ context.Context, room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	stamp(&room.CreatedAt, &room.UpdatedAt)
	r.s.rooms[room.ID] = *room
	return nil
}

func (r RoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &room, nil
}

func (r RoomRepo) list(match func(models.Room) bool) ([]models.RoomWithHotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	res := []models.RoomWithHotel{}
	for _, room := range r.s.rooms {
		if !match(room) {
			continue
		}
		rw := models.RoomWithHotel{Room: room}
		if hotel, ok := r.s.hotels[room.HotelID]; ok {
			rw.Hotel = &hotel
		}
		res = append(res, rw)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r RoomRepo) ListAvailable(context.Context) ([]models.RoomWithHotel, error) {
	return r.list(func(room models.Room) bool { return room.IsAvailable })
}

func (r RoomRepo) ListByHotel(_ context.Context, hotelID string) ([]models.RoomWithHotel, error) {
	return r.list(func(room models.Room) bool { return room.HotelID == hotelID })
}

func (r RoomRepo) SetAvailability(_ context.Context, id string, available bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	room, ok := r.s.rooms[id]
	if !ok {
		return database.ErrNotFound
	}
	room.IsAvailable = available
	room.UpdatedAt = time.Now()
	r.s.rooms[id] = room
	return nil
}

type HotelRepo struct{ s *Store }

func (r HotelRepo) Create(_ context.Context, hotel *models.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, h := range r.s.hotels {
		if h.OwnerID == hotel.OwnerID {
			return hotelRepo.ErrOwnerHasHotel
		}
	}
	stamp(&hotel.CreatedAt, &hotel.UpdatedAt)
	r.s.hotels[hotel.ID] = *hotel
	return nil
}

func (r HotelRepo) GetByID(_ context.Context, id string) (*models.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &h, nil
}

func (r HotelRepo) GetByOwner(_ context.Context, ownerID string) (*models.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, h := range r.s.hotels {
		if h.OwnerID == ownerID {
			return &h, nil
		}
	}
	return nil, database.ErrNotFound
}

type UserRepo struct{ s *Store }

func (r UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}

func (r UserRepo) Upsert(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	existing, ok := r.s.users[user.ID]
	if !ok {
		u := *user
		if u.Role == "" {
			u.Role = models.RoleUser
		}
		if u.RecentSearchedCities == nil {
			u.RecentSearchedCities = []string{}
		}
		stamp(&u.CreatedAt, &u.UpdatedAt)
		r.s.users[u.ID] = u
		return nil
	}
	existing.Username = user.Username
	existing.Email = user.Email
	existing.Image = user.Image
	existing.UpdatedAt = time.Now()
	r.s.users[user.ID] = existing
	return nil
}

func (r UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	delete(r.s.users, id)
	return nil
}

func (r UserRepo) update(id string, apply func(*models.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return database.ErrNotFound
	}
	apply(&u)
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

func (r UserRepo) SetRole(_ context.Context, id, role string) error {
	return r.update(id, func(u *models.User) { u.Role = role })
}

func (r UserRepo) SetRecentSearchedCities(_ context.Context, id string, cities []string) error {
	return r.update(id, func(u *models.User) { u.RecentSearchedCities = cities })
}

func (r UserRepo) SetFCMToken(_ context.Context, id, token string) error {
	return r.update(id, func(u *models.User) { u.FCMToken = token })
}
