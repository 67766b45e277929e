package repository

import (
	bookingRepo "stayhub/database/repository/booking"
	hotelRepo "stayhub/database/repository/hotel"
	roomRepo "stayhub/database/repository/room"
	userRepo "stayhub/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Re-export the repository interfaces so callers need one import.
type (
	BookingRepository = bookingRepo.BookingRepository
	RoomRepository    = roomRepo.RoomRepository
	HotelRepository   = hotelRepo.HotelRepository
	UserRepository    = userRepo.UserRepository
)

// Repositories bundles every Mongo-backed repository.
type Repositories struct {
	Bookings BookingRepository
	Rooms    RoomRepository
	Hotels   HotelRepository
	Users    UserRepository
}

// NewMongoRepositories builds all repositories over one database, ensuring indexes.
func NewMongoRepositories(db *mongo.Database, logger *zap.Logger) *Repositories {
	return &Repositories{
		Bookings: bookingRepo.NewMongoBookingRepo(db, logger),
		Rooms:    roomRepo.NewMongoRoomRepo(db, logger),
		Hotels:   hotelRepo.NewMongoHotelRepo(db, logger),
		Users:    userRepo.NewMongoUserRepo(db, logger),
	}
}
