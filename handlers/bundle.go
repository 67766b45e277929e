package handlers

import (
	userRepoPkg "stayhub/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Booking *BookingHandler
	Payment *PaymentHandler
	Receipt *ReceiptHandler
	User    *UserHandler
	Hotel   *HotelHandler
	Room    *RoomHandler
	Health  HealthStatusProvider
}
