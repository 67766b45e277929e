package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PayAtProperty PaymentMethod = "Pay At Hotel"
	PayWithStripe PaymentMethod = "Stripe"
)

// Booking represents a room reservation. Dates are stored normalized:
// check-in at the start of its day, check-out at the last millisecond of its day.
type Booking struct {
	ID            string        `bson:"_id" json:"_id"`
	UserID        string        `bson:"user" json:"user"`
	RoomID        string        `bson:"room" json:"room"`
	HotelID       string        `bson:"hotel" json:"hotel"`
	CheckInDate   time.Time     `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate  time.Time     `bson:"checkOutDate" json:"checkOutDate"`
	Guests        int           `bson:"guests" json:"guests"`
	TotalPrice    float64       `bson:"totalPrice" json:"totalPrice"`
	Status        BookingStatus `bson:"status" json:"status"`
	IsPaid        bool          `bson:"isPaid" json:"isPaid"`
	PaymentMethod PaymentMethod `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingDetails is a booking with its room, hotel and guest resolved.
// The resolved documents shadow the plain id references when encoded to JSON.
type BookingDetails struct {
	Booking `bson:",inline"`
	Room    *Room  `bson:"roomDoc,omitempty" json:"room,omitempty"`
	Hotel   *Hotel `bson:"hotelDoc,omitempty" json:"hotel,omitempty"`
	Guest   *User  `bson:"userDoc,omitempty" json:"user,omitempty"`
}

// BookingRequest is the client payload for availability checks and new bookings.
type BookingRequest struct {
	RoomID       string  `json:"room" binding:"required"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	Guests       int     `json:"guests"`
	TotalPrice   float64 `json:"totalPrice"`
}

// OwnerDashboard summarizes the bookings of one hotel.
type OwnerDashboard struct {
	TotalBookings int              `json:"totalBookings"`
	TotalRevenue  float64          `json:"totalRevenue"`
	Bookings      []BookingDetails `json:"bookings"`
}
