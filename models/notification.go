package models

import "time"

// BookingConfirmationEmail is the payload of the confirmation email task.
type BookingConfirmationEmail struct {
	To           string    `json:"to"`
	GuestName    string    `json:"guestName"`
	BookingID    string    `json:"bookingId"`
	PackageName  string    `json:"packageName"`
	HotelName    string    `json:"hotelName"`
	HotelAddress string    `json:"hotelAddress"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	TotalPrice   float64   `json:"totalPrice"`
}
