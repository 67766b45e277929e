package models

import "time"

// Room is a bookable package offered by a hotel.
type Room struct {
	ID            string    `bson:"_id" json:"_id"`
	HotelID       string    `bson:"hotel" json:"hotel"`
	PackageName   string    `bson:"packageName" json:"packageName"`
	RoomType      string    `bson:"roomType" json:"roomType"`
	PricePerNight float64   `bson:"pricePerNight" json:"pricePerNight"`
	Amenities     []string  `bson:"amenities" json:"amenities"`
	Images        []string  `bson:"images" json:"images"`
	IsAvailable   bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoomWithHotel is a room listing with its hotel resolved.
type RoomWithHotel struct {
	Room  `bson:",inline"`
	Hotel *Hotel `bson:"hotelDoc,omitempty" json:"hotel,omitempty"`
}

// NewRoomInput carries the form fields of a room creation request.
type NewRoomInput struct {
	PackageName   string
	RoomType      string
	PricePerNight float64
	Amenities     []string
}
