package models

import "time"

const (
	RoleUser       = "user"
	RoleHotelOwner = "hotelOwner"
)

// MaxRecentSearchedCities bounds User.RecentSearchedCities.
const MaxRecentSearchedCities = 3

// User mirrors an identity-provider account. The id is the provider's user id.
type User struct {
	ID                   string    `bson:"_id" json:"_id"`
	Username             string    `bson:"username" json:"username"`
	Email                string    `bson:"email" json:"email"`
	Image                string    `bson:"image" json:"image"`
	Role                 string    `bson:"role" json:"role"`
	RecentSearchedCities []string  `bson:"recentSearchedCities" json:"recentSearchedCities"`
	FCMToken             string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}
