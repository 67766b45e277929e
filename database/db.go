package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by repositories when a point lookup matches nothing.
var ErrNotFound = errors.New("document not found")

// Collection names.
const (
	BookingsCollection = "bookings"
	RoomsCollection    = "rooms"
	HotelsCollection   = "hotels"
	UsersCollection    = "users"
)

// InitDB connects to MongoDB and verifies the connection.
func InitDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// QueryTimeout bounds every single repository call.
const QueryTimeout = 5 * time.Second
