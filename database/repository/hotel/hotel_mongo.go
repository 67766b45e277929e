package hotelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrOwnerHasHotel is returned when an owner registers a second hotel.
var ErrOwnerHasHotel = errors.New("owner already has a hotel")

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

func NewMongoHotelRepo(db *mongo.Database, logger *zap.Logger) HotelRepository {
	repo := &MongoHotelRepo{coll: db.Collection(database.HotelsCollection)}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create hotel indexes", zap.Error(err))
	}
	return repo
}

// ensureIndexes makes the owner unique so two concurrent registrations cannot
// both succeed.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) Create(ctx context.Context, hotel *models.Hotel) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrOwnerHasHotel
		}
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) findOne(ctx context.Context, filter bson.M) (*models.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, filter).Decode(&hotel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	return &hotel, nil
}

func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoHotelRepo) GetByOwner(ctx context.Context, ownerID string) (*models.Hotel, error) {
	return r.findOne(ctx, bson.M{"owner": ownerID})
}
