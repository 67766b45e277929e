package roomRepo

import (
	"context"
	"fmt"
	"time"

	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

func NewMongoRoomRepo(db *mongo.Database, logger *zap.Logger) RoomRepository {
	repo := &MongoRoomRepo{coll: db.Collection(database.RoomsCollection)}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create room indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotel", Value: 1}}},
		{Keys: bson.D{{Key: "isAvailable", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) withHotel(ctx context.Context, match bson.M) ([]models.RoomWithHotel, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.HotelsCollection,
			"localField":   "hotel",
			"foreignField": "_id",
			"as":           "hotelDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$hotelDoc", "preserveNullAndEmptyArrays": true}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []models.RoomWithHotel{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) ListAvailable(ctx context.Context) ([]models.RoomWithHotel, error) {
	return r.withHotel(ctx, bson.M{"isAvailable": true})
}

func (r *MongoRoomRepo) ListByHotel(ctx context.Context, hotelID string) ([]models.RoomWithHotel, error) {
	return r.withHotel(ctx, bson.M{"hotel": hotelID})
}

func (r *MongoRoomRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"isAvailable": available,
		"updatedAt":   time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}
