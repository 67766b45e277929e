package bookingRepo

import (
	"context"
	"fmt"

	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// lookupStages resolves room, hotel and guest into roomDoc, hotelDoc and userDoc.
// A dangling reference leaves the field nil instead of dropping the booking.
func lookupStages() mongo.Pipeline {
	stages := mongo.Pipeline{}
	for _, ref := range []struct{ from, local, as string }{
		{database.RoomsCollection, "room", "roomDoc"},
		{database.HotelsCollection, "hotel", "hotelDoc"},
		{database.UsersCollection, "user", "userDoc"},
	} {
		stages = append(stages,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         ref.from,
				"localField":   ref.local,
				"foreignField": "_id",
				"as":           ref.as,
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + ref.as,
				"preserveNullAndEmptyArrays": true,
			}}},
		)
	}
	return stages
}

func (r *MongoBookingRepo) aggregateDetails(ctx context.Context, match bson.M) ([]models.BookingDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, lookupStages()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.BookingDetails{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return results, nil
}

func (r *MongoBookingRepo) GetDetails(ctx context.Context, id string) (*models.BookingDetails, error) {
	results, err := r.aggregateDetails(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, database.ErrNotFound
	}
	return &results[0], nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.BookingDetails, error) {
	return r.aggregateDetails(ctx, bson.M{"user": userID})
}

func (r *MongoBookingRepo) ListByHotel(ctx context.Context, hotelID string) ([]models.BookingDetails, error) {
	return r.aggregateDetails(ctx, bson.M{"hotel": hotelID})
}
