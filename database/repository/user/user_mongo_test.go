package userRepo

import (
	"context"
	"testing"

	"stayhub/database"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	newRepo := func(mt *mtest.T) UserRepository {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		return NewMongoUserRepo(mt.DB, zap.NewNop())
	}

	mt.Run("get by id", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "stayhub.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "user_1"},
			{Key: "username", Value: "Asha"},
			{Key: "role", Value: models.RoleHotelOwner},
			{Key: "fcmToken", Value: "tok"},
		}))

		u, err := repo.GetByID(ctx, "user_1")
		require.NoError(mt, err)
		assert.Equal(mt, "Asha", u.Username)
		assert.Equal(mt, models.RoleHotelOwner, u.Role)
		assert.Equal(mt, "tok", u.FCMToken)
	})

	mt.Run("upsert", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Upsert(ctx, &models.User{ID: "user_1", Username: "Asha"}))
	})

	mt.Run("set on missing user", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.ErrorIs(mt, repo.SetRole(ctx, "missing", models.RoleHotelOwner), database.ErrNotFound)
	})

	mt.Run("set recent cities", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(mt, repo.SetRecentSearchedCities(ctx, "user_1", []string{"Pokhara"}))
	})
}
