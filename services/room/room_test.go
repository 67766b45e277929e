package room

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stayhub/database/repository/memory"
	"stayhub/models"
	"stayhub/services"
	"stayhub/services/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStorage struct {
	uploaded []string
	err      error
}

func (f *fakeStorage) UploadImage(_ context.Context, file storage.Upload, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, file.Filename)
	return "https://res.cloudinary.com/demo/image/upload/" + folder + "/" + file.Filename, nil
}

func (f *fakeStorage) DeleteFile(context.Context, string) error { return nil }

func newTestService() (*DefaultRoomService, *fakeStorage) {
	store := memory.NewStore()
	store.Seed(
		models.Hotel{ID: "hotel_1", Name: "Summit Lodge", OwnerID: "owner"},
		models.Hotel{ID: "hotel_2", Name: "Lakeside", OwnerID: "other"},
		models.Room{ID: "foreign", HotelID: "hotel_2", IsAvailable: true},
	)
	repos := store.Repositories()
	st := &fakeStorage{}
	return &DefaultRoomService{Rooms: repos.Rooms, Hotels: repos.Hotels, Storage: st, Logger: zap.NewNop()}, st
}

func upload(name string) storage.Upload {
	return storage.Upload{Filename: name, Body: strings.NewReader("img")}
}

var owner = &models.User{ID: "owner", Role: models.RoleHotelOwner}

func TestCreateRoom(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	r, err := svc.CreateRoom(ctx, owner, models.NewRoomInput{
		PackageName:   "Everest Base Camp",
		RoomType:      "Double Bed",
		PricePerNight: 200,
		Amenities:     []string{"Free WiFi"},
	}, []storage.Upload{upload("a.jpg"), upload("b.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "hotel_1", r.HotelID)
	assert.True(t, r.IsAvailable)
	assert.Len(t, r.Images, 2)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, st.uploaded)

	rooms, err := svc.ListOwnerRooms(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Summit Lodge", rooms[0].Hotel.Name)
}

func TestCreateRoomValidation(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	valid := models.NewRoomInput{PackageName: "p", RoomType: "t", PricePerNight: 10}

	_, err := svc.CreateRoom(ctx, owner, models.NewRoomInput{RoomType: "t", PricePerNight: 10}, nil)
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = svc.CreateRoom(ctx, owner, models.NewRoomInput{PackageName: "p", RoomType: "t"}, nil)
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	five := []storage.Upload{upload("1"), upload("2"), upload("3"), upload("4"), upload("5")}
	_, err = svc.CreateRoom(ctx, owner, valid, five)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
	assert.Empty(t, st.uploaded)

	_, err = svc.CreateRoom(ctx, &models.User{ID: "nobody"}, valid, nil)
	assert.Equal(t, "No Hotel found", services.MessageOf(err, ""))

	st.err = errors.New("cloudinary down")
	_, err = svc.CreateRoom(ctx, owner, valid, []storage.Upload{upload("a.jpg")})
	assert.Equal(t, services.KindUpstream, services.KindOf(err))
}

func TestListAvailable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	r, err := svc.CreateRoom(ctx, owner, models.NewRoomInput{PackageName: "p", RoomType: "t", PricePerNight: 10}, nil)
	require.NoError(t, err)

	rooms, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = svc.ToggleAvailability(ctx, owner, r.ID)
	require.NoError(t, err)
	rooms, err = svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "foreign", rooms[0].ID)
}

func TestToggleAvailability(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	r, err := svc.CreateRoom(ctx, owner, models.NewRoomInput{PackageName: "p", RoomType: "t", PricePerNight: 10}, nil)
	require.NoError(t, err)

	toggled, err := svc.ToggleAvailability(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	toggled, err = svc.ToggleAvailability(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsAvailable)

	_, err = svc.ToggleAvailability(ctx, owner, "foreign")
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	_, err = svc.ToggleAvailability(ctx, owner, "missing")
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}
