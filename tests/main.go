// Command tests seeds a development database with owners, hotels and rooms.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"stayhub/config"
	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

type seedHotel struct {
	name, address, city string
}

var hotels = []seedHotel{
	{"Summit Lodge", "Lukla Airport Road", "Lukla"},
	{"Lakeside Retreat", "Baidam Road 6", "Pokhara"},
	{"Thamel Courtyard", "Chaksibari Marg", "Kathmandu"},
	{"Chitwan Jungle Camp", "Sauraha", "Chitwan"},
}

var packages = []struct {
	name      string
	roomType  string
	price     float64
	amenities []string
}{
	{"Everest Base Camp", "Double Bed", 120, []string{"Free WiFi", "Room Service", "Mountain View"}},
	{"Annapurna Circuit", "Single Bed", 90, []string{"Free WiFi", "Free Breakfast"}},
	{"Heritage Walk", "Family Suite", 150, []string{"Free Breakfast", "Pool Access", "Room Service"}},
	{"Jungle Safari", "Luxury Room", 200, []string{"Free WiFi", "Free Breakfast", "Pool Access"}},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	client, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	db := client.Database(cfg.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear previous seed data. Real accounts arrive through Clerk and are kept.
	for _, coll := range []string{database.UsersCollection, database.HotelsCollection, database.RoomsCollection} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{"_id": bson.M{"$regex": "^seed-"}}); err != nil {
			log.Fatalf("Failed to clear %s: %v", coll, err)
		}
	}

	now := time.Now()
	var users, hotelDocs, rooms []interface{}
	for i, h := range hotels {
		ownerID := fmt.Sprintf("seed-owner-%d", i+1)
		hotelID := fmt.Sprintf("seed-hotel-%d", i+1)

		users = append(users, models.User{
			ID:                   ownerID,
			Username:             fmt.Sprintf("%s Owner", h.name),
			Email:                fmt.Sprintf("owner%d@example.com", i+1),
			Role:                 models.RoleHotelOwner,
			RecentSearchedCities: []string{},
			CreatedAt:            now,
			UpdatedAt:            now,
		})
		hotelDocs = append(hotelDocs, models.Hotel{
			ID:        hotelID,
			Name:      h.name,
			Address:   h.address,
			Contact:   fmt.Sprintf("+977 98%08d", rand.Intn(100000000)),
			City:      h.city,
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		})

		// Every hotel offers two packages, one of them at a random discount.
		for j := 0; j < 2; j++ {
			p := packages[(i+j)%len(packages)]
			price := p.price
			if j == 1 {
				price = float64(int(price * (0.7 + rand.Float64()*0.3)))
			}
			rooms = append(rooms, models.Room{
				ID:            fmt.Sprintf("seed-room-%d-%d", i+1, j+1),
				HotelID:       hotelID,
				PackageName:   p.name,
				RoomType:      p.roomType,
				PricePerNight: price,
				Amenities:     p.amenities,
				Images:        []string{},
				IsAvailable:   true,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
		}
	}

	if _, err := db.Collection(database.UsersCollection).InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}
	if _, err := db.Collection(database.HotelsCollection).InsertMany(ctx, hotelDocs); err != nil {
		log.Fatalf("Failed to insert hotels: %v", err)
	}
	res, err := db.Collection(database.RoomsCollection).InsertMany(ctx, rooms)
	if err != nil {
		log.Fatalf("Failed to insert rooms: %v", err)
	}
	fmt.Printf("Inserted %d hotels and %d rooms\n", len(hotelDocs), len(res.InsertedIDs))
}
