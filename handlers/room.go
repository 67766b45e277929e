package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services"
	"stayhub/services/room"
	"stayhub/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxRoomForm = 32 << 20

type RoomHandler struct {
	Service room.RoomService
	Logger  *zap.Logger
}

func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Service: svc, Logger: logger}
}

// CreateRoom handles multipart POST /api/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	u := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		failMessage(c, "Invalid form data")
		return
	}

	input, err := roomInputFromForm(c)
	if err != nil {
		fail(c, h.Logger, err, "Invalid room data")
		return
	}

	files := form.File["images"]
	if len(files) > room.MaxImages {
		failMessage(c, fmt.Sprintf("At most %d images are allowed", room.MaxImages))
		return
	}
	uploads := make([]storage.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			fail(c, h.Logger, err, "Failed to read image")
			return
		}
		defer f.Close()
		uploads = append(uploads, storage.Upload{Filename: fh.Filename, Body: f})
	}

	created, err := h.Service.CreateRoom(c.Request.Context(), u, input, uploads)
	if err != nil {
		fail(c, h.Logger, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room created successfully", "room": created})
}

func roomInputFromForm(c *gin.Context) (models.NewRoomInput, error) {
	input := models.NewRoomInput{
		PackageName: c.PostForm("packageName"),
		RoomType:    c.PostForm("roomType"),
	}

	price, err := strconv.ParseFloat(c.PostForm("pricePerNight"), 64)
	if err != nil {
		return input, services.Validation("pricePerNight must be a number")
	}
	input.PricePerNight = price

	if raw := c.PostForm("amenities"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Amenities); err != nil {
			return input, services.Validation("amenities must be a JSON array of strings")
		}
	}
	return input, nil
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Service.ListAvailable(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err, "Failed to fetch rooms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}

// OwnerRooms handles GET /api/rooms/owner.
func (h *RoomHandler) OwnerRooms(c *gin.Context) {
	rooms, err := h.Service.ListOwnerRooms(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		fail(c, h.Logger, err, "Failed to fetch rooms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}

// ToggleAvailability handles POST /api/rooms/toggle-availability.
func (h *RoomHandler) ToggleAvailability(c *gin.Context) {
	var req struct {
		RoomID string `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failMessage(c, "roomId is required")
		return
	}

	r, err := h.Service.ToggleAvailability(c.Request.Context(), middleware.CurrentUser(c), req.RoomID)
	if err != nil {
		fail(c, h.Logger, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room availability updated", "isAvailable": r.IsAvailable})
}
