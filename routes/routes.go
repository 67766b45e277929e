package routes

import (
	"crypto/rsa"
	"time"

	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterBookingRoutes sets up the booking, receipt and checkout endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("/check-availability", hb.Booking.CheckAvailability)

		protected := bookingGroup.Group("")
		protected.Use(auth)
		protected.POST("/book", hb.Booking.CreateBooking)
		protected.GET("/user", hb.Booking.UserBookings)
		protected.GET("/hotel", hb.Booking.HotelBookings)
		protected.GET("/download-receipt/:id", hb.Receipt.DownloadReceipt)
		protected.POST("/stripe-payment", hb.Payment.StripePayment)
	}
}

// RegisterWebhookRoutes registers the signed third-party callbacks. They
// carry their own signatures and never use session auth.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/stripe", hb.Payment.StripeWebhook)
	r.POST("/api/clerk", hb.User.ClerkWebhook)
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/user")
	{
		api.Use(auth)
		api.GET("", hb.User.GetUserData)
		api.POST("/store-recent-search", hb.User.StoreRecentSearch)
		api.PUT("/fcm-token", hb.User.UpdateFCMToken)
	}
}

// RegisterHotelRoutes registers hotel onboarding.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/hotels")
	{
		api.Use(auth)
		api.POST("", hb.Hotel.RegisterHotel)
	}
}

// RegisterRoomRoutes registers the public listing and owner room management.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Room.ListRooms)

		owner := api.Group("")
		owner.Use(auth, middleware.RequireRole(models.RoleHotelOwner))
		owner.POST("", hb.Room.CreateRoom)
		owner.GET("/owner", hb.Room.OwnerRooms)
		owner.POST("/toggle-availability", hb.Room.ToggleAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", handlers.Health(hb.Health))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessionKey *rsa.PublicKey, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature", "svix-id", "svix-timestamp", "svix-signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.ClerkAuthMiddleware(sessionKey, hb.UserRepo, logger)

	RegisterWebhookRoutes(r, hb)
	RegisterBookingRoutes(r, hb, auth)
	RegisterUserRoutes(r, hb, auth)
	RegisterHotelRoutes(r, hb, auth)
	RegisterRoomRoutes(r, hb, auth)
	RegisterHealthRoute(r, hb)
}
