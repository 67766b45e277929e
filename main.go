package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub/config"
	"stayhub/database"
	"stayhub/database/repository"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/booking"
	"stayhub/services/hotel"
	"stayhub/services/notification"
	"stayhub/services/payment"
	"stayhub/services/receipt"
	"stayhub/services/room"
	"stayhub/services/storage"
	"stayhub/services/user"
	"stayhub/utils"
	"stayhub/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	repos := repository.NewMongoRepositories(mongoClient.Database(cfg.DatabaseName), logger)

	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Fatal("main: failed to connect to Redis", zap.Error(err))
	}

	queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
	queue := asynq.NewClient(queueOpts)
	defer queue.Close()

	var push notification.PushSender
	if cfg.FirebaseCredentialsFile != "" {
		fcm, err := utils.FirebaseMessaging(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Warn("main: push notifications disabled", zap.Error(err))
		} else {
			push = fcm
		}
	}
	notificationService, err := notification.NewDefaultNotificationService(repos.Users, repos.Hotels, queue, push, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}

	mailer, err := notification.NewMailer(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SenderEmail,
	}, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize mailer", zap.Error(err))
	}
	emailWorker := worker.NewEmailWorker(queueOpts, mailer, logger)
	emailWorker.Start()

	cld, err := utils.Cloudinary(cfg.CloudinaryURL)
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary storage service", zap.Error(err))
	}
	sessionKey, err := utils.ParseSessionKey(cfg.ClerkJWTKey)
	if err != nil {
		logger.Fatal("main: failed to load session key", zap.Error(err))
	}
	clerkVerifier, err := user.NewClerkVerifier(cfg.ClerkWebhookSecret)
	if err != nil {
		logger.Fatal("main: failed to initialize clerk webhook verifier", zap.Error(err))
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings: repos.Bookings,
		Rooms:    repos.Rooms,
		Hotels:   repos.Hotels,
		Locker:   utils.NewRedisRoomLocker(redisClient),
		Notifier: notificationService,
		Location: cfg.Location(),
		Logger:   logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings:      repos.Bookings,
		Rooms:         repos.Rooms,
		Hotels:        repos.Hotels,
		Gateway:       payment.NewStripeGateway(payment.NewStripeClient(cfg.StripeSecretKey)),
		Notifier:      notificationService,
		WebhookSecret: cfg.StripeWebhookSecret,
		Currency:      cfg.Currency,
		Logger:        logger,
	}
	receiptService := &receipt.DefaultReceiptService{
		Bookings: repos.Bookings,
		LogoPath: cfg.ReceiptLogoPath,
		Location: cfg.Location(),
		Logger:   logger,
	}
	userService := &user.DefaultUserService{Repo: repos.Users, Verifier: clerkVerifier, Logger: logger}
	hotelService := &hotel.DefaultHotelService{Hotels: repos.Hotels, Users: repos.Users, Logger: logger}
	roomService := &room.DefaultRoomService{
		Rooms:   repos.Rooms,
		Hotels:  repos.Hotels,
		Storage: storage.NewStorageService(cld, logger),
		Logger:  logger,
	}

	monitor := utils.NewHealthMonitor(redisClient, mongoClient, 30*time.Second)
	monitor.Start(ctx)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: repos.Users,
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Payment:  handlers.NewPaymentHandler(paymentService, logger),
		Receipt:  handlers.NewReceiptHandler(receiptService, logger),
		User:     handlers.NewUserHandler(userService, logger),
		Hotel:    handlers.NewHotelHandler(hotelService, logger),
		Room:     handlers.NewRoomHandler(roomService, logger),
		Health:   monitor,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle, sessionKey, logger)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stop()
	emailWorker.Shutdown()
	if err := redisClient.Close(); err != nil {
		logger.Warn("main: redis close failed", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
