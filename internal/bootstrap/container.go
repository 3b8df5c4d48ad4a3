package bootstrap

import (
	"context"
	"log"
	"time"

	"pawrescue-be/internal/config"
	"pawrescue-be/internal/controller"
	"pawrescue-be/internal/handler"
	"pawrescue-be/internal/pkg/logger"
	"pawrescue-be/internal/pkg/mailer"
	"pawrescue-be/internal/repository/implementation"
	"pawrescue-be/internal/repository/unitofwork"
	"pawrescue-be/internal/service"
	"pawrescue-be/internal/websocket"
	"pawrescue-be/pkg/cache"
	pktNats "pawrescue-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// cacheInvalidationTopic is the in-process watermill topic the listing
// mutations publish to.
const cacheInvalidationTopic = "cache_invalidation"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	AnimalController    controller.IAnimalController
	AdoptionController  controller.IAdoptionController
	ReportController    controller.IReportController
	TreatmentController controller.ITreatmentController
	ProgressController  controller.IProgressController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	sysLogger.Info("Bootstrap", "Initializing dependency container", map[string]interface{}{"env": cfg.App.Environment})

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Cache.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	queryCache := cache.NewQueryCache(rdb)
	cacheTTL := time.Duration(cfg.Cache.ListingTTLSecs) * time.Second

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(cacheInvalidationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cacheInvalidationTopic,
		queryCache,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, natsPub)
	userService := service.NewUserService(uowFactory)
	animalService := service.NewAnimalService(uowFactory, queryCache, cacheTTL, publisherService, natsPub)
	adoptionService := service.NewAdoptionService(uowFactory, emailService, publisherService, natsPub)
	reportService := service.NewReportService(uowFactory, natsPub)
	treatmentService := service.NewTreatmentService(uowFactory, natsPub)
	progressService := service.NewProgressService(uowFactory)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		AnimalController:    controller.NewAnimalController(animalService),
		AdoptionController:  controller.NewAdoptionController(adoptionService),
		ReportController:    controller.NewReportController(reportService),
		TreatmentController: controller.NewTreatmentController(treatmentService),
		ProgressController:  controller.NewProgressController(progressService),

		ConsumerService: consumerService,
	}
}
