package bootstrap

import (
	"context"
	"log"

	"bail-assistant-be/internal/config"
	"bail-assistant-be/internal/controller"
	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/pkg/mailer"
	"bail-assistant-be/internal/pkg/serverutils"
	"bail-assistant-be/internal/repository/contract"
	"bail-assistant-be/internal/repository/implementation"
	"bail-assistant-be/internal/repository/memory"
	"bail-assistant-be/internal/repository/unitofwork"
	"bail-assistant-be/internal/service"
	"bail-assistant-be/internal/websocket"
	"bail-assistant-be/pkg/document"
	"bail-assistant-be/pkg/events"
	pktNats "bail-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DocumentController     controller.IDocumentController
	ConversationController controller.IConversationController
	AuthController         controller.IAuthController
	ExportController       controller.IExportController
	MonitoringController   controller.IMonitoringController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	// Route guard bound to the JWT secret
	JwtGuard fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Canonical template
	template, err := document.LoadTemplate(cfg.Document.TemplatePath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load document template %q: %v", cfg.Document.TemplatePath, err)
	}

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Infrastructure
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 5. Document persistence
	var documentRepo contract.DocumentSessionRepository
	if cfg.Document.SessionStore == "memory" {
		documentRepo = memory.NewDocumentRepository()
		log.Printf("[INFO] Using document store: MEMORY")
	} else {
		documentRepo = implementation.NewDocumentSessionRepository(db)
		log.Printf("[INFO] Using document store: POSTGRES")
	}
	conversationRepo := implementation.NewConversationRepository(db)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Document.UpdateTopic, pubSub, natsPub, sysLogger)
	documentService := service.NewDocumentService(template, documentRepo, publisherService, sysLogger)
	monitoringService := service.NewMonitoringService(rdb, conversationRepo, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Document.UpdateTopic,
		documentService,
		wsHub,
		monitoringService,
		sysLogger,
	)

	conversationService := service.NewConversationService(uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.App.JwtSecret, sysLogger)
	exportService := service.NewExportService(documentService, emailService, sysLogger)

	// Cross-instance audit trail of document mutations.
	if natsSub != nil {
		go func() {
			err := natsSub.Subscribe("events.DOCUMENT_UPDATED", "document-audit", func(ctx context.Context, event events.Event) error {
				sysLogger.Info("Audit", "Document updated", event.Payload())
				return nil
			})
			if err != nil {
				sysLogger.Error("Bootstrap", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	// 7. Controllers
	return &Container{
		DocumentController:     controller.NewDocumentController(documentService),
		ConversationController: controller.NewConversationController(conversationService),
		AuthController:         controller.NewAuthController(authService),
		ExportController:       controller.NewExportController(exportService),
		MonitoringController:   controller.NewMonitoringController(monitoringService, sysLogger),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		JwtGuard:        serverutils.JwtMiddleware(cfg.App.JwtSecret),
		Logger:          sysLogger,
	}
}
