package bootstrap

import (
	"context"
	"log"

	"affiliate-hub-be/internal/config"
	"affiliate-hub-be/internal/controller"
	"affiliate-hub-be/internal/handler"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/pkg/mailer"
	"affiliate-hub-be/internal/repository/implementation"
	"affiliate-hub-be/internal/repository/unitofwork"
	"affiliate-hub-be/internal/service"
	"affiliate-hub-be/internal/websocket"
	"affiliate-hub-be/pkg/admin/affiliate"
	"affiliate-hub-be/pkg/admin/coupon"
	"affiliate-hub-be/pkg/admin/dashboard"
	adminEvents "affiliate-hub-be/pkg/admin/events"
	"affiliate-hub-be/pkg/admin/ledger"
	"affiliate-hub-be/pkg/admin/withdraw"
	"affiliate-hub-be/pkg/referral"

	pktNats "affiliate-hub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	AffiliateController  controller.IAffiliateController
	CouponController     controller.ICouponController
	CommissionController controller.ICommissionController
	AdminController      controller.IAdminController

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
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Referral code generator
	generateCode, err := referral.NewGenerator()
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize referral code generator: %v", err)
	}

	// 3. Services
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	authService := service.NewAuthService(uowFactory)
	settingsService := service.NewSettingsService(uowFactory, cfg.Affiliate)
	affiliateService := service.NewAffiliateService(uowFactory, sysLogger, adminEventPublisher, generateCode)
	couponService := service.NewCouponService(uowFactory, sysLogger, adminEventPublisher)
	commissionService := service.NewCommissionService(uowFactory, sysLogger, adminEventPublisher, settingsService)
	withdrawService := service.NewWithdrawService(uowFactory, sysLogger, adminEventPublisher, settingsService)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.OrderTopic,
		commissionService,
	)

	// Admin Domain Components
	affiliateManager := affiliate.NewManager(sysLogger, adminEventPublisher, emailService)
	couponReviewer := coupon.NewReviewer(sysLogger, adminEventPublisher)
	ledgerReviewer := ledger.NewReviewer(sysLogger, adminEventPublisher)
	withdrawProcessor := withdraw.NewProcessor(sysLogger, adminEventPublisher, emailService)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	adminService := service.NewAdminService(
		uowFactory,
		sysLogger,
		affiliateManager,
		couponReviewer,
		ledgerReviewer,
		withdrawProcessor,
		dashboardAggregator,
		settingsService,
	)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:       controller.NewAuthController(authService),
		AffiliateController:  controller.NewAffiliateController(affiliateService, couponService, withdrawService),
		CouponController:     controller.NewCouponController(couponService),
		CommissionController: controller.NewCommissionController(commissionService),
		AdminController:      controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
