package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/senbim-immo/admin-service/internal/api/http"
	"github.com/senbim-immo/admin-service/internal/api/http/handlers"
	"github.com/senbim-immo/admin-service/internal/auth"
	"github.com/senbim-immo/admin-service/internal/config"
	"github.com/senbim-immo/admin-service/internal/events"
	"github.com/senbim-immo/admin-service/internal/notify"
	"github.com/senbim-immo/admin-service/internal/observability"
	"github.com/senbim-immo/admin-service/internal/persistence"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
	"github.com/senbim-immo/admin-service/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	conversationRepo := repository.NewConversationRepository(pool)
	messageRepo := repository.NewPrivateMessageRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	agentRepo := repository.NewAgentRepository(pool)
	contactRepo := repository.NewContactMessageRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	configurationRepo := repository.NewConfigurationRepository(pool)
	priceRuleRepo := repository.NewPriceRuleRepository(pool)
	packageRepo := repository.NewPackageRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := notify.NewMailer(cfg.Notification, logger)
	statsCache := persistence.NewStatsCache(redis, cfg.Stats.CacheTTL())
	metrics := observability.NewMetrics()

	uploadStore, err := upload.NewLocalStore(cfg.Upload)
	if err != nil {
		logger.Fatal("failed to init upload store", zap.Error(err))
	}

	authService := service.NewAuthService(*cfg, userRepo)
	listingService := service.NewListingService(listingRepo, dispatcher)
	moderationService := service.NewModerationService(reportRepo, listingRepo, userRepo, dispatcher)
	messagingService := service.NewMessagingService(conversationRepo, messageRepo, userRepo, dispatcher)
	supportService := service.NewSupportService(ticketRepo, mailer, cfg.Notification.FromName, dispatcher)
	userService := service.NewUserService(userRepo)
	monetizationService := service.NewMonetizationService(priceRuleRepo, packageRepo, couponRepo, paymentRepo)
	settingsService := service.NewSettingsService(categoryRepo, locationRepo, configurationRepo)
	agentService := service.NewAgentService(agentRepo)
	contactService := service.NewContactService(contactRepo, mailer, cfg.Notification.FromName)
	statsService := service.NewStatsService(listingRepo, userRepo, paymentRepo, statsCache, logger)

	notificationService := service.NewNotificationService(dispatcher, logger)
	notificationService.RegisterHandlers()

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: (cfg.Upload.MaxSizeMB + 1) << 20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Listings:       handlers.NewListingsHandler(listingService),
		Moderation:     handlers.NewModerationHandler(moderationService),
		Messaging:      handlers.NewMessagingHandler(messagingService),
		Support:        handlers.NewSupportHandler(supportService),
		Users:          handlers.NewUsersHandler(userService),
		Monetization:   handlers.NewMonetizationHandler(monetizationService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		Agents:         handlers.NewAgentsHandler(agentService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Stats:          handlers.NewStatsHandler(statsService, metrics),
		Uploads:        handlers.NewUploadsHandler(uploadStore),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
