package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/repository/memory"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/suggest"
	"github.com/spec-kit/helpdesk-service/internal/worker"
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

	pool := pg.PoolHandle()
	if pool != nil && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		userRepo       repository.UserRepository
		ticketRepo     repository.TicketRepository
		logRepo        repository.TicketLogRepository
		messageRepo    repository.MessageRepository
		permissionRepo repository.PermissionRepository
		keys           service.TicketKeyAllocator
	)
	if pool != nil {
		userRepo = repository.NewUserRepository(pool)
		ticketRepo = repository.NewTicketRepository(pool)
		logRepo = repository.NewTicketLogRepository(pool)
		messageRepo = repository.NewMessageRepository(pool)
		permissionRepo = repository.NewPermissionRepository(pool)
		keys = persistence.NewKeyAllocator(pool)
	} else {
		store := memory.NewStore()
		userRepo = store.Users()
		ticketRepo = store.Tickets()
		logRepo = store.TicketLogs()
		messageRepo = store.Messages()
		permissionRepo = store.Permissions()
		keys = store
	}
	if redis != nil {
		keys = redis
	}

	permissions, err := rbac.NewService(ctx, permissionRepo, logger)
	if err != nil {
		logger.Fatal("failed to load permission matrix", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		LogRepo:      logRepo,
		Permissions:  permissions,
		KeyAllocator: keys,
		Suggester:    suggest.NewHTTPProvider(cfg.Suggest),
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	messageService := service.NewMessageService(messageRepo)
	exportService := service.NewExportService(service.ExportDependencies{
		UserRepo:       userRepo,
		TicketRepo:     ticketRepo,
		LogRepo:        logRepo,
		MessageRepo:    messageRepo,
		PermissionRepo: permissionRepo,
		Keys:           keys,
	})
	notificationService := service.NewNotificationService(dispatcher, messageRepo, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.App.RequestTimeout(),
		ErrorHandler: httptransport.NewErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(),
		Users:          handlers.NewUsersHandler(authService, userRepo),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Triage:         handlers.NewTriageHandler(ticketService),
		Messages:       handlers.NewMessagesHandler(messageService),
		Reports:        handlers.NewReportsHandler(ticketService),
		Permissions:    handlers.NewPermissionsHandler(permissions),
		Admin:          handlers.NewAdminHandler(exportService, metrics),
		AuthMiddleware: authMiddleware,
		RBAC:           permissions,
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
