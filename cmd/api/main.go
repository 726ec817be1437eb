package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staffing-service/internal/api/http"
	"github.com/spec-kit/staffing-service/internal/api/http/handlers"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/config"
	"github.com/spec-kit/staffing-service/internal/events"
	"github.com/spec-kit/staffing-service/internal/observability"
	"github.com/spec-kit/staffing-service/internal/persistence"
	"github.com/spec-kit/staffing-service/internal/repository"
	"github.com/spec-kit/staffing-service/internal/service"
	"github.com/spec-kit/staffing-service/internal/worker"
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
	accountRepo := repository.NewAccountRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	certificateRepo := repository.NewCertificateRepository(pool)
	dbsRepo := repository.NewDBSRepository(pool)
	providerRepo := repository.NewProviderRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	checkInRepo := repository.NewCheckInRepository(pool)
	auditRepo := repository.NewCheckInAuditRepository(pool)
	challengeStore := repository.NewRedisChallengeStore(redis.Client)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	resolver := service.NewContextResolver(providerRepo)
	onboardingService := service.NewOnboardingService(*cfg, service.OnboardingDependencies{
		AccountRepo:     accountRepo,
		ProfileRepo:     profileRepo,
		CertificateRepo: certificateRepo,
		DBSRepo:         dbsRepo,
		ChallengeStore:  challengeStore,
	}, dispatcher, metrics)
	checkInService := service.NewCheckInService(service.CheckInDependencies{
		ShiftRepo:   shiftRepo,
		CheckInRepo: checkInRepo,
		AuditRepo:   auditRepo,
		Resolver:    resolver,
	}, dispatcher, metrics)

	authMiddleware := auth.NewAuthMiddleware(onboardingService.TokenManager(), accountRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	complianceHandler := handlers.NewComplianceHandler(onboardingService)
	checkInHandler := handlers.NewCheckInHandler(checkInService, resolver)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Onboarding:     onboardingHandler,
		Compliance:     complianceHandler,
		CheckIn:        checkInHandler,
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
