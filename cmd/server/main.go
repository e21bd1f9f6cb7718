package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"estate_backend/internal/app/di"
	"estate_backend/internal/app/router"
	"estate_backend/internal/app/scheduler"
	authadapters "estate_backend/internal/feature/auth/adapters"
	authhandler "estate_backend/internal/feature/auth/transport/handler"
	authusecase "estate_backend/internal/feature/auth/usecase"
	catalogadapters "estate_backend/internal/feature/catalog/adapters"
	cataloghandler "estate_backend/internal/feature/catalog/transport/handler"
	catalogusecase "estate_backend/internal/feature/catalog/usecase"
	portfolioadapters "estate_backend/internal/feature/portfolio/adapters"
	portfoliohandler "estate_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "estate_backend/internal/feature/portfolio/usecase"
	"estate_backend/internal/platform/config"
	infradb "estate_backend/internal/platform/db"
	"estate_backend/internal/platform/http/handler"
	jwtmw "estate_backend/internal/platform/jwt"
	infraredis "estate_backend/internal/platform/redis"
	"estate_backend/internal/platform/seed"
	"estate_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	// db (user accounts)
	gdb := infradb.OpenDB(cfg.DB)

	// Redis; everything degrades to in-process storage without it
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		slog.Warn("Redis unavailable. Running on in-process storage; data will not survive restarts.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	blobStore := di.NewBlobStore(rdb)
	sessionRepo := di.NewSessionRepository(rdb)

	// Bundled seed data
	staticProperties, err := seed.Properties()
	if err != nil {
		log.Fatal(err)
	}
	seedPortfolios, err := seed.Portfolios()
	if err != nil {
		log.Fatal(err)
	}
	seedUsers, err := seed.Users()
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := authadapters.NewUserGorm(gdb)
	demoAccounts := make([]authadapters.SeedUser, 0, len(seedUsers))
	for _, u := range seedUsers {
		demoAccounts = append(demoAccounts, authadapters.SeedUser{
			ID: u.ID, Email: u.Email, Password: u.Password, Name: u.Name,
		})
	}
	if err := userRepo.EnsureSeed(ctx, demoAccounts); err != nil {
		slog.Error("failed to seed demo accounts", "error", err)
	}

	propertyStore := catalogadapters.NewPropertyStore(blobStore, staticProperties)
	if err := propertyStore.Load(ctx); err != nil {
		slog.Error("failed to load dynamic properties, starting with seed catalog", "error", err)
	}

	portfolioRepo := portfolioadapters.NewPortfolioKV(blobStore, seedPortfolios)
	if err := portfolioRepo.Load(ctx); err != nil {
		slog.Error("failed to load portfolios, starting from seed", "error", err)
	}

	// Usecases
	ledgerUC := portfoliousecase.NewLedgerUsecase(portfolioRepo, propertyStore)
	catalogUC := catalogusecase.NewCatalogUsecase(propertyStore)
	jwtGen := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, ledgerUC, cfg.SessionTTL)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	propertyH := cataloghandler.NewPropertyHandler(catalogUC)
	simLimiter := ratelimiter.NewRateLimiter(cfg.Market.SimulatePerMinute, time.Minute)
	portfolioH := portfoliohandler.NewPortfolioHandler(ledgerUC, simLimiter)
	resetH := handler.NewResetHandler(portfolioRepo, propertyStore)

	// Background market drift, disabled unless an interval is configured
	if cfg.Market.TickInterval > 0 {
		sched := scheduler.New()
		sched.NewIntervalJob("market-drift", func(ctx context.Context) error {
			delta := (rand.Float64()*2 - 1) * cfg.Market.TickMaxDeltaPct
			return ledgerUC.ApplyMarketDelta(ctx, delta)
		}, cfg.Market.TickInterval)
		sched.Start()
		defer sched.Stop()
	}

	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	r := router.NewRouter(cfg.JWT.Secret, authH, portfolioH, propertyH, resetH)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

// setupLogger installs a JSON slog handler at the configured level.
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
