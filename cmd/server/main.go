package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stake-chain.backend/internal/config"
	domainrepos "stake-chain.backend/internal/domain/repositories"
	"stake-chain.backend/internal/infrastructure/cache"
	"stake-chain.backend/internal/infrastructure/memstore"
	"stake-chain.backend/internal/infrastructure/models"
	"stake-chain.backend/internal/infrastructure/repositories"
	"stake-chain.backend/internal/interfaces/http/handlers"
	"stake-chain.backend/internal/interfaces/http/middleware"
	"stake-chain.backend/internal/usecases"
	"stake-chain.backend/pkg/logger"
	"stake-chain.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(backend, dsn string) (*gorm.DB, error) {
		switch backend {
		case "postgres":
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  dsn,
				PreferSimpleProtocol: true,
			}), &gorm.Config{})
		default:
			return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		}
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

type ledgerRepos struct {
	users       domainrepos.UserRepository
	investments domainrepos.InvestmentRepository
	earnings    domainrepos.EarningRepository
	referrals   domainrepos.ReferralRepository
}

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the ledger store
	repos, err := buildLedgerRepos(cfg)
	if err != nil {
		return err
	}
	logger.Info(context.Background(), "Ledger store initialized", zap.String("backend", cfg.Store.Backend))

	// Initialize the optional referral tree cache
	var treeCache usecases.ReferralTreeCache
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		treeCache = cache.NewRedisTreeCache(redis.GetClient(), cfg.Referral.TreeCacheTTL)
		logger.Info(context.Background(), "Referral tree cache enabled")
	}

	// Initialize usecases
	accountUsecase := usecases.NewAccountUsecase(repos.users, repos.investments, repos.referrals, treeCache)
	earningUsecase := usecases.NewEarningUsecase(repos.earnings)
	referralUsecase := usecases.NewReferralUsecase(repos.referrals, treeCache, cfg.Referral.MaxDepth)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(accountUsecase)
	investmentHandler := handlers.NewInvestmentHandler(accountUsecase)
	earningHandler := handlers.NewEarningHandler(earningUsecase)
	referralHandler := handlers.NewReferralHandler(referralUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		userHandler:       userHandler,
		investmentHandler: investmentHandler,
		earningHandler:    earningHandler,
		referralHandler:   referralHandler,
	})

	log.Printf("🚀 Stake-Chain demo backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildLedgerRepos selects the ledger store backend. The in-memory store is
// the demo default; sqlite and postgres run the same contracts through gorm.
func buildLedgerRepos(cfg *config.Config) (ledgerRepos, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		store := memstore.NewStore()
		return ledgerRepos{
			users:       memstore.NewUserRepository(store),
			investments: memstore.NewInvestmentRepository(store),
			earnings:    memstore.NewEarningRepository(store),
			referrals:   memstore.NewReferralRepository(store),
		}, nil
	case "sqlite", "postgres":
		dsn := cfg.Store.SQLitePath
		if cfg.Store.Backend == "postgres" {
			dsn = cfg.Database.URL()
		}
		db, err := openDB(cfg.Store.Backend, dsn)
		if err != nil {
			return ledgerRepos{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.User{}, &models.Investment{}, &models.Earning{}, &models.Referral{}); err != nil {
			return ledgerRepos{}, fmt.Errorf("failed to migrate ledger schema: %w", err)
		}
		return ledgerRepos{
			users:       repositories.NewUserRepository(db),
			investments: repositories.NewInvestmentRepository(db),
			earnings:    repositories.NewEarningRepository(db),
			referrals:   repositories.NewReferralRepository(db),
		}, nil
	default:
		return ledgerRepos{}, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
