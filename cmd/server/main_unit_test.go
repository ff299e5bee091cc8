package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stake-chain.backend/internal/config"
	plog "stake-chain.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Store: config.StoreConfig{
			Backend: "memory",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "stakechain",
			SSLMode:  "disable",
		},
		Referral: config.ReferralConfig{
			MaxDepth:     30,
			TreeCacheTTL: 30 * time.Second,
		},
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMainProcess_SqliteBackendSuccess(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Store.Backend = "sqlite"
		return cfg
	}
	initLog = plog.Init
	openDB = func(backend, dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(fmt.Sprintf("file:main_sqlite_%d?mode=memory&cache=shared", time.Now().UnixNano())), &gorm.Config{})
	}
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Redis.URL = "redis://localhost:6379"
		return cfg
	}
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Store.Backend = "postgres"
		return cfg
	}
	initLog = plog.Init
	openDB = func(string, string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_UnknownBackendError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Store.Backend = "cassandra"
		return cfg
	}
	initLog = plog.Init

	if err := runMainProcess(); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}
