package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bankwebapp/api"
	"go-bankwebapp/config"
	"go-bankwebapp/logger"
	"go-bankwebapp/service"
	"go-bankwebapp/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	customerStore, accountStore, err := buildStores(cfg)
	if err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}
	log.Info("store initialized", zap.String("backend", cfg.Store.Backend))

	customerService := service.NewCustomerService(customerStore, log)
	accountService := service.NewAccountService(accountStore, customerService, log)

	if err := api.RegisterValidations(); err != nil {
		log.Fatal("failed to register request validations", zap.Error(err))
	}

	r := api.NewRouter(log, cfg.HTTP.CORSAllowOrigins,
		api.NewCustomerHandler(customerService),
		api.NewAccountHandler(accountService))

	addr := ":" + cfg.App.Port
	log.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.App.Env))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildStores picks the record store backend from configuration. Memory is
// the default; sqlite persists to disk via GORM.
func buildStores(cfg *config.Config) (store.CustomerStore, store.AccountStore, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		db, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store.NewGormCustomerStore(db), store.NewGormAccountStore(db), nil
	default:
		return store.NewMemoryCustomerStore(), store.NewMemoryAccountStore(), nil
	}
}
