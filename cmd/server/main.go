package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backoffice/admin-api/internal/api"
	"github.com/backoffice/admin-api/internal/api/handler"
	"github.com/backoffice/admin-api/internal/core/service"
	"github.com/backoffice/admin-api/internal/infrastructure/config"
	mongodb "github.com/backoffice/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/backoffice/admin-api/internal/infrastructure/db/redis"
	"github.com/backoffice/admin-api/internal/infrastructure/queue"
	"github.com/backoffice/admin-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Admin API
// @version 1.0
// @description Role-based administration API: sessions, users, roles, menus, modules and products.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	menuItemRepo := mongodb.NewMenuItemRepository(db)
	grantsRepo := mongodb.NewGrantsRepository(db)
	moduleRepo := mongodb.NewModuleRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	auditRepo := mongodb.NewAuditLoginRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"menus":        menuRepo.EnsureIndexes,
		"menu_items":   menuItemRepo.EnsureIndexes,
		"audit_logins": auditRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Async audit trail ---
	auditWriter := queue.NewAuditWriter(cfg.Audit.Workers, auditRepo, log)
	auditWriter.Start(ctx)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	// --- Services ---
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	sessionService := service.NewSessionService(userRepo, roleRepo, grantsRepo, issuer, auditWriter, throttle, log)
	userService := service.NewUserService(userRepo, log)
	roleService := service.NewRoleService(roleRepo, log)
	menuService := service.NewMenuService(menuRepo, menuItemRepo, log)
	moduleService := service.NewModuleService(moduleRepo, log)
	productService := service.NewProductService(productRepo, log)

	handlers := api.Handlers{
		Auth:    handler.NewAuthHandler(sessionService),
		User:    handler.NewUserHandler(userService),
		Role:    handler.NewRoleHandler(roleService),
		Menu:    handler.NewMenuHandler(menuService),
		Module:  handler.NewModuleHandler(moduleService),
		Product: handler.NewProductHandler(productService),
		Audit:   handler.NewAuditHandler(auditRepo),
	}

	e := api.NewRouter(db, rdb, userRepo, handlers, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
