// Package main starts the asset-management backend: configuration, logging,
// database, repositories, services, handlers and the HTTP server.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/auth"
	"github.com/Kurniawan20/effiework-sub000/internal/config"
	"github.com/Kurniawan20/effiework-sub000/internal/db"
	"github.com/Kurniawan20/effiework-sub000/internal/logger"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
	"github.com/Kurniawan20/effiework-sub000/internal/server/handler/http"
	"github.com/Kurniawan20/effiework-sub000/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	postgresDB, err := db.InitPostgres(ctx, options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgresDB.Close()

	cleanerDone := db.StartSoftDeleteCleaner(ctx, postgresDB,
		options.CleanupEvery(),
		options.RetentionPeriod(),
		zapLogger,
	)

	userRepo := repository.NewPostgresUserRepository(postgresDB)
	catalogRepo := repository.NewPostgresCatalogRepository(postgresDB)
	assetRepo := repository.NewPostgresAssetRepository(postgresDB)
	transferRepo := repository.NewPostgresTransferRepository(postgresDB)
	foodRepo := repository.NewPostgresFoodRepository(postgresDB)

	tokens := auth.NewTokenManager(options.JWTSecret, options.TokenLifetime())

	authService := service.NewAuthService(userRepo, tokens, zapLogger)
	catalogService := service.NewCatalogService(catalogRepo)
	assetService := service.NewAssetService(assetRepo)
	transferService := service.NewTransferService(transferRepo, assetRepo, zapLogger)
	foodService := service.NewFoodService(foodRepo)

	if options.AdminUser != "" && options.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, options.AdminUser, options.AdminPassword); err != nil {
			zapLogger.Fatal("cannot create admin user", zap.Error(err))
		}
	}

	rs := http.Responder{Log: zapLogger}
	router := http.NewRouter(http.Handlers{
		Auth:      &http.AuthHandler{Responder: rs, AuthService: authService},
		Assets:    &http.AssetHandler{Responder: rs, AssetService: assetService},
		Catalog:   &http.CatalogHandler{Responder: rs, CatalogService: catalogService},
		Transfers: &http.TransferHandler{Responder: rs, TransferService: transferService},
		Food:      &http.FoodHandler{Responder: rs, FoodService: foodService},
	}, tokens, allowedOrigins(options), zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	if options.TLSCert != "" && options.TLSKey != "" {
		zapLogger.Info("starting HTTPS server", zap.String("addr", options.Port))
		err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
	} else {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("server failed", zap.Error(err))
	}

	<-cleanerDone
	zapLogger.Info("server stopped")
}

func allowedOrigins(o *config.Options) []string {
	if len(o.AllowedOrigins) > 0 {
		return o.AllowedOrigins
	}
	return []string{"http://localhost:*", "http://127.0.0.1:*"}
}
