package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/p2ppsr/myac/config"
	"github.com/p2ppsr/myac/internal/certificate/delivery"
	"github.com/p2ppsr/myac/internal/certificate/repository"
	"github.com/p2ppsr/myac/internal/certificate/template"
	"github.com/p2ppsr/myac/internal/certificate/usecase"
	"github.com/p2ppsr/myac/pkg/authcrypto"
	"github.com/p2ppsr/myac/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	// A missing or placeholder signing key makes every certificate this
	// process would issue worthless; refuse to start.
	certifier, err := authcrypto.New(cfg.Certifier.PrivateKey)
	if err != nil {
		log.Fatalf("invalid certifier private key: %v", err)
	}

	registry, err := template.New(cfg.Certifier.Types)
	if err != nil {
		log.Fatalf("invalid certificate type configuration: %v", err)
	}

	ctx := context.Background()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	repo := repository.NewCertificateRepository(db, *appLogger)
	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	uc := usecase.NewCertificateUsecase(repo, certifier, registry, *appLogger, *cfg)
	handlers := delivery.NewHandlers(uc, *appLogger, *cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handlers.Router(),
	}

	go func() {
		appLogger.Info("certifier listening", "port", cfg.Server.Port)
		appLogger.Info("certifier identity", "public_key", certifier.PublicKey())
		for _, t := range registry.All() {
			appLogger.Info("certificate type registered", "type_id", t.TypeID, "fields", t.Fields)
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", "err", err)
	}
	appLogger.Info("certifier stopped")
}
