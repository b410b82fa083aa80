package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/adapter/bridge"
	"github.com/example/coffee-miniapp/internal/adapter/catalogsrc"
	"github.com/example/coffee-miniapp/internal/adapter/httpapi"
	"github.com/example/coffee-miniapp/internal/adapter/repo"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/config"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
	"github.com/example/coffee-miniapp/internal/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log := logger.New(cfg.IsDevelopment())
	defer func() { _ = log.Sync() }()
	m := metrics.New()

	source, closeSource, err := buildCatalogSource(ctx, cfg)
	if err != nil {
		log.Fatal("catalog source", zap.Error(err))
	}
	defer closeSource()

	hostBridge := bridge.Open(ctx, bridge.New(cfg, log), log)
	defer func() { _ = hostBridge.Close() }()

	app := session.New(session.Options{
		Source:    source,
		Bridge:    hostBridge,
		GuestName: cfg.GuestName,
		Log:       log,
		Metrics:   m,
	})
	// ошибка загрузки показывается в меню, сервис продолжает работать
	if err := app.Load(ctx); err != nil {
		log.Warn("menu not loaded", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewServer(app, log, m).Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("http listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}

// buildCatalogSource выбирает источник меню по CATALOG_SOURCE.
// Возвращаемая функция освобождает ресурсы источника.
func buildCatalogSource(ctx context.Context, cfg *config.Config) (domain.CatalogSource, func(), error) {
	switch cfg.CatalogSource {
	case config.CatalogHTTP:
		return catalogsrc.NewHTTPSource(cfg.CatalogURL), func() {}, nil
	case config.CatalogFile:
		return catalogsrc.FileSource{Path: cfg.CatalogFile}, func() {}, nil
	case config.CatalogPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		return catalogsrc.StoredSource{Repo: repo.NewPostgresCatalogRepo(pool)}, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
