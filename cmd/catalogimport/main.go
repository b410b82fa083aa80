package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/adapter/catalogsrc"
	"github.com/example/coffee-miniapp/internal/adapter/repo"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/config"
	"github.com/example/coffee-miniapp/internal/platform/logger"
)

// catalogimport читает документ меню из stdin и сохраняет его
// для CATALOG_SOURCE=postgres.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log := logger.New(cfg.IsDevelopment())
	defer func() { _ = log.Sync() }()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("read json from stdin", zap.Error(err))
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("init schema", zap.Error(err))
	}

	id, products, err := importCatalog(ctx, repo.NewPostgresCatalogRepo(pool), raw)
	if err != nil {
		log.Fatal("import catalog", zap.Error(err))
	}
	log.Info("catalog imported", zap.Int64("id", id), zap.Int("products", products), zap.Int("bytes", len(raw)))
}

// importCatalog сохраняет документ только если он разбирается как меню.
func importCatalog(ctx context.Context, r domain.CatalogRepository, raw []byte) (int64, int, error) {
	cat, err := catalogsrc.Parse(raw)
	if err != nil {
		return 0, 0, fmt.Errorf("parse: %w", err)
	}
	id, err := r.SaveDocument(ctx, raw)
	if err != nil {
		return 0, 0, err
	}
	return id, cat.ProductCount(), nil
}
