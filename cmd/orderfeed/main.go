package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/adapter/cache"
	"github.com/example/coffee-miniapp/internal/adapter/httpapi"
	"github.com/example/coffee-miniapp/internal/adapter/natsstan"
	"github.com/example/coffee-miniapp/internal/adapter/repo"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/config"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
	"github.com/example/coffee-miniapp/internal/usecase"
)

// orderfeed — сторона хоста: принимает заказы из stan, архивирует их
// в PostgreSQL и отдаёт по id.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log := logger.New(cfg.IsDevelopment())
	defer func() { _ = log.Sync() }()
	m := metrics.New()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("init schema", zap.Error(err))
	}

	orders := repo.NewPostgresOrderRepo(pool)
	orderCache := cache.NewMemoryOrderCache()
	n, err := usecase.WarmOrderCache{Repo: orders, Cache: orderCache}.Execute(ctx)
	if err != nil {
		log.Fatal("load cache", zap.Error(err))
	}
	log.Info("order cache warmed", zap.Int("orders", n))

	sub := &natsstan.Subscriber{
		ClusterID: cfg.STANClusterID,
		ClientID:  cfg.STANClientID,
		URL:       cfg.NATSURL,
		Subject:   cfg.STANSubject,
		Durable:   cfg.STANDurable,
		Log:       log,
	}
	process := usecase.ProcessIncomingOrder{Repo: orders, Cache: orderCache, Validate: domain.NewValidator()}
	if err := sub.Subscribe(ctx, func(ctx context.Context, id string, raw []byte) error {
		if err := process.Execute(ctx, id, raw); err != nil {
			return err
		}
		log.Info("processed order", zap.String("id", id))
		return nil
	}); err != nil {
		log.Fatal("subscribe", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewArchiveServer(usecase.GetArchivedOrder{Cache: orderCache}, log, m).Router,
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
