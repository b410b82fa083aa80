package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/adapter/natsstan"
	"github.com/example/coffee-miniapp/internal/adapter/rabbit"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/config"
	"github.com/example/coffee-miniapp/internal/platform/logger"
)

// New строит мост по конфигурации, не подключаясь.
func New(cfg *config.Config, log *logger.Logger) domain.HostBridge {
	switch cfg.Bridge {
	case config.BridgeSTAN:
		return &natsstan.Publisher{
			ClusterID: cfg.STANClusterID,
			ClientID:  cfg.STANClientID,
			URL:       cfg.NATSURL,
			Subject:   cfg.STANSubject,
		}
	case config.BridgeAMQP:
		return &rabbit.Publisher{URL: cfg.AMQPURL, Queue: cfg.AMQPQueue}
	default:
		return Local{Log: log}
	}
}

// Open вызывает Ready у выбранного моста. Если мост недоступен,
// возвращается Local: отсутствие моста не должно ронять приложение.
func Open(ctx context.Context, b domain.HostBridge, log *logger.Logger) domain.HostBridge {
	if err := b.Ready(ctx); err != nil {
		log.Warn("host bridge unavailable, using local fallback",
			zap.String("bridge", b.Name()), zap.Error(err))
		_ = b.Close()
		return Local{Log: log}
	}
	log.Info("host bridge ready", zap.String("bridge", b.Name()), zap.Bool("available", b.Available()))
	return b
}
