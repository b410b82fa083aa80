// Package bridge — выбор моста хост-платформы. Без настроенного или доступного
// транспорта работает локальная заглушка: данные заказа только пишутся в лог.
package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/logger"
)

// Local — заглушка без хост-платформы.
type Local struct {
	Log *logger.Logger
}

func (l Local) Name() string                { return "local" }
func (l Local) Available() bool             { return false }
func (l Local) Ready(context.Context) error { return nil }
func (l Local) Close() error                { return nil }

func (l Local) SendData(_ context.Context, data []byte) error {
	if l.Log != nil {
		l.Log.Info("host bridge unavailable, order not transmitted", zap.Int("bytes", len(data)))
	}
	return nil
}

var _ domain.HostBridge = Local{}
