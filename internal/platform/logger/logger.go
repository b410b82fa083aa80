// Package logger — структурированное логирование сервисов поверх zap.
package logger

import (
	"time"

	"go.uber.org/zap"
)

// Logger — zap.Logger с хелперами для событий корзины и заказа.
type Logger struct {
	*zap.Logger
}

// New — консольный вывод с уровнем debug для разработки, иначе JSON с уровнем info.
func New(development bool) *Logger {
	var (
		zl  *zap.Logger
		err error
	)
	if development {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		zl = zap.NewNop()
	}
	return &Logger{Logger: zl}
}

// NewNop — логгер, который всё отбрасывает.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// WithRequestID — дочерний логгер с полем request_id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.With(zap.String("request_id", requestID))
}

func (l *Logger) HTTPRequest(method, path string, status int, latency time.Duration) {
	l.Info("http_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
	)
}

// CartMutation — принятые изменения идут в debug, отказы в info с причиной.
func (l *Logger) CartMutation(op, entryID string, qty int, accepted bool, reason string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("entry_id", entryID),
		zap.Int("qty", qty),
		zap.Bool("accepted", accepted),
	}
	if accepted {
		l.Debug("cart_mutation", fields...)
		return
	}
	l.Info("cart_mutation", append(fields, zap.String("reason", reason))...)
}

// OrderEvent — итог попытки отправки заказа.
func (l *Logger) OrderEvent(outcome string, items int, total string, err error) {
	fields := []zap.Field{
		zap.String("outcome", outcome),
		zap.Int("items", items),
		zap.String("total_price", total),
	}
	if err != nil {
		l.Warn("order_event", append(fields, zap.Error(err))...)
		return
	}
	l.Info("order_event", fields...)
}
