// Package natsstan — заказы между мини-приложением и хостом через NATS Streaming.
package natsstan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	stan "github.com/nats-io/stan.go"

	"github.com/example/coffee-miniapp/internal/domain"
)

// Publisher — мост хост-платформы поверх NATS Streaming: SendData публикует
// JSON заказа в Subject.
type Publisher struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string

	mu sync.Mutex
	sc stan.Conn
}

func (p *Publisher) Name() string    { return "stan" }
func (p *Publisher) Available() bool { return true }

// Ready устанавливает соединение; повторный вызов ничего не делает.
func (p *Publisher) Ready(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sc != nil {
		return nil
	}
	sc, err := stan.Connect(p.ClusterID, p.ClientID, stan.NatsURL(p.URL))
	if err != nil {
		return fmt.Errorf("stan connect: %w", err)
	}
	p.sc = sc
	return nil
}

func (p *Publisher) SendData(_ context.Context, data []byte) error {
	p.mu.Lock()
	sc := p.sc
	p.mu.Unlock()
	if sc == nil {
		return errors.New("stan: bridge is not ready")
	}
	if err := sc.Publish(p.Subject, data); err != nil {
		return fmt.Errorf("stan publish: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sc == nil {
		return nil
	}
	err := p.sc.Close()
	p.sc = nil
	return err
}

var _ domain.HostBridge = (*Publisher)(nil)
