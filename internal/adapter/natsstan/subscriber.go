package natsstan

import (
	"context"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"
	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/logger"
)

// Subscriber — durable-подписка на заказы, отправленные мини-приложением.
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
	Queue     string
	Log       *logger.Logger
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, id string, raw []byte) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("coffee-orderfeed-%d", time.Now().UnixNano())
	}
	queue := s.Queue
	if queue == "" {
		queue = "coffee-orderfeed"
	}
	log := s.Log
	if log == nil {
		log = logger.NewNop()
	}

	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return fmt.Errorf("stan connect: %w", err)
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, queue, func(m *stan.Msg) {
		hCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// номер сообщения стабилен при повторной доставке
		id := fmt.Sprintf("%s-%d", m.Subject, m.Sequence)
		if err := handler(hCtx, id, m.Data); err != nil {
			// не подтверждаем, даём сообщению переотправиться
			log.Warn("order handler failed", zap.String("id", id), zap.Error(err))
			return
		}
		if err := m.Ack(); err != nil {
			log.Warn("ack failed", zap.String("id", id), zap.Error(err))
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(10*time.Second), stan.DeliverAllAvailable())
	if err != nil {
		sc.Close()
		return fmt.Errorf("stan subscribe: %w", err)
	}
	return nil
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
