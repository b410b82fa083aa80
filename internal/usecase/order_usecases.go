package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
)

// Outcome — чем закончилась попытка отправки заказа.
// После любой попытки сессия снова в состоянии Idle: повторов и очереди нет.
type Outcome string

const (
	OutcomeSubmitted Outcome = metrics.OutcomeSubmitted
	OutcomeRejected  Outcome = metrics.OutcomeRejected
	OutcomeAborted   Outcome = metrics.OutcomeAborted
	OutcomeFailed    Outcome = metrics.OutcomeFailed
)

const sendFailedMessage = "Не удалось отправить заказ. Попробуйте ещё раз."

// DefaultGuestName подставляется, когда хост не передал пользователя.
const DefaultGuestName = "Гость"

// ComposeOrder — собрать OrderPayload из активных строк корзины.
type ComposeOrder struct {
	Store     *cart.Store
	GuestName string
}

// Execute возвращает ok=false без ошибки, если корзина пуста.
// Молотый кофе без помола прерывает сборку целиком.
func (uc ComposeOrder) Execute(req domain.Requester, comment string) (domain.OrderPayload, bool, error) {
	active := uc.Store.ActiveEntries()
	if len(active) == 0 {
		return domain.OrderPayload{}, false, nil
	}

	items := make([]domain.OrderItem, 0, len(active))
	var totalWeight float64
	for _, e := range active {
		if e.NeedsGrind() {
			return domain.OrderPayload{}, false, domain.GrindMissing(e.Name)
		}
		lineWeight := e.LineWeight()
		totalWeight += lineWeight
		items = append(items, domain.OrderItem{
			Name:            e.Name,
			Quantity:        e.Qty,
			Weight:          e.Weight,
			TotalItemWeight: lineWeight,
			Price:           e.Price,
			Type:            e.Type,
			GrindLevel:      e.Grind,
		})
	}

	return domain.OrderPayload{
		Name:        req.DisplayName(uc.guestName()),
		UserID:      req.ID,
		Comment:     comment,
		Items:       items,
		TotalWeight: totalWeight,
		// итог берётся из сводки: ровно то, что пользователь видел на экране
		TotalPrice: uc.Store.Summary().Total,
	}, true, nil
}

func (uc ComposeOrder) guestName() string {
	if uc.GuestName == "" {
		return DefaultGuestName
	}
	return uc.GuestName
}

// SubmitOrder — проверить, собрать и передать заказ в мост хост-платформы.
type SubmitOrder struct {
	Store     *cart.Store
	Bridge    domain.HostBridge
	Alerts    domain.Alerter
	Validate  *validator.Validate
	GuestName string
	Log       *logger.Logger
	Metrics   *metrics.Metrics
}

func (uc SubmitOrder) Execute(ctx context.Context, req domain.Requester, comment string) (Outcome, error) {
	log := orNop(uc.Log)

	payload, ok, err := ComposeOrder{Store: uc.Store, GuestName: uc.GuestName}.Execute(req, comment)
	if err != nil {
		return uc.finish(log, OutcomeRejected, payload, err)
	}
	if !ok {
		return uc.finish(log, OutcomeAborted, payload, nil)
	}
	if uc.Validate != nil {
		if verr := uc.Validate.Struct(payload); verr != nil {
			err := &domain.Error{
				Kind:    domain.KindValidation,
				Message: "Заказ не прошёл проверку",
				Err:     fmt.Errorf("%w: %w", domain.ErrValidation, verr),
			}
			return uc.finish(log, OutcomeRejected, payload, err)
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return uc.finish(log, OutcomeFailed, payload, fmt.Errorf("marshal order: %w", err))
	}
	if err := uc.Bridge.SendData(ctx, raw); err != nil {
		return uc.finish(log, OutcomeFailed, payload, domain.Unavailable(sendFailedMessage, err).WithOp(uc.Bridge.Name()))
	}
	return uc.finish(log, OutcomeSubmitted, payload, nil)
}

func (uc SubmitOrder) finish(log *logger.Logger, outcome Outcome, p domain.OrderPayload, err error) (Outcome, error) {
	uc.Metrics.OrderOutcome(string(outcome))
	log.OrderEvent(string(outcome), len(p.Items), p.TotalPrice.String(), err)
	if err != nil {
		showAlert(uc.Alerts, domain.UserMessage(err))
	}
	return outcome, err
}

// ProcessIncomingOrder — принять заказ на стороне хоста: проверить и сохранить.
type ProcessIncomingOrder struct {
	Repo     domain.OrderRepository
	Cache    domain.OrderCache
	Validate *validator.Validate
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, id string, raw []byte) error {
	var o domain.OrderPayload
	if err := json.Unmarshal(raw, &o); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if uc.Validate != nil {
		if err := uc.Validate.Struct(o); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
	}
	if err := uc.Repo.Upsert(ctx, id, raw); err != nil {
		return err
	}
	if uc.Cache != nil {
		uc.Cache.Set(id, o)
	}
	return nil
}

// WarmOrderCache восстанавливает кэш из архива после рестарта.
type WarmOrderCache struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc WarmOrderCache) Execute(ctx context.Context) (int, error) {
	all, err := uc.Repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	return uc.Cache.WarmUp(all), nil
}

type GetArchivedOrder struct {
	Cache domain.OrderCache
}

func (uc GetArchivedOrder) Execute(id string) (domain.OrderPayload, error) {
	o, ok := uc.Cache.Get(id)
	if !ok {
		return domain.OrderPayload{}, domain.NotFound("заказ не найден")
	}
	return o, nil
}

func showAlert(a domain.Alerter, msg string) {
	if a != nil {
		a.ShowAlert(msg)
	}
}

func orNop(l *logger.Logger) *logger.Logger {
	if l == nil {
		return logger.NewNop()
	}
	return l
}
