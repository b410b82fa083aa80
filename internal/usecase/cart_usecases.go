package usecase

import (
	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/menu"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
)

// QuantityResult — итог нажатия «−/+».
type QuantityResult struct {
	Changed   bool
	Highlight *menu.Highlight
}

// ChangeQuantity — изменить количество; при отказе из-за помола показать
// сообщение и подсветить селектор.
type ChangeQuantity struct {
	Store   *cart.Store
	Alerts  domain.Alerter
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func (uc ChangeQuantity) Execute(id string, delta int) (QuantityResult, error) {
	log := orNop(uc.Log)

	changed, err := uc.Store.SetQuantity(id, delta)
	if err != nil {
		uc.Metrics.CartMutation("quantity", "rejected")
		e, _ := uc.Store.Entry(id)
		log.CartMutation("quantity", id, e.Qty, false, err.Error())
		var hl *menu.Highlight
		if domain.KindOf(err) == domain.KindValidation {
			showAlert(uc.Alerts, domain.UserMessage(err))
			hl = menu.GrindHighlight(id)
		}
		return QuantityResult{Highlight: hl}, err
	}

	e, _ := uc.Store.Entry(id)
	if !changed {
		uc.Metrics.CartMutation("quantity", "noop")
		return QuantityResult{}, nil
	}
	uc.Metrics.CartMutation("quantity", "accepted")
	log.CartMutation("quantity", id, e.Qty, true, "")
	return QuantityResult{Changed: true}, nil
}

// SelectGrind — выбор помола в селекторе; пустое значение сбрасывает выбор.
type SelectGrind struct {
	Store   *cart.Store
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func (uc SelectGrind) Execute(id, value string) error {
	g, err := domain.ParseGrindLevel(value)
	if err == nil {
		err = uc.Store.SetGrind(id, g)
	}
	if err != nil {
		uc.Metrics.CartMutation("grind", "rejected")
		orNop(uc.Log).CartMutation("grind", id, 0, false, err.Error())
		return err
	}
	uc.Metrics.CartMutation("grind", "accepted")
	return nil
}

// ClearCart — очистить корзину после подтверждения.
type ClearCart struct {
	Store   *cart.Store
	Confirm domain.Confirmer
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func (uc ClearCart) Execute() bool {
	cleared := uc.Store.Clear(uc.Confirm)
	result := "declined"
	if cleared {
		result = "accepted"
	}
	uc.Metrics.CartMutation("clear", result)
	orNop(uc.Log).CartMutation("clear", "*", 0, cleared, result)
	return cleared
}
