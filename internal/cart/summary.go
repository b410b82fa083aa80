package cart

import (
	"fmt"

	"github.com/example/coffee-miniapp/internal/domain"
)

const (
	labelPlaceOrder = "Оформить заказ"
	labelCartEmpty  = "Корзина пуста"
)

// Line — строка списка корзины.
type Line struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Qty       int               `json:"qty"`
	Grind     domain.GrindLevel `json:"grind,omitempty"`
	LineTotal domain.Money      `json:"line_total"`
	Text      string            `json:"text"`
	PriceText string            `json:"price_text"`
}

// Summary — список активных строк, итог и производный флаг HasItems.
type Summary struct {
	Lines    []Line       `json:"lines"`
	Total    domain.Money `json:"total"`
	HasItems bool         `json:"has_items"`
}

// UIState — что включить и что показать при текущей корзине.
type UIState struct {
	SubmitEnabled bool   `json:"submit_enabled"`
	SubmitLabel   string `json:"submit_label"`
	ShowClear     bool   `json:"show_clear"`
	ShowComment   bool   `json:"show_comment"`
}

// UI выводит состояние элементов управления из HasItems.
func (s Summary) UI() UIState {
	label := labelCartEmpty
	if s.HasItems {
		label = labelPlaceOrder
	}
	return UIState{
		SubmitEnabled: s.HasItems,
		SubmitLabel:   label,
		ShowClear:     s.HasItems,
		ShowComment:   s.HasItems,
	}
}

func buildSummary(active []domain.CartEntry) Summary {
	sum := Summary{Lines: make([]Line, 0, len(active))}
	for _, e := range active {
		text := fmt.Sprintf("%s x%d", e.Name, e.Qty)
		if g := e.Grind.Short(); g != "" {
			text += " (" + g + ")"
		}
		sum.Lines = append(sum.Lines, Line{
			ID:        e.ID,
			Name:      e.Name,
			Qty:       e.Qty,
			Grind:     e.Grind,
			LineTotal: e.LineTotal(),
			Text:      text,
			PriceText: e.LineTotal().Label(),
		})
		sum.Total += e.LineTotal()
	}
	sum.HasItems = len(active) > 0
	return sum
}
