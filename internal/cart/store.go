// Package cart — состояние корзины. Меняется только через Store; отрисовщик
// и сборщик заказа получают его явно.
package cart

import (
	"fmt"

	"github.com/example/coffee-miniapp/internal/domain"
)

// MaxQty — верхняя граница количества одной позиции.
const MaxQty = 10

// ClearPrompt — вопрос перед очисткой корзины.
const ClearPrompt = "Очистить корзину?"

// Store — соответствие «id строки → строка корзины» с порядком вставки.
// Строки не удаляются до Reset: id живут всю сессию, даже при количестве 0.
//
// Store не потокобезопасен: все вызовы идут из одного потока событий,
// сериализацию обеспечивает владелец.
type Store struct {
	order     []string
	entries   map[string]*domain.CartEntry
	summary   Summary
	listeners []func(Summary)
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*domain.CartEntry)}
}

// Add заводит строку при отрисовке меню. Количество и помол обнуляются.
func (s *Store) Add(e domain.CartEntry) error {
	if _, exists := s.entries[e.ID]; exists {
		return fmt.Errorf("cart: duplicate entry id %q", e.ID)
	}
	e.Qty = 0
	e.Grind = domain.GrindNone
	s.entries[e.ID] = &e
	s.order = append(s.order, e.ID)
	return nil
}

// Reset удаляет все строки; используется перед повторной отрисовкой каталога.
func (s *Store) Reset() {
	s.order = nil
	s.entries = make(map[string]*domain.CartEntry)
	s.refresh()
}

// Refresh пересчитывает сводку и оповещает подписчиков.
func (s *Store) Refresh() {
	s.refresh()
}

// Len — число строк, включая неактивные.
func (s *Store) Len() int {
	return len(s.order)
}

// Entry возвращает копию строки.
func (s *Store) Entry(id string) (domain.CartEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return domain.CartEntry{}, false
	}
	return *e, true
}

// SetQuantity меняет количество на delta с ограничением [0, MaxQty].
// Увеличение молотого кофе без помола отклоняется целиком (ErrGrindRequired).
// Если количество не изменилось, ничего не пересчитывается; changed=false.
func (s *Store) SetQuantity(id string, delta int) (changed bool, err error) {
	e, ok := s.entries[id]
	if !ok {
		return false, domain.NotFound(fmt.Sprintf("позиция %q не найдена", id))
	}
	if delta > 0 && e.NeedsGrind() {
		return false, domain.GrindRequired(e.Name)
	}

	next := clamp(e.Qty+delta, 0, MaxQty)
	if next == e.Qty {
		return false, nil
	}
	e.Qty = next
	s.refresh()
	return true, nil
}

// SetGrind выставляет помол без условий; пустое значение сбрасывает выбор.
// Количество не меняется. Для активной строки сводка пересчитывается,
// потому что помол виден в строке корзины.
func (s *Store) SetGrind(id string, g domain.GrindLevel) error {
	e, ok := s.entries[id]
	if !ok {
		return domain.NotFound(fmt.Sprintf("позиция %q не найдена", id))
	}
	if !g.Valid() {
		return domain.Validation(fmt.Sprintf("неизвестный помол: %q", g))
	}
	e.Grind = g
	if e.Active() {
		s.refresh()
	}
	return nil
}

// Clear обнуляет количество и помол всех строк после подтверждения.
// Отказ оставляет состояние нетронутым; возвращает, была ли очистка.
func (s *Store) Clear(c domain.Confirmer) bool {
	if c == nil || !c.Confirm(ClearPrompt) {
		return false
	}
	for _, id := range s.order {
		e := s.entries[id]
		e.Qty = 0
		e.Grind = domain.GrindNone
	}
	s.refresh()
	return true
}

// ActiveEntries — строки с количеством > 0 в порядке вставки.
func (s *Store) ActiveEntries() []domain.CartEntry {
	var out []domain.CartEntry
	for _, id := range s.order {
		if e := s.entries[id]; e.Active() {
			out = append(out, *e)
		}
	}
	return out
}

// TotalPrice пересчитывает сумму по активным строкам.
// Для отправки заказа используется Summary().Total — то, что видел пользователь.
func (s *Store) TotalPrice() domain.Money {
	var total domain.Money
	for _, e := range s.ActiveEntries() {
		total += e.LineTotal()
	}
	return total
}

// HasItems — есть ли хотя бы одна активная строка.
func (s *Store) HasItems() bool {
	for _, id := range s.order {
		if s.entries[id].Active() {
			return true
		}
	}
	return false
}

// Summary — закэшированная сводка после последней принятой мутации.
func (s *Store) Summary() Summary {
	return s.summary
}

// OnChange подписывает fn на пересчёт сводки. Вызывается синхронно.
func (s *Store) OnChange(fn func(Summary)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) refresh() {
	s.summary = buildSummary(s.ActiveEntries())
	for _, fn := range s.listeners {
		fn(s.summary)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
