// Package session — одна сессия мини-приложения: каталог, меню и корзина.
// HTTP-обработчики работают в разных горутинах, Session выстраивает их вызовы
// в очередь, и корзина видит одну мутацию за раз.
package session

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/example/coffee-miniapp/internal/adapter/bridge"
	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/menu"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
	"github.com/example/coffee-miniapp/internal/usecase"
)

// Options — зависимости сессии.
type Options struct {
	Source    domain.CatalogSource
	Bridge    domain.HostBridge
	GuestName string
	Log       *logger.Logger
	Metrics   *metrics.Metrics
}

type Session struct {
	mu       sync.Mutex
	store    *cart.Store
	view     menu.View
	loadErr  error
	source   domain.CatalogSource
	bridge   domain.HostBridge
	validate *validator.Validate
	guest    string
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func New(opts Options) *Session {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	b := opts.Bridge
	if b == nil {
		b = bridge.Local{Log: log}
	}
	return &Session{
		store:    cart.NewStore(),
		view:     menu.View{Categories: []menu.CategoryView{}, ScrollTopOffset: menu.ScrollTopOffset},
		source:   opts.Source,
		bridge:   b,
		validate: domain.NewValidator(),
		guest:    opts.GuestName,
		log:      log,
		metrics:  opts.Metrics,
	}
}

// Load загружает каталог и отрисовывает меню. Ошибка не фатальна:
// меню заменяется панелью ошибки, корзина остаётся пустой.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := usecase.LoadMenu{
		Source: s.source, Store: s.store, Log: s.log, Metrics: s.metrics,
	}.Execute(ctx)
	s.view = view
	s.loadErr = err
	return err
}

// LoadErr — ошибка последней загрузки каталога.
func (s *Session) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Menu — текущее меню с количествами и помолом из корзины.
func (s *Session) Menu() menu.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.WithState(s.store)
}

// Cart — сводка корзины.
func (s *Session) Cart() cart.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Summary()
}

// Entry — строка корзины по id.
func (s *Session) Entry(id string) (domain.CartEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Entry(id)
}

func (s *Session) ChangeQuantity(id string, delta int, alerts domain.Alerter) (usecase.QuantityResult, cart.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := usecase.ChangeQuantity{
		Store: s.store, Alerts: alerts, Log: s.log, Metrics: s.metrics,
	}.Execute(id, delta)
	return res, s.store.Summary(), err
}

func (s *Session) SelectGrind(id, value string) (cart.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := usecase.SelectGrind{Store: s.store, Log: s.log, Metrics: s.metrics}.Execute(id, value)
	return s.store.Summary(), err
}

func (s *Session) Clear(confirm domain.Confirmer) (bool, cart.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := usecase.ClearCart{
		Store: s.store, Confirm: confirm, Log: s.log, Metrics: s.metrics,
	}.Execute()
	return cleared, s.store.Summary()
}

// Submit — одна попытка отправки заказа; повторов и очереди нет.
func (s *Session) Submit(ctx context.Context, req domain.Requester, comment string, alerts domain.Alerter) (usecase.Outcome, cart.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := usecase.SubmitOrder{
		Store:     s.store,
		Bridge:    s.bridge,
		Alerts:    alerts,
		Validate:  s.validate,
		GuestName: s.guest,
		Log:       s.log,
		Metrics:   s.metrics,
	}.Execute(ctx, req, comment)
	return outcome, s.store.Summary(), err
}

// Bridge — мост, через который уходят заказы.
func (s *Session) Bridge() domain.HostBridge {
	return s.bridge
}
