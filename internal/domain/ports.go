package domain

import "context"

// CatalogSource — порт источника каталога (HTTP, файл, БД).
type CatalogSource interface {
	Fetch(ctx context.Context) (Catalog, error)
}

// HostBridge — порт моста к хост-платформе мини-приложения.
// Локальная реализация подставляется, когда настоящего моста нет.
type HostBridge interface {
	Name() string
	// Available — false у локальной заглушки: данные никуда не уходят.
	Available() bool
	Ready(ctx context.Context) error
	SendData(ctx context.Context, data []byte) error
	Close() error
}

// Alerter — модальное сообщение пользователю.
type Alerter interface {
	ShowAlert(message string)
}

// Confirmer — вопрос «да/нет» перед разрушающим действием.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc позволяет передать функцию как Confirmer.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// AlertFunc позволяет передать функцию как Alerter.
type AlertFunc func(message string)

func (f AlertFunc) ShowAlert(message string) { f(message) }

// OrderRepository — архив принятых заказов на стороне хоста.
type OrderRepository interface {
	Upsert(ctx context.Context, id string, raw []byte) error
	// LoadAll читает весь архив; битые строки пропускаются.
	LoadAll(ctx context.Context) (map[string]OrderPayload, error)
}

// OrderCache — архив заказов в памяти, по id сообщения.
type OrderCache interface {
	Get(id string) (OrderPayload, bool)
	Set(id string, o OrderPayload)
	// WarmUp заменяет содержимое снимком архива и возвращает число заказов.
	WarmUp(orders map[string]OrderPayload) int
}

// CatalogRepository — хранилище документов каталога.
type CatalogRepository interface {
	SaveDocument(ctx context.Context, raw []byte) (int64, error)
	LatestDocument(ctx context.Context) ([]byte, error)
}

// MessageSubscriber — порт подписчика на входящие заказы.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	// id стабилен между повторными доставками одного сообщения.
	Subscribe(ctx context.Context, handler func(ctx context.Context, id string, raw []byte) error) error
}
