package cache

import (
	"sync"

	"github.com/example/coffee-miniapp/internal/domain"
)

// MemoryOrderCache — принятые заказы в памяти orderfeed, ключ — id сообщения.
// Хранит копии: Items вызывающей стороны не разделяются с кэшем.
type MemoryOrderCache struct {
	mu    sync.RWMutex
	store map[string]domain.OrderPayload
}

func NewMemoryOrderCache() *MemoryOrderCache {
	return &MemoryOrderCache{store: make(map[string]domain.OrderPayload)}
}

func (c *MemoryOrderCache) Get(id string) (domain.OrderPayload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.store[id]
	if !ok {
		return domain.OrderPayload{}, false
	}
	return clonePayload(o), true
}

func (c *MemoryOrderCache) Set(id string, o domain.OrderPayload) {
	o = clonePayload(o)
	c.mu.Lock()
	c.store[id] = o
	c.mu.Unlock()
}

// WarmUp собирает новую карту вне блокировки и подменяет ею старую:
// читатели видят либо прежний архив, либо новый целиком.
func (c *MemoryOrderCache) WarmUp(orders map[string]domain.OrderPayload) int {
	next := make(map[string]domain.OrderPayload, len(orders))
	for id, o := range orders {
		next[id] = clonePayload(o)
	}
	c.mu.Lock()
	c.store = next
	c.mu.Unlock()
	return len(next)
}

func (c *MemoryOrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func clonePayload(o domain.OrderPayload) domain.OrderPayload {
	if o.Items != nil {
		o.Items = append([]domain.OrderItem(nil), o.Items...)
	}
	if o.UserID != nil {
		id := *o.UserID
		o.UserID = &id
	}
	return o
}

var _ domain.OrderCache = (*MemoryOrderCache)(nil)
