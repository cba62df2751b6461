package repository

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/metrics"
)

// DefaultDrawCapacity is the number of draws kept when no capacity is set.
const DefaultDrawCapacity = 256

// DrawHistory is a bounded, in-memory DrawStore with FIFO eviction.
type DrawHistory struct {
	mu       sync.RWMutex
	byID     map[string]*list.Element
	order    *list.List // front is the oldest draw
	capacity int
}

// NewDrawHistory creates an empty history.
func NewDrawHistory(opts ...DrawOption) *DrawHistory {
	h := &DrawHistory{
		byID:     make(map[string]*list.Element),
		order:    list.New(),
		capacity: DefaultDrawCapacity,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Save implements DrawStore.Save.
func (h *DrawHistory) Save(ctx context.Context, d model.Draw) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.byID[d.ID]; exists {
		return fmt.Errorf("draw %s: %w", d.ID, ErrDuplicate)
	}

	for h.order.Len() >= h.capacity {
		h.evictOldest()
	}
	h.byID[d.ID] = h.order.PushBack(d)
	metrics.UpdateDrawHistorySize(h.order.Len())
	return nil
}

// Get implements DrawStore.Get.
func (h *DrawHistory) Get(ctx context.Context, id string) (model.Draw, error) {
	h.mu.RLock()
	el, ok := h.byID[id]
	h.mu.RUnlock()

	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Draw{}, fmt.Errorf("draw %s: %w", id, ErrNotFound)
	}
	return el.Value.(model.Draw), nil
}

// Len implements DrawStore.Len.
func (h *DrawHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.order.Len()
}

// evictOldest must be called with the lock held.
func (h *DrawHistory) evictOldest() {
	front := h.order.Front()
	if front == nil {
		return
	}
	h.order.Remove(front)
	delete(h.byID, front.Value.(model.Draw).ID)
	metrics.RecordDrawHistoryEviction()
}
