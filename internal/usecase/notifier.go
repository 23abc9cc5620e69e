package usecase

import (
	"context"
	"sync"

	"github.com/housetab/housetab/internal/domain"
)

// FanoutNotifier delivers change events to in-process subscribers,
// synchronously and in subscription order. It backs single-instance
// deployments where no Redis channel is configured; read-only views
// subscribe to learn that their next read should recompute.
type FanoutNotifier struct {
	mu          sync.RWMutex
	subscribers []func(domain.ChangeEvent)
}

// NewFanoutNotifier creates an empty FanoutNotifier.
func NewFanoutNotifier() *FanoutNotifier {
	return &FanoutNotifier{}
}

// Subscribe registers a handler for future events.
func (n *FanoutNotifier) Subscribe(handler func(domain.ChangeEvent)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers = append(n.subscribers, handler)
}

// Notify delivers the event to every subscriber.
func (n *FanoutNotifier) Notify(ctx context.Context, event domain.ChangeEvent) {
	n.mu.RLock()
	handlers := n.subscribers
	n.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
