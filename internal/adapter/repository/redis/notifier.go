package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/housetab/housetab/internal/domain"
)

// ChangeChannel is the pub/sub channel ledger change events go out on.
const ChangeChannel = "housetab:changes"

// ChangeNotifier implements usecase.ChangeNotifier over Redis pub/sub.
// Delivery is advisory: a failed publish is logged and dropped, never
// surfaced to the write path. Read-only views that miss an event are
// merely stale until their next poll.
type ChangeNotifier struct {
	client *redis.Client
	logger *slog.Logger
}

// NewChangeNotifier creates a new ChangeNotifier.
func NewChangeNotifier(client *redis.Client, logger *slog.Logger) *ChangeNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChangeNotifier{client: client, logger: logger}
}

// Notify publishes a change event. Errors are logged, not returned.
func (n *ChangeNotifier) Notify(ctx context.Context, event domain.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to encode change event",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()))

		return
	}

	if err := n.client.Publish(ctx, ChangeChannel, payload).Err(); err != nil {
		n.logger.Error("failed to publish change event",
			slog.String("event_id", event.ID),
			slog.String("entity", event.Entity),
			slog.String("error", err.Error()))

		return
	}

	n.logger.Debug("change event published",
		slog.String("event_id", event.ID),
		slog.String("entity", event.Entity),
		slog.String("action", event.Action),
		slog.String("record_id", event.RecordID))
}

// ChangeListener subscribes to the change channel and invokes a
// handler per event. It runs until the context is cancelled.
type ChangeListener struct {
	client  *redis.Client
	logger  *slog.Logger
	handler func(domain.ChangeEvent)
}

// NewChangeListener creates a new ChangeListener.
func NewChangeListener(client *redis.Client, logger *slog.Logger, handler func(domain.ChangeEvent)) *ChangeListener {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChangeListener{client: client, logger: logger, handler: handler}
}

// Listen consumes change events until the context is cancelled.
func (l *ChangeListener) Listen(ctx context.Context) error {
	sub := l.client.Subscribe(ctx, ChangeChannel)
	defer sub.Close()

	l.logger.Info("change listener started", slog.String("channel", ChangeChannel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("change listener shutting down")
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var event domain.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				l.logger.Error("malformed change event", slog.String("error", err.Error()))
				continue
			}

			l.handler(event)
		}
	}
}
