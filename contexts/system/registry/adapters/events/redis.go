// Package events carries registry change notifications between processes
// over Redis pub/sub. The payload is irrelevant; receipt alone triggers a
// full snapshot reload, so lost messages only delay convergence until the
// next mutation.
package events

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Channel is the pub/sub channel registry notifications travel on.
const Channel = "registry.reload"

// RedisNotifier implements ports.ReloadNotifier over Redis pub/sub.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) NotifyReload(ctx context.Context) error {
	return n.client.Publish(ctx, Channel, "reload").Err()
}

// Subscriber listens for notifications and invokes the reload callback for
// each one. Run blocks until the context is cancelled.
type Subscriber struct {
	client *redis.Client
	reload func(context.Context) error
	logger *slog.Logger
}

func NewSubscriber(client *redis.Client, reload func(context.Context) error, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{client: client, reload: reload, logger: logger}
}

func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, Channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			if err := s.reload(ctx); err != nil {
				s.logger.Error("registry reload after notification failed",
					"event", "registry_reload_failed",
					"module", "system/registry",
					"error", err.Error(),
				)
			}
		}
	}
}
