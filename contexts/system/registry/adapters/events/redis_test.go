package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"janus/contexts/system/registry/adapters/events"
)

func TestNotificationTriggersReload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	reloaded := make(chan struct{}, 1)
	subscriber := events.NewSubscriber(client, func(context.Context) error {
		select {
		case reloaded <- struct{}{}:
		default:
		}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- subscriber.Run(ctx) }()

	notifier := events.NewRedisNotifier(client)

	// The subscription registers asynchronously; keep publishing until the
	// reload callback observes a message.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-reloaded:
			cancel()
			<-done
			return
		case <-deadline:
			t.Fatalf("reload was never triggered by a notification")
		case <-ticker.C:
			if err := notifier.NotifyReload(ctx); err != nil {
				t.Fatalf("notify failed: %v", err)
			}
		}
	}
}
