package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel carries broadcast notifications from the admin panel to every
// connected client.
const Channel = "push:broadcast"

// Gateway publishes display notifications over redis pub/sub. A nil redis
// client degrades to a no-op so the rest of the app keeps working without
// push delivery.
type Gateway struct {
	rdb *redis.Client
}

func NewGateway(rdb *redis.Client) *Gateway {
	return &Gateway{rdb: rdb}
}

func (g *Gateway) Publish(ctx context.Context, n DisplayNotification) error {
	if g.rdb == nil {
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("push: marshal notification: %w", err)
	}

	return g.rdb.Publish(ctx, Channel, payload).Err()
}

// Subscribe opens a pub/sub subscription on the broadcast channel. The
// caller owns the subscription and must close it.
func (g *Gateway) Subscribe(ctx context.Context) (*redis.PubSub, error) {
	if g.rdb == nil {
		return nil, fmt.Errorf("push: redis is not configured")
	}

	pubsub := g.rdb.Subscribe(ctx, Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("push: subscribe: %w", err)
	}
	return pubsub, nil
}
