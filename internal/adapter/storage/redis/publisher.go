package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventChannel is the pub/sub channel carrying marketplace notifications.
const EventChannel = "marketplace.events"

// Publisher implements ports.EventPublisher over Redis pub/sub. Events are
// fire-and-forget: subscribers that are offline miss them, which matches the
// best-effort notification contract.
type Publisher struct {
	client  *goredis.Client
	channel string
}

// NewPublisher creates a new Publisher on the default event channel.
func NewPublisher(client *goredis.Client) *Publisher {
	return &Publisher{
		client:  client,
		channel: EventChannel,
	}
}

// Publish serializes the event as JSON and publishes it.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
