package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher appends JSON payloads to a stream under the "payload" field.
type Publisher struct {
	client *redis.Client
	stream string
}

func NewPublisher(client *redis.Client, stream string) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
	}
}

func (p *Publisher) Stream() string {
	return p.stream
}

// Publish marshals v and returns the new entry id.
func (p *Publisher) Publish(ctx context.Context, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return p.PublishRaw(ctx, data)
}

// PublishRaw appends an already encoded payload.
func (p *Publisher) PublishRaw(ctx context.Context, payload []byte) (string, error) {
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{payloadField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add to stream %s: %w", p.stream, err)
	}
	return id, nil
}
