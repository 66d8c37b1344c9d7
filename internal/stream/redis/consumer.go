package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	payloadField = "payload"
	pendingBatch = 10
)

// Validator is the part of the executor the consumer drives.
type Validator interface {
	Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult
}

type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	block        time.Duration
	publisher    *Publisher
	validator    Validator
	logger       *zerolog.Logger

	// retryPending is set when an entry was left unacked. Only the Start
	// goroutine touches it.
	retryPending bool
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, validator Validator, logger *zerolog.Logger) *Consumer {
	block := cfg.Block
	if block <= 0 {
		block = 2 * time.Second
	}

	c := &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		block:        block,
		validator:    validator,
		logger:       logger,
	}
	if cfg.ResultStream != "" {
		c.publisher = NewPublisher(client, cfg.ResultStream)
	}
	return c
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	// entries delivered before a restart are still ours to finish
	c.retryPending = true

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if c.retryPending {
			c.retryPending = false
			if _, err := c.reclaim(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.retryPending = true
				c.logger.Error().Err(err).Msg("Failed to read pending entries")
			}
		}

		if _, err := c.poll(ctx, c.block); err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}
			c.logger.Error().Err(err).Msg("Failed to read from stream")
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// poll reads at most one new entry and processes it. A negative block returns
// immediately when the stream is empty.
func (c *Consumer) poll(ctx context.Context, block time.Duration) (int, error) {
	return c.read(ctx, ">", 1, block)
}

// reclaim re-processes entries delivered to this consumer but never acked,
// e.g. after a failed result publish or a crash.
func (c *Consumer) reclaim(ctx context.Context) (int, error) {
	n, err := c.read(ctx, "0", pendingBatch, -1)
	if n > 0 {
		c.logger.Info().Int("entries", n).Msg("Reprocessed pending entries")
	}
	return n, err
}

func (c *Consumer) read(ctx context.Context, id string, count int64, block time.Duration) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.groupID,
		Consumer: c.consumerName,
		Streams:  []string{c.stream, id},
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// timeout, no message -> loop again
			return 0, nil
		}
		return 0, err
	}

	processed := 0
	for _, s := range streams {
		for _, msg := range s.Messages {
			c.process(ctx, msg)
			processed++
		}
	}
	return processed, nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var request models.ValidationRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if request.RequestID == "" {
		request.RequestID = msg.ID
	}

	result := c.validator.Execute(ctx, request)

	c.logger.Info().
		Str("id", msg.ID).
		Str("requestID", result.RequestID).
		Bool("valid", result.Valid).
		Str("error_kind", string(result.ErrorKind)).
		Msg("Validation complete")

	if c.publisher != nil {
		if _, err := c.publisher.Publish(ctx, result); err != nil {
			// left pending; reclaim picks it up on the next loop
			c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
			c.retryPending = true
			return
		}
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
