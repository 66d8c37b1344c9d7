package stream

import (
	"context"
	"fmt"

	red "github.com/povarna/generative-ai-agents/semantic-validator/internal/redis"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream/redis"
	"github.com/rs/zerolog"
)

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	validator redis.Validator,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}
		if err := cfg.RedisConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid redis stream config: %w", err)
		}

		logger.Info().
			Str("provider", provider).
			Str("stream", cfg.RedisConfig.Stream).
			Str("results", cfg.RedisConfig.ResultStream).
			Msg("Creating stream consumer")

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
			logger,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, validator, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
