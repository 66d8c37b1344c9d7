package stream

import (
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConfig(provider string, redisConfig *redis.RedisStreamConfig) *StreamConfig {
	return &StreamConfig{
		Provider:    provider,
		RedisConfig: redisConfig,
	}
}
