package redis

import (
	"errors"
	"time"
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	Group         string
	ConsumerName  string
	// ResultStream receives one entry per processed request. Empty disables publishing.
	ResultStream string
	// Block is how long one XREADGROUP waits for new entries.
	Block time.Duration
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, group string, consumerName string, resultStream string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		Group:         group,
		ConsumerName:  consumerName,
		ResultStream:  resultStream,
		Block:         2 * time.Second,
	}
}

// Validate reports the first missing consumer group setting.
func (c *RedisStreamConfig) Validate() error {
	switch {
	case c.RedisAddr == "":
		return errors.New("redis address is required")
	case c.Stream == "":
		return errors.New("request stream name is required")
	case c.Group == "":
		return errors.New("consumer group is required")
	case c.ConsumerName == "":
		return errors.New("consumer name is required")
	}
	return nil
}
