package config

import (
	"errors"
	"strings"
)

var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY not set")

// APIConfig holds the upstream credential. It is built once at startup and never mutated.
type APIConfig struct {
	apiKey string
}

func NewAPIConfig(apiKey string) (*APIConfig, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &APIConfig{apiKey: key}, nil
}

func (c *APIConfig) APIKey() string {
	return c.apiKey
}

// String keeps the key out of logs.
func (c *APIConfig) String() string {
	if len(c.apiKey) <= 4 {
		return "APIConfig{****}"
	}
	return "APIConfig{****" + c.apiKey[len(c.apiKey)-4:] + "}"
}
