package llm

import (
	"context"
)

// UnavailableClient stands in when the provider client could not be built.
// Every call fails with the same ConfigError.
type UnavailableClient struct {
	err *ConfigError
}

func NewUnavailableClient(cause error) *UnavailableClient {
	return &UnavailableClient{err: &ConfigError{Err: cause}}
}

func (c *UnavailableClient) InvokeModel(_ context.Context, _ LLMRequest) (*LLMResponse, error) {
	return nil, c.err
}
