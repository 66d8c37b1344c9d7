package llm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// BreakerClient fails fast while a model keeps failing at the transport or 5xx level.
// It never retries; an open breaker surfaces as a TransportError.
type BreakerClient struct {
	next     LLMClient
	settings BreakerSettings
	logger   *zerolog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func NewBreakerClient(next LLMClient, settings BreakerSettings, logger *zerolog.Logger) *BreakerClient {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}
	if settings.OpenTimeout == 0 {
		settings.OpenTimeout = 30 * time.Second
	}
	return &BreakerClient{
		next:     next,
		settings: settings,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (c *BreakerClient) InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error) {
	cb := c.breaker(request.Model)

	res, err := cb.Execute(func() (interface{}, error) {
		return c.next.InvokeModel(ctx, request)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &TransportError{Model: request.Model, Err: err}
	}
	if err != nil {
		return nil, err
	}
	return res.(*LLMResponse), nil
}

// State exposes the breaker state for a model, mainly for health output.
func (c *BreakerClient) State(model string) gobreaker.State {
	return c.breaker(model).State()
}

func (c *BreakerClient) breaker(model string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[model]; ok {
		return cb
	}
	maxFailures := c.settings.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        model,
		MaxRequests: 1,
		Timeout:     c.settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn().
				Str("model", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("llm circuit breaker state changed")
		},
	})
	c.breakers[model] = cb
	return cb
}

// countsAsSuccess treats rejections the provider made on purpose (4xx, quota) as healthy replies.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return false
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return !upstreamErr.ServerSide()
	}
	return true
}
