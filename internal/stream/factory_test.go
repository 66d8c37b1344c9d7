package stream

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream/redis"
	"github.com/rs/zerolog"
)

type nopValidator struct{}

func (nopValidator) Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult {
	return models.ValidationResult{RequestID: req.RequestID}
}

func TestNewStreamConsumer(t *testing.T) {
	server := miniredis.RunT(t)
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		cfg     *StreamConfig
		wantErr bool
	}{
		{
			name: "default provider",
			cfg:  NewStreamConfig("", redis.NewRedisStreamConfig(server.Addr(), "", "requests", "group", "c1", "results")),
		},
		{
			name:    "missing redis config",
			cfg:     NewStreamConfig("redis", nil),
			wantErr: true,
		},
		{
			name:    "missing group",
			cfg:     NewStreamConfig("redis", redis.NewRedisStreamConfig(server.Addr(), "", "requests", "", "c1", "results")),
			wantErr: true,
		},
		{
			name:    "unsupported provider",
			cfg:     NewStreamConfig("kafka", nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, err := NewStreamConsumer(context.Background(), tt.cfg, nopValidator{}, &logger)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStreamConsumer failed: %v", err)
			}
			if err := consumer.Setup(context.Background()); err != nil {
				t.Fatalf("Setup failed: %v", err)
			}
			_ = consumer.Stop()
		})
	}
}
