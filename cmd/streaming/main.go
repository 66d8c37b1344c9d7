package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := setup.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log.Logger = logger.New(cfg.LogLevel)
	appLogger := log.Logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	streamCfg := stream.NewStreamConfig(
		os.Getenv("STREAM_PROVIDER"),
		redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.StreamName,
			cfg.StreamGroup,
			cfg.StreamConsumer,
			cfg.ResultsStream,
		),
	)

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}
	defer consumer.Stop()

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	log.Info().
		Str("stream", cfg.StreamName).
		Str("group", cfg.StreamGroup).
		Str("results", cfg.ResultsStream).
		Msg("Consuming validation requests")

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error().Err(err).Msg("Consumer stopped with error")
	}

	log.Info().Msg("Semantic Validator consumer stopped")
}
