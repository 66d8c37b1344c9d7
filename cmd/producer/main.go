package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	red "github.com/povarna/generative-ai-agents/semantic-validator/internal/redis"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON ValidationRequest")
	input := flag.String("input", "", "Input to validate (alternative to -d)")
	inputType := flag.String("type", "", "Input type label, e.g. email or \"nama lengkap\"")
	model := flag.String("model", "", "Optional model selector (0-3 or name)")
	stream := flag.String("stream", "", "Stream name (defaults to STREAM_NAME)")
	flag.Parse()

	if *data == "" && *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -input <text> -type <label>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole("info")

	payload, err := buildPayload(*data, *input, *inputType, *model)
	if err != nil {
		log.Error().Err(err).Msg("invalid request")
		os.Exit(1)
	}

	if err := run(payload, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildPayload(data, input, inputType, model string) ([]byte, error) {
	if data != "" {
		var req models.ValidationRequest
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return nil, err
		}
		return []byte(data), nil
	}

	req := models.ValidationRequest{Input: input, InputType: inputType}
	if model != "" {
		choice, err := models.ParseModelChoice(model)
		if err != nil {
			return nil, err
		}
		req.Model = &choice
	}
	return json.Marshal(req)
}

func run(payload []byte, stream string) error {
	_ = godotenv.Load()

	cfg, err := setup.LoadConfig()
	if err != nil {
		return err
	}
	if stream == "" {
		stream = cfg.StreamName
	}
	if stream == "" {
		return errors.New("stream name is empty")
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.NewPublisher(client, stream).PublishRaw(ctx, payload)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Msg("Published successfully!")
	return nil
}
