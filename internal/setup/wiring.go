package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/aggregator"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/config"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/executor"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/judge"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/prechecks"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/prompt"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Executor   *executor.Executor
	Aggregator *aggregator.Aggregator
	Logger     *zerolog.Logger
	// ConfigErr is set when the semantic stage cannot run. Syntax checks still work.
	ConfigErr error
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	promptsConfig, err := config.LoadPromptsConfigFrom(cfg.PromptsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts config: %w", err)
	}

	builder, err := prompt.NewBuilder(promptsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt templates: %w", err)
	}

	llmClient, configErr := createLLMClient(ctx, cfg, logger)
	if configErr != nil {
		logger.Error().Err(configErr).Msg("semantic validation disabled, only syntax checks will pass")
		llmClient = llm.NewUnavailableClient(configErr)
	}

	semanticJudge := judge.NewLLMJudge(builder, llmClient, logger)
	exec := executor.NewExecutor(prechecks.NewValidator(), semanticJudge, cfg.DefaultModel, logger)

	logger.Info().
		Str("default_model", cfg.DefaultModel.ID()).
		Bool("circuit_breaker", cfg.CircuitBreaker).
		Int("prompt_templates", len(promptsConfig.Templates)).
		Msg("validator wired")

	return &Dependencies{
		Executor:   exec,
		Aggregator: aggregator.NewAggregator(logger),
		Logger:     logger,
		ConfigErr:  configErr,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *Config, logger *zerolog.Logger) (llm.LLMClient, error) {
	apiConfig, err := config.NewAPIConfig(cfg.GoogleAPIKey)
	if err != nil {
		return nil, err
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  apiConfig.APIKey(),
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if !cfg.CircuitBreaker {
		return client, nil
	}
	return llm.NewBreakerClient(client, llm.BreakerSettings{
		MaxFailures: cfg.BreakerFailures,
		OpenTimeout: cfg.BreakerTimeout,
	}, logger), nil
}
