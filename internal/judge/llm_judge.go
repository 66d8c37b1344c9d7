package judge

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/interpreter"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
)

type PromptBuilder interface {
	BuildCategory(input, label string, c category.Category) string
}

// LLMJudge asks the model whether an input is semantically plausible for
// its category and interprets the reply as a verdict.
type LLMJudge struct {
	prompts   PromptBuilder
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewLLMJudge(prompts PromptBuilder, llmClient llm.LLMClient, logger *zerolog.Logger) *LLMJudge {
	return &LLMJudge{
		prompts:   prompts,
		llmClient: llmClient,
		logger:    logger,
	}
}

// Evaluate returns the model's verdict unchanged. Provider and interpretation
// failures are returned as errors and never turned into a verdict.
func (j *LLMJudge) Evaluate(ctx context.Context, req Request) (models.Verdict, error) {
	now := time.Now()
	modelID := req.Model.ID()

	prompt := j.prompts.BuildCategory(req.Input, req.Label, req.Category)

	resp, err := j.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt: prompt,
		Model:  modelID,
	})
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("category", req.Category.String()).
			Str("model", modelID).
			Msg("LLM call failed")
		return models.Verdict{}, err
	}

	verdict, err := interpreter.Parse(resp)
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("category", req.Category.String()).
			Str("model", modelID).
			Msg("failed to interpret LLM response")
		return models.Verdict{}, err
	}

	j.logger.Info().
		Str("category", req.Category.String()).
		Str("model", modelID).
		Bool("valid", verdict.Valid).
		Dur("duration", time.Since(now)).
		Msg("judge completed")

	return verdict, nil
}
