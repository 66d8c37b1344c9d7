package executor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/interpreter"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

// Execute validates one request and reports it as a ValidationResult, the
// shape every adapter emits. Failures land in Error/ErrorKind.
func (e *Executor) Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult {
	now := time.Now()
	id := requestID(req)
	model := models.ModelOrDefault(req.Model, e.defaultModel)
	c := category.Resolve(req.InputType)

	e.logger.Info().
		Str("requestID", id).
		Str("category", c.String()).
		Str("model", model.ID()).
		Int("input_length", len([]rune(req.Input))).
		Msg("starting validation")

	result := models.ValidationResult{
		RequestID: id,
		Category:  c.String(),
		Model:     model.ID(),
	}

	verdict, stage, err := e.run(ctx, req.Input, req.InputType, c, model)
	result.Stage = stage
	result.Duration = time.Since(now)

	if err != nil {
		result.Error = err.Error()
		result.ErrorKind = ErrorKindOf(err)
		e.logger.Error().
			Err(err).
			Str("requestID", id).
			Str("error_kind", string(result.ErrorKind)).
			Msg("validation failed")
		return result
	}

	result.Valid = verdict.Valid
	result.Message = verdict.Message

	e.logger.Info().
		Str("requestID", id).
		Str("stage", string(stage)).
		Bool("valid", result.Valid).
		Dur("duration", result.Duration).
		Msg("validation complete")
	return result
}

// ExecuteSyntax is the dry-run form of Execute: local rules only.
func (e *Executor) ExecuteSyntax(req models.ValidationRequest) models.ValidationResult {
	now := time.Now()
	verdict := e.CheckSyntax(req.Input, req.InputType)
	return models.ValidationResult{
		RequestID: requestID(req),
		Valid:     verdict.Valid,
		Message:   verdict.Message,
		Stage:     models.StageSyntax,
		Category:  category.Resolve(req.InputType).String(),
		Duration:  time.Since(now),
	}
}

// ErrorKindOf classifies a semantic-stage failure.
func ErrorKindOf(err error) models.ErrorKind {
	var (
		quotaErr     *llm.QuotaExceededError
		configErr    *llm.ConfigError
		upstreamErr  *llm.UpstreamError
		transportErr *llm.TransportError
		parseErr     *interpreter.ParseError
	)
	switch {
	case errors.Is(err, ErrInvalidModel):
		return models.ErrorKindInvalidRequest
	case errors.As(err, &quotaErr):
		return models.ErrorKindQuotaExceeded
	case errors.As(err, &configErr):
		return models.ErrorKindConfig
	case errors.As(err, &upstreamErr):
		return models.ErrorKindUpstream
	case errors.As(err, &transportErr):
		if transportErr.Timeout() {
			return models.ErrorKindTimeout
		}
		return models.ErrorKindTransport
	case errors.Is(err, context.DeadlineExceeded):
		return models.ErrorKindTimeout
	case errors.Is(err, context.Canceled):
		return models.ErrorKindTransport
	case errors.As(err, &parseErr):
		return models.ErrorKindInterpretation
	default:
		return models.ErrorKindUpstream
	}
}

func requestID(req models.ValidationRequest) string {
	if req.RequestID != "" {
		return req.RequestID
	}
	return uuid.NewString()
}
