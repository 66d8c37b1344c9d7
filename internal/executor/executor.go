package executor

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/judge"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/prechecks"
	"github.com/rs/zerolog"
)

// SyntaxChecker runs the local, network-free rules
type SyntaxChecker interface {
	CheckCategory(input, label string, c category.Category) *prechecks.Rejection
}

// SemanticJudge asks the LLM for a plausibility verdict
type SemanticJudge interface {
	Evaluate(ctx context.Context, req judge.Request) (models.Verdict, error)
}

// ErrInvalidModel rejects a ModelChoice outside the known selectors.
var ErrInvalidModel = errors.New("invalid model selector")

// SyntaxPassMessage is returned by syntax-only checks that accept the input.
const SyntaxPassMessage = "Lolos validasi sintaksis."

type Executor struct {
	syntax       SyntaxChecker
	judge        SemanticJudge
	defaultModel models.ModelChoice
	logger       *zerolog.Logger
}

func NewExecutor(
	syntax SyntaxChecker,
	judge SemanticJudge,
	defaultModel models.ModelChoice,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		syntax:       syntax,
		judge:        judge,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Outcome is what ValidateAsync delivers.
type Outcome struct {
	Verdict models.Verdict
	Err     error
}

func (e *Executor) DefaultModel() models.ModelChoice {
	return e.defaultModel
}

// Validate runs the syntax stage and, if it passes, the semantic stage.
// A syntax rejection is a valid=false verdict with a nil error.
func (e *Executor) Validate(ctx context.Context, input, label string, model models.ModelChoice) (models.Verdict, error) {
	verdict, _, err := e.run(ctx, input, label, category.Resolve(label), model)
	return verdict, err
}

// ValidateAsync runs Validate on its own goroutine. The channel yields
// exactly one Outcome and is then closed.
func (e *Executor) ValidateAsync(ctx context.Context, input, label string, model models.ModelChoice) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		verdict, err := e.Validate(ctx, input, label, model)
		out <- Outcome{Verdict: verdict, Err: err}
	}()
	return out
}

// CheckSyntax applies only the local rules. It never touches the network.
func (e *Executor) CheckSyntax(input, label string) models.Verdict {
	if rejection := e.syntax.CheckCategory(input, label, category.Resolve(label)); rejection != nil {
		return models.Verdict{Valid: false, Message: rejection.Message}
	}
	return models.Verdict{Valid: true, Message: SyntaxPassMessage}
}

func (e *Executor) run(ctx context.Context, input, label string, c category.Category, model models.ModelChoice) (models.Verdict, models.Stage, error) {
	if !model.IsValid() {
		return models.Verdict{}, "", fmt.Errorf("%w %d, valid options: %s", ErrInvalidModel, int(model), models.ValidModelOptions())
	}

	if rejection := e.syntax.CheckCategory(input, label, c); rejection != nil {
		e.logger.Debug().
			Str("category", c.String()).
			Str("reason", string(rejection.Reason)).
			Msg("syntax check rejected input")
		return models.Verdict{Valid: false, Message: rejection.Message}, models.StageSyntax, nil
	}

	verdict, err := e.judge.Evaluate(ctx, judge.Request{
		Input:    input,
		Label:    label,
		Category: c,
		Model:    model,
	})
	return verdict, models.StageSemantic, err
}
