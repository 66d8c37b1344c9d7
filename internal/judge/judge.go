package judge

import (
	"context"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

// Request is one semantic check: the raw input, the caller's label and the
// category it already resolved to.
type Request struct {
	Input    string
	Label    string
	Category category.Category
	Model    models.ModelChoice
}

type Judge interface {
	Evaluate(ctx context.Context, req Request) (models.Verdict, error)
}
