package aggregator

import (
	"time"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
)

// Aggregator folds validation results into a Summary.
type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

func (a *Aggregator) Aggregate(results []models.ValidationResult) models.Summary {
	summary := models.Summary{
		Total:      len(results),
		ByStage:    map[models.Stage]int{},
		ByCategory: map[string]int{},
		ByError:    map[models.ErrorKind]int{},
	}

	if len(results) == 0 {
		return summary
	}

	var total time.Duration
	for _, r := range results {
		total += r.Duration
		summary.ByCategory[r.Category]++
		if r.Stage != "" {
			summary.ByStage[r.Stage]++
		}

		switch {
		case r.Failed():
			summary.Errors++
			summary.ByError[r.ErrorKind]++
		case r.Valid:
			summary.Valid++
		default:
			summary.Invalid++
		}
	}
	summary.AvgLatency = total / time.Duration(len(results))

	a.logger.
		Info().
		Int("total", summary.Total).
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Int("errors", summary.Errors).
		Dur("avg_latency", summary.AvgLatency).
		Msg("aggregation complete")
	return summary
}
