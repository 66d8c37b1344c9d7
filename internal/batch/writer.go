package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/aggregator"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

type Writer interface {
	Write(result models.ValidationResult) error
	Close() error
}

func NewWriter(w io.Writer, format string, agg *aggregator.Aggregator, logger *zerolog.Logger) (Writer, error) {
	switch format {
	case FormatJSONL:
		return &jsonlWriter{enc: json.NewEncoder(w)}, nil
	case FormatSummary:
		return &SummaryWriter{out: w, agg: agg, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s, %s)", format, FormatJSONL, FormatSummary)
	}
}

type jsonlWriter struct {
	enc *json.Encoder
}

func (w *jsonlWriter) Write(result models.ValidationResult) error {
	return w.enc.Encode(result)
}

func (w *jsonlWriter) Close() error {
	return nil
}

// SummaryWriter buffers results and writes one aggregated Summary on Close.
type SummaryWriter struct {
	out     io.Writer
	agg     *aggregator.Aggregator
	results []models.ValidationResult
	logger  *zerolog.Logger
}

func (w *SummaryWriter) Write(result models.ValidationResult) error {
	w.results = append(w.results, result)
	return nil
}

func (w *SummaryWriter) Summary() models.Summary {
	return w.agg.Aggregate(w.results)
}

func (w *SummaryWriter) Close() error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	w.logger.Debug().Int("results", len(w.results)).Msg("Summary written")
	return nil
}
