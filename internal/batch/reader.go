package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

// InputRecord is one JSONL line. Error is set when the line could not be decoded.
type InputRecord struct {
	LineNumber int
	Request    models.ValidationRequest
	// Expected is an optional human label used by agreement mode.
	Expected *bool
	Error    error
}

type line struct {
	models.ValidationRequest
	Expected *bool `json:"expected_valid,omitempty"`
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams records until EOF or ctx is cancelled. Blank lines are skipped.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			var l line
			if err := json.Unmarshal([]byte(text), &l); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
				r.logger.Warn().Err(err).Int("line", lineNumber).Msg("Failed to parse record")
			} else {
				record.Request = l.ValidationRequest
				record.Expected = l.Expected
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("Failed to read input")
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: err}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}
