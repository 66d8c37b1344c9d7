package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var errStopped = errors.New("batch stopped after a failed record")

type Validator interface {
	Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult
	ExecuteSyntax(req models.ValidationRequest) models.ValidationResult
}

type Options struct {
	Workers         int
	ContinueOnError bool
	// DryRun applies only the syntax rules.
	DryRun bool
}

type Processor struct {
	validator Validator
	opts      Options
	logger    *zerolog.Logger

	mu  sync.Mutex
	err error
}

func NewProcessor(validator Validator, opts Options, logger *zerolog.Logger) *Processor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Processor{
		validator: validator,
		opts:      opts,
		logger:    logger,
	}
}

// Process validates records with at most Workers in flight. Output order is
// not preserved. Unparseable records become invalid_request results.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.ValidationResult {
	out := make(chan models.ValidationResult, p.opts.Workers)

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.opts.Workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				result := p.processOne(gctx, record)
				select {
				case out <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
				if result.Failed() && !p.opts.ContinueOnError {
					return errStopped
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			p.setErr(err)
			p.logger.Warn().Err(err).Msg("Batch processing interrupted")
		}
	}()

	return out
}

// Err reports why processing stopped early, once the result channel is drained.
func (p *Processor) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Processor) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) models.ValidationResult {
	if record.Error != nil {
		return models.ValidationResult{
			RequestID: record.Request.RequestID,
			Error:     record.Error.Error(),
			ErrorKind: models.ErrorKindInvalidRequest,
		}
	}
	if p.opts.DryRun {
		return p.validator.ExecuteSyntax(record.Request)
	}
	return p.validator.Execute(ctx, record.Request)
}
