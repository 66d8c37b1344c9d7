package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/batch"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup finishes before the process exits.
func run() int {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole("info")

	input := flag.String("input", "", "Input JSONL file path, '-' for stdin")
	output := flag.String("output", "", "Output file path (stdout when empty)")
	format := flag.String("format", batch.FormatJSONL, "Output format. Supported formats: 'jsonl', 'summary'")
	summary := flag.String("summary", "", "Optional separate summary file")
	workers := flag.Int("workers", 5, "Concurrent validation workers")
	continueOnError := flag.Bool("continue-on-error", true, "Continue when a record fails to validate")
	dryRun := flag.Bool("dry-run", false, "Run syntax checks only, no LLM calls")
	validate := flag.Bool("validate", false, "Agreement mode: compare verdicts with expected_valid labels")
	threshold := flag.Float64("agreement-threshold", 0.8, "Minimum agreement rate for -validate")

	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}
	formatValidator(*format)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg, err := setup.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = logger.NewConsole(cfg.LogLevel)

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	if deps.ConfigErr != nil && !*dryRun {
		log.Fatal().Err(deps.ConfigErr).Msg("Semantic validation unavailable, use -dry-run for syntax checks only")
	}

	records := readRecords(ctx, *input, deps.Logger)
	log.Info().Int("total", len(records)).Msg("Input file parsed")

	opts := batch.Options{
		Workers:         *workers,
		ContinueOnError: *continueOnError,
		DryRun:          *dryRun,
	}

	if *validate {
		return runAgreementMode(ctx, records, deps, opts, *threshold)
	}

	outputFile, closeOutput := openOutput(*output)
	defer closeOutput()

	writer, err := batch.NewWriter(outputFile, *format, deps.Aggregator, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}

	processor := batch.NewProcessor(deps.Executor, opts, deps.Logger)

	var summaryWriter *batch.SummaryWriter
	if *summary != "" {
		sw, err := batch.NewWriter(io.Discard, batch.FormatSummary, deps.Aggregator, deps.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create summary writer")
		}
		summaryWriter = sw.(*batch.SummaryWriter)
	}

	validCount, invalidCount, errorCount := 0, 0, 0
	for result := range processor.Process(ctx, records) {
		switch {
		case result.Failed():
			errorCount++
		case result.Valid:
			validCount++
		default:
			invalidCount++
		}

		if err := writer.Write(result); err != nil {
			log.Error().Err(err).Str("request_id", result.RequestID).Msg("Failed to write result")
		}
		if summaryWriter != nil {
			_ = summaryWriter.Write(result)
		}
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to flush output")
	}

	if summaryWriter != nil {
		writeSummary(*summary, summaryWriter)
	}

	log.Info().
		Int("valid", validCount).
		Int("invalid", invalidCount).
		Int("errors", errorCount).
		Dur("duration", time.Since(startTime)).
		Msg("Processing complete")

	if err := processor.Err(); err != nil {
		log.Error().Err(err).Msg("Batch processing stopped early")
		return 1
	}
	return 0
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

func formatValidator(format string) {
	validFormats := map[string]bool{batch.FormatJSONL: true, batch.FormatSummary: true}
	if !validFormats[format] {
		log.Fatal().
			Str("format", format).
			Msg("Invalid format. Supported: jsonl, summary")
	}
}

func readRecords(ctx context.Context, path string, logger *zerolog.Logger) []batch.InputRecord {
	var source io.Reader
	if path == "-" {
		source = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("Failed to open input file")
		}
		defer f.Close()
		source = f
		log.Info().Str("file", path).Msg("Reading input file")
	}

	var records []batch.InputRecord
	for record := range batch.NewReader(source, logger).ReadAll(ctx) {
		records = append(records, record)
	}
	return records
}

func openOutput(path string) (io.Writer, func()) {
	if path == "" {
		log.Info().Msg("Writing to stdout")
		return os.Stdout, func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to create output file")
	}
	log.Info().Str("file", path).Msg("Writing to output file")
	return f, func() { _ = f.Close() }
}

func writeSummary(path string, sw *batch.SummaryWriter) {
	data, err := json.MarshalIndent(sw.Summary(), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode summary")
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to write summary file")
		return
	}
	log.Info().Str("file", path).Msg("Summary written")
}

func runAgreementMode(ctx context.Context, records []batch.InputRecord, deps *setup.Dependencies, opts batch.Options, threshold float64) int {
	log.Info().Msg("Agreement mode enabled")

	expected := make(map[string]bool, len(records))
	missing := 0
	for i := range records {
		record := &records[i]
		if record.Error != nil || record.Expected == nil {
			log.Error().Int("line", record.LineNumber).Msg("Record missing expected_valid")
			missing++
			continue
		}
		if record.Request.RequestID == "" {
			record.Request.RequestID = fmt.Sprintf("line-%d", record.LineNumber)
		}
		expected[record.Request.RequestID] = *record.Expected
	}

	if missing > 0 {
		log.Fatal().
			Int("missing", missing).
			Msg("Agreement mode requires every record to carry 'expected_valid'")
	}

	opts.ContinueOnError = true
	processor := batch.NewProcessor(deps.Executor, opts, deps.Logger)

	var pairs []batch.AnnotationPair
	failed := 0
	for result := range processor.Process(ctx, records) {
		want, ok := expected[result.RequestID]
		if !ok {
			log.Warn().Str("request_id", result.RequestID).Msg("No expected label found for result")
			continue
		}
		if result.Failed() {
			log.Warn().Str("request_id", result.RequestID).Str("error", result.Error).Msg("Record skipped, no verdict")
			failed++
			continue
		}
		pairs = append(pairs, batch.AnnotationPair{
			RequestID: result.RequestID,
			Expected:  want,
			Actual:    result.Valid,
		})
	}

	agreement, err := batch.CheckAgreement(pairs, threshold)
	if err != nil {
		log.Fatal().Err(err).Msg("Agreement check failed")
	}

	data, err := json.MarshalIndent(agreement, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal agreement result")
	}
	fmt.Println(string(data))

	status := "PASSED"
	if !agreement.Passed {
		status = "FAILED"
	}
	log.Info().
		Int("records", agreement.TotalRecords).
		Int("skipped", failed).
		Float64("agreement_rate", agreement.AgreementRate).
		Int("false_accepts", agreement.FalseAccepts).
		Int("false_rejects", agreement.FalseRejects).
		Float64("threshold", threshold).
		Str("status", status).
		Str("interpretation", agreement.Interpretation).
		Msg("Agreement check complete")

	if !agreement.Passed {
		log.Error().Msg("Review the prompt catalog (PROMPTS_CONFIG_PATH) and re-run agreement mode")
		return 1
	}
	return 0
}
