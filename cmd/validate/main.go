package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/executor"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(runMain())
}

// runMain returns the exit code: 0 valid, 3 invalid, 1 failure, 2 usage.
func runMain() int {
	input := flag.String("input", "", "Input to validate")
	inputType := flag.String("type", "", "Input type label, e.g. email or \"nama lengkap\"")
	model := flag.String("model", "", "Model selector, 0-3 or name. Options: "+models.ValidModelOptions())
	syntaxOnly := flag.Bool("syntax-only", false, "Run local syntax checks only")
	async := flag.Bool("async", false, "Use the asynchronous entry point")
	flag.Parse()

	if *input == "" || *inputType == "" {
		fmt.Fprintln(os.Stderr, "Usage: validate -input <text> -type <label> [-model <n>] [-syntax-only] [-async]")
		flag.PrintDefaults()
		return 2
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	_ = godotenv.Load()

	cfg, err := setup.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	// stdout carries the verdict
	log.Logger = logger.NewConsole(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("Failed to wire dependencies")
		return 1
	}

	choice := deps.Executor.DefaultModel()
	if *model != "" {
		choice, err = models.ParseModelChoice(*model)
		if err != nil {
			log.Error().Err(err).Msg("Invalid model")
			return 2
		}
	}

	verdict, err := run(ctx, deps.Executor, *input, *inputType, choice, *syntaxOnly, *async)
	if err != nil {
		log.Error().Err(err).Str("kind", string(executor.ErrorKindOf(err))).Msg("Validation failed")
		return 1
	}

	out, err := json.Marshal(verdict)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode verdict")
		return 1
	}
	fmt.Println(string(out))
	if !verdict.Valid {
		return 3
	}
	return 0
}

func run(ctx context.Context, exec *executor.Executor, input, label string, model models.ModelChoice, syntaxOnly, async bool) (models.Verdict, error) {
	switch {
	case syntaxOnly:
		return exec.CheckSyntax(input, label), nil
	case async:
		outcome := <-exec.ValidateAsync(ctx, input, label, model)
		return outcome.Verdict, outcome.Err
	default:
		return exec.Validate(ctx, input, label, model)
	}
}
