package setup

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

type Config struct {
	GoogleAPIKey   string             `env:"GOOGLE_API_KEY"`
	GeminiBaseURL  string             `env:"GEMINI_BASE_URL"`
	RequestTimeout time.Duration      `env:"LLM_REQUEST_TIMEOUT" envDefault:"60s"`
	DefaultModel   models.ModelChoice `env:"DEFAULT_MODEL" envDefault:"gemini-flash"`

	CircuitBreaker  bool          `env:"LLM_CIRCUIT_BREAKER" envDefault:"false"`
	BreakerFailures uint32        `env:"LLM_CIRCUIT_BREAKER_FAILURES" envDefault:"5"`
	BreakerTimeout  time.Duration `env:"LLM_CIRCUIT_BREAKER_TIMEOUT" envDefault:"30s"`

	PromptsConfigPath string `env:"PROMPTS_CONFIG_PATH"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	Port              string `env:"PORT" envDefault:"18081"`

	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	StreamName     string `env:"STREAM_NAME" envDefault:"validation-requests"`
	StreamGroup    string `env:"STREAM_GROUP" envDefault:"semantic-validator"`
	StreamConsumer string `env:"STREAM_CONSUMER" envDefault:"validator-1"`
	ResultsStream  string `env:"STREAM_RESULTS" envDefault:"validation-results"`
}

// LoadConfig parses the process environment.
func LoadConfig() (*Config, error) {
	return parseConfig(env.Options{})
}

// LoadConfigFrom parses an explicit set of variables instead of the process environment.
func LoadConfigFrom(vars map[string]string) (*Config, error) {
	return parseConfig(env.Options{Environment: vars})
}

func parseConfig(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
