package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
)

//go:embed prompts.yaml
var defaultPrompts []byte

const defaultPreamble = "Note: This input has passed basic syntactic validation. " +
	"Focus on semantic validity, reasonableness, and relevant business rules. " +
	"Reject meaningless, dummy, or random input."

// LoadPromptsConfig reads PROMPTS_CONFIG_PATH when set, otherwise the embedded catalog.
func LoadPromptsConfig() (*PromptsConfig, error) {
	return LoadPromptsConfigFrom(os.Getenv("PROMPTS_CONFIG_PATH"))
}

// LoadPromptsConfigFrom reads the catalog at path. An empty path selects the embedded catalog.
func LoadPromptsConfigFrom(path string) (*PromptsConfig, error) {
	if path == "" {
		return ParsePromptsConfig(defaultPrompts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParsePromptsConfig(data)
}

// DefaultPromptsConfig returns the embedded catalog. It panics only if the embedded file is broken.
func DefaultPromptsConfig() *PromptsConfig {
	cfg, err := ParsePromptsConfig(defaultPrompts)
	if err != nil {
		panic(fmt.Sprintf("embedded prompts.yaml: %v", err))
	}
	return cfg
}

func ParsePromptsConfig(data []byte) (*PromptsConfig, error) {
	var cfg PromptsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *PromptsConfig) {
	if strings.TrimSpace(cfg.Preamble) == "" {
		cfg.Preamble = defaultPreamble
	}
	for i := range cfg.Templates {
		cfg.Templates[i].Category = strings.ToLower(strings.TrimSpace(cfg.Templates[i].Category))
	}
}

func (c *PromptsConfig) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Templates))

	for i, t := range c.Templates {
		if t.Category == "" {
			errs = append(errs, fmt.Errorf("template %d: missing category", i))
			continue
		}
		if _, err := category.Parse(t.Category); err != nil {
			errs = append(errs, fmt.Errorf("template %d: %w", i, err))
		}
		if seen[t.Category] {
			errs = append(errs, fmt.Errorf("duplicate template for category %q", t.Category))
		}
		seen[t.Category] = true

		if strings.TrimSpace(t.Prompt) == "" {
			errs = append(errs, fmt.Errorf("template %q: empty prompt", t.Category))
			continue
		}
		if _, err := template.New(t.Category).Option("missingkey=error").Parse(t.Prompt); err != nil {
			errs = append(errs, fmt.Errorf("template %q: invalid prompt template: %w", t.Category, err))
		}
	}

	if !seen[category.Generic.String()] {
		errs = append(errs, errors.New("missing generic template"))
	}
	return errors.Join(errs...)
}
