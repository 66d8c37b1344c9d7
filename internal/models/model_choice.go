package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ModelChoice int

const (
	GeminiFlash ModelChoice = iota
	GeminiFlashLite
	GeminiFlashLatest
	Gemma
)

const DefaultModel = GeminiFlash

var modelIDs = [...]string{
	GeminiFlash:       "gemini-2.5-flash",
	GeminiFlashLite:   "gemini-flash-lite-latest",
	GeminiFlashLatest: "gemini-flash-latest",
	Gemma:             "gemma-3-27b-it",
}

var modelNames = [...]string{
	GeminiFlash:       "gemini-flash",
	GeminiFlashLite:   "gemini-flash-lite",
	GeminiFlashLatest: "gemini-flash-latest",
	Gemma:             "gemma",
}

var modelLabels = [...]string{
	GeminiFlash:       "GeminiFlash",
	GeminiFlashLite:   "GeminiFlashLite",
	GeminiFlashLatest: "GeminiFlashLatest",
	Gemma:             "Gemma",
}

// ModelInfo describes a selectable model for listings.
type ModelInfo struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// IsValid reports whether m is one of the known selectors.
func (m ModelChoice) IsValid() bool {
	return m >= GeminiFlash && m <= Gemma
}

// ID returns the upstream model identifier.
func (m ModelChoice) ID() string {
	if !m.IsValid() {
		return ""
	}
	return modelIDs[m]
}

func (m ModelChoice) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("ModelChoice(%d)", int(m))
	}
	return modelNames[m]
}

// ValidModelOptions renders the accepted numeric selectors for error messages.
func ValidModelOptions() string {
	opts := make([]string, 0, len(modelLabels))
	for i, label := range modelLabels {
		opts = append(opts, fmt.Sprintf("%d (%s)", i, label))
	}
	return strings.Join(opts, ", ")
}

func ModelChoiceFromInt(n int) (ModelChoice, error) {
	m := ModelChoice(n)
	if !m.IsValid() {
		return 0, fmt.Errorf("invalid model selector %d, valid options: %s", n, ValidModelOptions())
	}
	return m, nil
}

// ParseModelChoice accepts a name, a numeric selector or a model id.
func ParseModelChoice(s string) (ModelChoice, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(key); err == nil {
		return ModelChoiceFromInt(n)
	}
	for i := range modelNames {
		if key == modelNames[i] || key == modelIDs[i] || key == strings.ToLower(modelLabels[i]) {
			return ModelChoice(i), nil
		}
	}
	return 0, fmt.Errorf("unknown model %q, valid options: %s", s, ValidModelOptions())
}

func ModelChoices() []ModelInfo {
	out := make([]ModelInfo, 0, len(modelIDs))
	for i := range modelIDs {
		out = append(out, ModelInfo{Value: i, Name: modelNames[i], ID: modelIDs[i]})
	}
	return out
}

func (m ModelChoice) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid model selector %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *ModelChoice) UnmarshalText(text []byte) error {
	parsed, err := ParseModelChoice(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalJSON accepts both 2 and "gemini-flash-latest".
func (m *ModelChoice) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, err := ModelChoiceFromInt(n)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("model must be a number or a string: %w", err)
	}
	return m.UnmarshalText([]byte(s))
}

// ModelOrDefault resolves an optional selector.
func ModelOrDefault(m *ModelChoice, fallback ModelChoice) ModelChoice {
	if m == nil {
		return fallback
	}
	return *m
}
