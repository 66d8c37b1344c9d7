package models

import (
	"time"
)

// Verdict is the {valid, message} outcome of either validation stage.
type Verdict struct {
	Valid   bool   `json:"valid" jsonschema:"whether the input is acceptable"`
	Message string `json:"message" jsonschema:"short explanation in Bahasa Indonesia"`
}

type Stage string

const (
	StageSyntax   Stage = "syntax"
	StageSemantic Stage = "semantic"
)

type ErrorKind string

const (
	ErrorKindQuotaExceeded  ErrorKind = "quota_exceeded"
	ErrorKindUpstream       ErrorKind = "upstream"
	ErrorKindTransport      ErrorKind = "transport"
	ErrorKindTimeout        ErrorKind = "timeout"
	ErrorKindConfig         ErrorKind = "config"
	ErrorKindInterpretation ErrorKind = "interpretation"
	ErrorKindInvalidRequest ErrorKind = "invalid_request"
)

// Input message
type ValidationRequest struct {
	RequestID string       `json:"request_id,omitempty" jsonschema:"optional caller supplied identifier"`
	Input     string       `json:"input" jsonschema:"the user input to validate"`
	InputType string       `json:"input_type" jsonschema:"free text label such as email or nama lengkap"`
	Model     *ModelChoice `json:"model,omitempty" jsonschema:"model selector: 0-3 or a model name"`
}

// Final output emitted by every adapter
type ValidationResult struct {
	RequestID string        `json:"request_id"`
	Valid     bool          `json:"valid"`
	Message   string        `json:"message"`
	Stage     Stage         `json:"stage,omitempty"`
	Category  string        `json:"category"`
	Model     string        `json:"model,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorKind ErrorKind     `json:"error_kind,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
}

// Failed reports whether the pipeline produced no verdict.
func (r ValidationResult) Failed() bool {
	return r.Error != ""
}

func (r ValidationResult) Verdict() Verdict {
	return Verdict{Valid: r.Valid, Message: r.Message}
}

type Summary struct {
	Total      int               `json:"total"`
	Valid      int               `json:"valid"`
	Invalid    int               `json:"invalid"`
	Errors     int               `json:"errors"`
	ByStage    map[Stage]int     `json:"by_stage"`
	ByCategory map[string]int    `json:"by_category"`
	ByError    map[ErrorKind]int `json:"by_error,omitempty"`
	AvgLatency time.Duration     `json:"avg_latency_ns"`
}
