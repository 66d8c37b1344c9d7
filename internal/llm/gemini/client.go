// Package gemini implements llm.LLMClient on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
)

const DefaultTimeout = 60 * time.Second

var stopSequences = []string{"\n\n", "Input:", "Example:", "Note:"}

var safetyCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

type Config struct {
	APIKey string
	// BaseURL overrides the public endpoint, e.g. for a proxy or tests.
	BaseURL string
	// Timeout bounds a single generateContent call. Zero means DefaultTimeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	models *genai.Models
	logger *zerolog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{models: gc.Models, logger: logger}, nil
}

// InvokeModel sends one generateContent request. It performs no retries.
func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	start := time.Now()

	resp, err := c.models.GenerateContent(ctx, request.Model, genai.Text(request.Prompt), BuildConfig(request.Model))
	if err != nil {
		classified := classify(request.Model, err)
		c.logger.Error().
			Err(classified).
			Str("model", request.Model).
			Dur("duration", time.Since(start)).
			Msg("gemini request failed")
		return nil, classified
	}

	c.logger.Debug().
		Str("model", request.Model).
		Int("candidates", len(resp.Candidates)).
		Dur("duration", time.Since(start)).
		Msg("gemini request complete")

	return toLLMResponse(resp), nil
}

// BuildConfig always disables upstream safety blocking. JSON mode and the
// sampling parameters are only sent to gemini* models; Gemma rejects JSON mode.
func BuildConfig(model string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SafetySettings: make([]*genai.SafetySetting, 0, len(safetyCategories)),
	}
	for _, category := range safetyCategories {
		cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}

	if strings.HasPrefix(model, "gemini") {
		cfg.ResponseMIMEType = "application/json"
		cfg.Temperature = genai.Ptr[float32](0.1)
		cfg.TopK = genai.Ptr[float32](40)
		cfg.TopP = genai.Ptr[float32](0.8)
		cfg.StopSequences = append([]string(nil), stopSequences...)
	}
	return cfg
}

func classify(model string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return &llm.QuotaExceededError{Model: model}
		}
		return &llm.UpstreamError{Model: model, StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return &llm.TransportError{Model: model, Err: err}
}

func toLLMResponse(resp *genai.GenerateContentResponse) *llm.LLMResponse {
	out := &llm.LLMResponse{ModelVersion: resp.ModelVersion}
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		c := llm.Candidate{FinishReason: string(cand.FinishReason)}
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil {
					continue
				}
				c.Parts = append(c.Parts, part.Text)
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}
