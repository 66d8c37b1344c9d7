package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

var (
	errMissingValid   = errors.New("field 'valid' missing or not a boolean")
	errMissingMessage = errors.New("field 'message' missing or not a string")
	errEmptyMessage   = errors.New("field 'message' is empty")
	errNotAnObject    = errors.New("expected a JSON object")
)

// Parse turns the first text part of the first candidate into a verdict.
// A bare object and a single-element array are treated the same.
func Parse(resp *llm.LLMResponse) (models.Verdict, error) {
	text, ok := extractText(resp)
	if !ok {
		return models.Verdict{}, &ParseError{Kind: KindExtractionFailed}
	}
	return ParseText(text)
}

// ParseText interprets raw model text. Exposed for callers that already hold
// the generated text.
func ParseText(text string) (models.Verdict, error) {
	cleaned := stripCodeFence(text)

	var p fastjson.Parser
	value, err := p.Parse(cleaned)
	if err != nil {
		return models.Verdict{}, &ParseError{Kind: KindMalformedJSON, Raw: cleaned, Err: err}
	}

	if value.Type() == fastjson.TypeArray {
		items, _ := value.Array()
		if len(items) == 0 {
			return models.Verdict{}, &ParseError{Kind: KindEmptyArray, Raw: cleaned}
		}
		value = items[0]
	}

	verdict, err := toVerdict(value)
	if err != nil {
		return models.Verdict{}, &ParseError{Kind: KindSchemaMismatch, Raw: cleaned, Err: err}
	}
	return verdict, nil
}

func extractText(resp *llm.LLMResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	parts := resp.Candidates[0].Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0], true
}

func toVerdict(v *fastjson.Value) (models.Verdict, error) {
	if v.Type() != fastjson.TypeObject {
		return models.Verdict{}, fmt.Errorf("%w, got %s", errNotAnObject, v.Type())
	}

	validField := v.Get("valid")
	if validField == nil {
		return models.Verdict{}, errMissingValid
	}
	valid, err := validField.Bool()
	if err != nil {
		return models.Verdict{}, errMissingValid
	}

	messageField := v.Get("message")
	if messageField == nil || messageField.Type() != fastjson.TypeString {
		return models.Verdict{}, errMissingMessage
	}
	message := strings.TrimSpace(string(messageField.GetStringBytes()))
	if message == "" {
		return models.Verdict{}, errEmptyMessage
	}

	return models.Verdict{Valid: valid, Message: message}, nil
}

// stripCodeFence removes a ```json ... ``` wrapper.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
