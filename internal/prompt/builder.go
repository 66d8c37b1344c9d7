// Package prompt renders the per-category instructions sent to the semantic stage.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/config"
)

const fallbackPrompt = `Role: Strict Data Semantic Validator.
Task: Analyze the following user input which is claimed to be of type "%s".

Input to Validate: "%s"
Context Note: %s

Reject gibberish, placeholders and dummy data. The input must semantically match the intended type.
Respond ONLY with a raw JSON object. The "message" field MUST be in INDONESIAN (Bahasa Indonesia).
{
    "valid": true/false,
    "message": "Reason for validity or invalidity in Indonesian"
}`

type templateData struct {
	Preamble string
	Label    string
	Input    string
}

// Builder is immutable after construction and safe for concurrent use.
type Builder struct {
	preamble  string
	templates map[category.Category]*template.Template
}

func NewBuilder(cfg *config.PromptsConfig) (*Builder, error) {
	b := &Builder{
		preamble:  cfg.Preamble,
		templates: make(map[category.Category]*template.Template, len(cfg.Templates)),
	}
	for _, t := range cfg.Templates {
		c, err := category.Parse(t.Category)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(t.Category).Option("missingkey=error").Parse(t.Prompt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template for category %s: %w", t.Category, err)
		}
		b.templates[c] = tmpl
	}
	return b, nil
}

// Build resolves label and renders its prompt.
func (b *Builder) Build(input, label string) string {
	return b.BuildCategory(input, label, category.Resolve(label))
}

// BuildCategory always returns a non-empty prompt. Categories without a template use the generic one,
// and a template that fails to render falls back to a built-in prompt.
func (b *Builder) BuildCategory(input, label string, c category.Category) string {
	data := templateData{
		Preamble: b.preamble,
		Label:    EscapeQuotes(label),
		Input:    EscapeQuotes(input),
	}

	tmpl, ok := b.templates[c]
	if !ok {
		tmpl, ok = b.templates[category.Generic]
	}
	if ok {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err == nil && strings.TrimSpace(buf.String()) != "" {
			return buf.String()
		}
	}
	return fmt.Sprintf(fallbackPrompt, data.Label, data.Input, data.Preamble)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeQuotes keeps caller text from closing a quoted line of a prompt.
// Backslashes are escaped too, so a trailing `\` cannot eat the closing quote.
func EscapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
