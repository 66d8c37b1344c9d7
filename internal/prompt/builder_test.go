package prompt

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/config"
)

func newDefaultBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(config.DefaultPromptsConfig())
	if err != nil {
		t.Fatalf("NewBuilder() failed: %v", err)
	}
	return b
}

func TestBuild(t *testing.T) {
	b := newDefaultBuilder(t)

	tests := []struct {
		name     string
		input    string
		label    string
		contains []string
	}{
		{
			name:     "email",
			input:    "test@example.com",
			label:    "email",
			contains: []string{`Validate the following email address: "test@example.com"`, "example.org", "Indonesian"},
		},
		{
			name:     "product strict rejection",
			input:    "Indomie Goreng",
			label:    "Nama Produk",
			contains: []string{`Validate the input "Nama Produk"`, "STRICT REJECTION RULES", "BPOM", `Input: "Indomie Goreng"`},
		},
		{
			name:     "username reserved words",
			input:    "john_doe",
			label:    "username",
			contains: []string{"'admin', 'root', 'support', 'system', 'moderator'", "Profane"},
		},
		{
			name:     "identity",
			input:    "3273120101900001",
			label:    "NIK",
			contains: []string{"exactly 16 digits", "NPWP"},
		},
		{
			name:     "long form",
			input:    "Artikel ini membahas sejarah kota Jakarta.",
			label:    "deskripsi",
			contains: []string{"'lorem ipsum'", "minimum 30 characters"},
		},
		{
			name:     "unknown label falls back to generic",
			input:    "anything",
			label:    "banana",
			contains: []string{"Role: Strict Data Semantic Validator.", `claimed to be of type "banana"`, "INDONESIAN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build(tt.input, tt.label)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("prompt does not contain %q", want)
				}
			}
			if !strings.Contains(got, "passed basic syntactic validation") {
				t.Error("prompt is missing the preamble")
			}
		})
	}
}

func TestBuildEscapesQuotes(t *testing.T) {
	b := newDefaultBuilder(t)

	got := b.Build(`Budi "The Boss" Santoso`, "nama")
	if !strings.Contains(got, `Input: "Budi \"The Boss\" Santoso"`) {
		t.Errorf("quotes were not escaped:\n%s", got)
	}
}

func TestBuildEscapesBackslashes(t *testing.T) {
	b := newDefaultBuilder(t)

	got := b.Build(`Jakarta\`, "lokasi")
	if !strings.Contains(got, `Input: "Jakarta\\"`) {
		t.Errorf("trailing backslash was not escaped:\n%s", got)
	}
}

func TestBuildEscapesLabel(t *testing.T) {
	b := newDefaultBuilder(t)

	got := b.Build("Budi", `nama" lengkap\`)
	if strings.Contains(got, `"nama" lengkap`) {
		t.Errorf("label quote was not escaped:\n%s", got)
	}
	if !strings.Contains(got, `nama\" lengkap\\`) {
		t.Errorf("label was not escaped:\n%s", got)
	}
}

func TestEscapeQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`ends\`, `ends\\`},
		{`\"`, `\\\"`},
	}
	for _, tt := range tests {
		if got := EscapeQuotes(tt.in); got != tt.want {
			t.Errorf("EscapeQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildUsesRawInput(t *testing.T) {
	b := newDefaultBuilder(t)

	got := b.Build("  Jakarta ", "lokasi")
	if !strings.Contains(got, `Input: "  Jakarta "`) {
		t.Error("input should be interpolated as given")
	}
}

func TestBuildIsTotal(t *testing.T) {
	cfg := &config.PromptsConfig{
		Preamble: "note",
		Templates: []config.PromptTemplate{
			{Category: "generic", Prompt: "{{.Missing}}"},
		},
	}
	b, err := NewBuilder(cfg)
	if err != nil {
		t.Fatal(err)
	}

	got := b.Build("x", "email")
	if got == "" {
		t.Fatal("Build returned an empty prompt")
	}
	if !strings.Contains(got, `Input to Validate: "x"`) {
		t.Errorf("expected built-in fallback, got:\n%s", got)
	}

	empty, err := NewBuilder(&config.PromptsConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if empty.Build("x", "email") == "" {
		t.Error("builder without templates returned an empty prompt")
	}
}

func TestNewBuilderRejectsUnknownCategory(t *testing.T) {
	_, err := NewBuilder(&config.PromptsConfig{
		Templates: []config.PromptTemplate{{Category: "banana", Prompt: "x"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
