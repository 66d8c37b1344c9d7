package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestModelChoiceMappingIsTotal(t *testing.T) {
	seen := map[string]bool{}
	for _, info := range ModelChoices() {
		m, err := ModelChoiceFromInt(info.Value)
		if err != nil {
			t.Fatalf("ModelChoiceFromInt(%d) error: %v", info.Value, err)
		}
		if m.ID() == "" {
			t.Errorf("model %d has empty id", info.Value)
		}
		if seen[m.ID()] {
			t.Errorf("model id %q mapped twice", m.ID())
		}
		seen[m.ID()] = true
	}
	if len(seen) != 4 {
		t.Errorf("got %d models, want 4", len(seen))
	}
}

func TestModelChoiceIDs(t *testing.T) {
	tests := []struct {
		choice ModelChoice
		want   string
	}{
		{GeminiFlash, "gemini-2.5-flash"},
		{GeminiFlashLite, "gemini-flash-lite-latest"},
		{GeminiFlashLatest, "gemini-flash-latest"},
		{Gemma, "gemma-3-27b-it"},
	}
	for _, tt := range tests {
		if got := tt.choice.ID(); got != tt.want {
			t.Errorf("%s.ID() = %q, want %q", tt.choice, got, tt.want)
		}
	}
}

func TestModelChoiceFromIntOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 4, 99} {
		_, err := ModelChoiceFromInt(n)
		if err == nil {
			t.Fatalf("ModelChoiceFromInt(%d) expected error", n)
		}
		if !strings.Contains(err.Error(), "0 (GeminiFlash), 1 (GeminiFlashLite), 2 (GeminiFlashLatest), 3 (Gemma)") {
			t.Errorf("error %q does not list options", err)
		}
	}
}

func TestParseModelChoice(t *testing.T) {
	tests := []struct {
		in      string
		want    ModelChoice
		wantErr bool
	}{
		{"gemma", Gemma, false},
		{" Gemini-Flash-Lite ", GeminiFlashLite, false},
		{"2", GeminiFlashLatest, false},
		{"gemini-2.5-flash", GeminiFlash, false},
		{"GeminiFlashLatest", GeminiFlashLatest, false},
		{"gpt-4", 0, true},
		{"7", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModelChoice(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationRequestModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *ModelChoice
		wantErr bool
	}{
		{"number", `{"input":"a","input_type":"email","model":3}`, ptr(Gemma), false},
		{"string", `{"input":"a","input_type":"email","model":"gemini-flash-lite"}`, ptr(GeminiFlashLite), false},
		{"omitted", `{"input":"a","input_type":"email"}`, nil, false},
		{"out of range", `{"input":"a","input_type":"email","model":9}`, nil, true},
		{"bool", `{"input":"a","input_type":"email","model":true}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ValidationRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (req.Model == nil) != (tt.want == nil) {
				t.Fatalf("model = %v, want %v", req.Model, tt.want)
			}
			if tt.want != nil && *req.Model != *tt.want {
				t.Errorf("model = %v, want %v", *req.Model, *tt.want)
			}
		})
	}
}

func TestVerdictJSONRoundTrip(t *testing.T) {
	for _, v := range []Verdict{{true, "OK"}, {false, "Tidak valid"}, {false, "Pesan \"berkutip\""}} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		var got Verdict
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("round trip = %+v, want %+v", got, v)
		}
	}
}

func TestModelOrDefault(t *testing.T) {
	if got := ModelOrDefault(nil, Gemma); got != Gemma {
		t.Errorf("nil selector = %v, want gemma", got)
	}
	m := GeminiFlashLite
	if got := ModelOrDefault(&m, Gemma); got != GeminiFlashLite {
		t.Errorf("explicit selector = %v", got)
	}
}

func ptr(m ModelChoice) *ModelChoice { return &m }
