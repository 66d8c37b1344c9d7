package executor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/executor/mocks"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/interpreter"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/judge"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/llm"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/prechecks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestExecutor_Validate_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
	mockJudge := mocks.NewMockSemanticJudge(ctrl)

	mockSyntax.EXPECT().CheckCategory("budi@gmail.com", "Email Address", category.Email).Return(nil)
	mockJudge.EXPECT().Evaluate(gomock.Any(), judge.Request{
		Input:    "budi@gmail.com",
		Label:    "Email Address",
		Category: category.Email,
		Model:    models.GeminiFlashLite,
	}).Return(models.Verdict{Valid: true, Message: "Email valid"}, nil)

	executor := NewExecutor(mockSyntax, mockJudge, models.DefaultModel, newTestLogger())

	verdict, err := executor.Validate(context.Background(), "budi@gmail.com", "Email Address", models.GeminiFlashLite)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !verdict.Valid || verdict.Message != "Email valid" {
		t.Errorf("unexpected verdict %+v", verdict)
	}
}

func TestExecutor_Validate_ShortCircuitsOnSyntaxRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJudge := mocks.NewMockSemanticJudge(ctrl)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	// real syntax rules, no network stage allowed
	executor := NewExecutor(prechecks.NewValidator(), mockJudge, models.DefaultModel, newTestLogger())

	tests := []struct {
		input, label, wantMessage string
	}{
		{"", "email", "Input tidak boleh kosong."},
		{"   ", "generic", "Input tidak boleh kosong."},
		{"bukan-email", "email", "Format email tidak valid (contoh: user@domain.com)."},
		{"123", "phone", "Panjang nomor telepon tidak valid (Global: 7-15 digit)."},
		{"john doe", "username", "Username tidak boleh mengandung spasi."},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%q", tt.label, tt.input), func(t *testing.T) {
			verdict, err := executor.Validate(context.Background(), tt.input, tt.label, models.GeminiFlash)
			if err != nil {
				t.Fatalf("syntax rejection must not be an error: %v", err)
			}
			if verdict.Valid {
				t.Error("expected valid=false")
			}
			if verdict.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", verdict.Message, tt.wantMessage)
			}
		})
	}
}

func TestExecutor_Validate_PropagatesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"quota", &llm.QuotaExceededError{Model: "gemini-2.5-flash"}},
		{"upstream", &llm.UpstreamError{Model: "gemini-2.5-flash", StatusCode: 500}},
		{"transport", &llm.TransportError{Model: "gemini-2.5-flash", Err: context.DeadlineExceeded}},
		{"config", &llm.ConfigError{Err: errors.New("GOOGLE_API_KEY not set")}},
		{"interpretation", &interpreter.ParseError{Kind: interpreter.KindMalformedJSON, Raw: "not json at all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
			mockJudge := mocks.NewMockSemanticJudge(ctrl)

			mockSyntax.EXPECT().CheckCategory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(models.Verdict{}, tt.err)

			executor := NewExecutor(mockSyntax, mockJudge, models.DefaultModel, newTestLogger())

			verdict, err := executor.Validate(context.Background(), "anything", "generic", models.GeminiFlash)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if verdict != (models.Verdict{}) {
				t.Errorf("error must not produce a verdict, got %+v", verdict)
			}
		})
	}
}

func TestExecutor_ValidateAsync_MatchesSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
	mockJudge := mocks.NewMockSemanticJudge(ctrl)

	want := models.Verdict{Valid: false, Message: "Terdeteksi data dummy"}
	mockSyntax.EXPECT().CheckCategory("test test", "nama", category.FullName).Return(nil).Times(2)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(want, nil).Times(2)

	executor := NewExecutor(mockSyntax, mockJudge, models.DefaultModel, newTestLogger())

	syncVerdict, syncErr := executor.Validate(context.Background(), "test test", "nama", models.GeminiFlash)

	outcomes := executor.ValidateAsync(context.Background(), "test test", "nama", models.GeminiFlash)
	outcome, ok := <-outcomes
	if !ok {
		t.Fatal("channel closed without an outcome")
	}
	if _, more := <-outcomes; more {
		t.Error("channel should be closed after one outcome")
	}

	if outcome.Verdict != syncVerdict || outcome.Err != syncErr {
		t.Errorf("async %+v differs from sync %+v / %v", outcome, syncVerdict, syncErr)
	}
}

func TestExecutor_CheckSyntax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJudge := mocks.NewMockSemanticJudge(ctrl)
	executor := NewExecutor(prechecks.NewValidator(), mockJudge, models.DefaultModel, newTestLogger())

	if v := executor.CheckSyntax("test@example.com", "email"); !v.Valid || v.Message != SyntaxPassMessage {
		t.Errorf("expected pass, got %+v", v)
	}
	if v := executor.CheckSyntax("08123456789", "phone"); !v.Valid {
		t.Errorf("expected pass, got %+v", v)
	}
	if v := executor.CheckSyntax("", "email"); v.Valid || v.Message != "Input tidak boleh kosong." {
		t.Errorf("expected empty rejection, got %+v", v)
	}
}

func TestExecutor_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
	mockJudge := mocks.NewMockSemanticJudge(ctrl)

	mockSyntax.EXPECT().CheckCategory("PT Maju Jaya", "perusahaan", category.Company).Return(nil)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req judge.Request) (models.Verdict, error) {
			if req.Model != models.Gemma {
				t.Errorf("expected default model gemma, got %s", req.Model)
			}
			return models.Verdict{Valid: true, Message: "Nama perusahaan valid"}, nil
		})

	executor := NewExecutor(mockSyntax, mockJudge, models.Gemma, newTestLogger())

	result := executor.Execute(context.Background(), models.ValidationRequest{
		RequestID: "req-001",
		Input:     "PT Maju Jaya",
		InputType: "perusahaan",
	})

	if result.RequestID != "req-001" {
		t.Errorf("RequestID = %q", result.RequestID)
	}
	if !result.Valid || result.Message != "Nama perusahaan valid" {
		t.Errorf("unexpected verdict %+v", result.Verdict())
	}
	if result.Stage != models.StageSemantic {
		t.Errorf("Stage = %s", result.Stage)
	}
	if result.Category != "company" {
		t.Errorf("Category = %q", result.Category)
	}
	if result.Model != "gemma-3-27b-it" {
		t.Errorf("Model = %q", result.Model)
	}
	if result.Failed() {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestExecutor_Execute_SyntaxRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJudge := mocks.NewMockSemanticJudge(ctrl)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	executor := NewExecutor(prechecks.NewValidator(), mockJudge, models.DefaultModel, newTestLogger())

	result := executor.Execute(context.Background(), models.ValidationRequest{Input: "", InputType: "email"})

	if result.RequestID == "" {
		t.Error("expected a generated request id")
	}
	if result.Valid || result.Stage != models.StageSyntax || result.Failed() {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestExecutor_Execute_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
	mockJudge := mocks.NewMockSemanticJudge(ctrl)

	quota := &llm.QuotaExceededError{Model: "gemini-2.5-flash"}
	mockSyntax.EXPECT().CheckCategory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(models.Verdict{}, quota)

	executor := NewExecutor(mockSyntax, mockJudge, models.DefaultModel, newTestLogger())

	result := executor.Execute(context.Background(), models.ValidationRequest{Input: "x", InputType: "generic"})

	if !result.Failed() {
		t.Fatal("expected failed result")
	}
	if result.ErrorKind != models.ErrorKindQuotaExceeded {
		t.Errorf("ErrorKind = %s", result.ErrorKind)
	}
	if result.Error != quota.Error() {
		t.Errorf("Error = %q", result.Error)
	}
	if result.Valid || result.Message != "" {
		t.Errorf("failed result must not carry a verdict: %+v", result.Verdict())
	}
}

func TestExecutor_ExecuteSyntax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJudge := mocks.NewMockSemanticJudge(ctrl)
	executor := NewExecutor(prechecks.NewValidator(), mockJudge, models.DefaultModel, newTestLogger())

	result := executor.ExecuteSyntax(models.ValidationRequest{RequestID: "dry", Input: "0812-3456-789", InputType: "no hp"})
	if !result.Valid || result.Stage != models.StageSyntax || result.Category != "phone" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestExecutor_RejectsInvalidModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyntax := mocks.NewMockSyntaxChecker(ctrl)
	mockJudge := mocks.NewMockSemanticJudge(ctrl)
	mockSyntax.EXPECT().CheckCategory(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockJudge.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Times(0)

	executor := NewExecutor(mockSyntax, mockJudge, models.DefaultModel, newTestLogger())

	_, err := executor.Validate(context.Background(), "budi@gmail.com", "email", models.ModelChoice(9))
	if !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}

	bad := models.ModelChoice(-1)
	result := executor.Execute(context.Background(), models.ValidationRequest{Input: "budi@gmail.com", InputType: "email", Model: &bad})
	if result.ErrorKind != models.ErrorKindInvalidRequest || result.Model != "" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestErrorKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want models.ErrorKind
	}{
		{&llm.QuotaExceededError{Model: "m"}, models.ErrorKindQuotaExceeded},
		{&llm.UpstreamError{Model: "m", StatusCode: 400}, models.ErrorKindUpstream},
		{&llm.TransportError{Model: "m", Err: errors.New("refused")}, models.ErrorKindTransport},
		{&llm.ConfigError{Err: errors.New("missing")}, models.ErrorKindConfig},
		{&interpreter.ParseError{Kind: interpreter.KindEmptyArray}, models.ErrorKindInterpretation},
		{fmt.Errorf("wrapped: %w", &llm.QuotaExceededError{Model: "m"}), models.ErrorKindQuotaExceeded},
		{&llm.TransportError{Model: "m", Err: context.DeadlineExceeded}, models.ErrorKindTimeout},
		{context.DeadlineExceeded, models.ErrorKindTimeout},
		{context.Canceled, models.ErrorKindTransport},
		{fmt.Errorf("%w 7", ErrInvalidModel), models.ErrorKindInvalidRequest},
		{errors.New("unknown"), models.ErrorKindUpstream},
	}

	for _, tt := range tests {
		if got := ErrorKindOf(tt.err); got != tt.want {
			t.Errorf("ErrorKindOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
