package llm

type LLMRequest struct {
	Prompt string
	// Model is the upstream model identifier, e.g. gemini-2.5-flash.
	Model string
}

// LLMResponse keeps the candidate/part shape of the provider reply. Nothing about
// it is guaranteed: candidates or parts may be missing.
type LLMResponse struct {
	Candidates   []Candidate
	ModelVersion string
}

type Candidate struct {
	Parts        []string
	FinishReason string
}
