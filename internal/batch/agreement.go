package batch

import (
	"errors"
	"fmt"
)

// AnnotationPair lines up a human label with the validator's verdict.
type AnnotationPair struct {
	RequestID string `json:"request_id"`
	Expected  bool   `json:"expected_valid"`
	Actual    bool   `json:"actual_valid"`
}

type AgreementResult struct {
	TotalRecords   int              `json:"total_records"`
	AgreementCount int              `json:"agreement_count"`
	AgreementRate  float64          `json:"agreement_rate"`
	FalseAccepts   int              `json:"false_accepts"`
	FalseRejects   int              `json:"false_rejects"`
	Threshold      float64          `json:"threshold"`
	Passed         bool             `json:"passed"`
	Disagreements  []AnnotationPair `json:"disagreements,omitempty"`
	Interpretation string           `json:"interpretation"`
}

// CheckAgreement compares verdicts against human labels. A false accept is
// valid=true where a human said invalid.
func CheckAgreement(pairs []AnnotationPair, threshold float64) (*AgreementResult, error) {
	if len(pairs) == 0 {
		return nil, errors.New("no annotated records to compare")
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %.2f out of range [0, 1]", threshold)
	}

	result := &AgreementResult{TotalRecords: len(pairs), Threshold: threshold}
	for _, pair := range pairs {
		switch {
		case pair.Expected == pair.Actual:
			result.AgreementCount++
		case pair.Actual:
			result.FalseAccepts++
			result.Disagreements = append(result.Disagreements, pair)
		default:
			result.FalseRejects++
			result.Disagreements = append(result.Disagreements, pair)
		}
	}

	result.AgreementRate = float64(result.AgreementCount) / float64(result.TotalRecords)
	result.Passed = result.AgreementRate >= threshold
	result.Interpretation = interpret(result.AgreementRate)
	return result, nil
}

func interpret(rate float64) string {
	switch {
	case rate >= 0.9:
		return "strong agreement"
	case rate >= 0.75:
		return "good agreement"
	case rate >= 0.5:
		return "weak agreement"
	default:
		return "poor agreement"
	}
}
