package interpreter

import "fmt"

type ParseErrorKind string

const (
	KindExtractionFailed ParseErrorKind = "extraction_failed"
	KindMalformedJSON    ParseErrorKind = "malformed_json"
	KindEmptyArray       ParseErrorKind = "empty_array"
	KindSchemaMismatch   ParseErrorKind = "schema_mismatch"
)

// ParseError reports model output that does not honour the {valid, message}
// contract. Raw holds the text as received, after fence stripping.
type ParseError struct {
	Kind ParseErrorKind
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindExtractionFailed:
		return "Gagal mengekstrak teks dari respons LLM."
	case KindMalformedJSON:
		return fmt.Sprintf("Gagal parse string ke JSON Value. Error: %v. Model output: '%s'", e.Err, e.Raw)
	case KindEmptyArray:
		return "Model output berupa array kosong"
	default:
		return fmt.Sprintf("Gagal mem-parse JSON menjadi ValidationResponse. Error: %v. Model output: '%s'", e.Err, e.Raw)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
