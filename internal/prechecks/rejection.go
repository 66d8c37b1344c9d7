package prechecks

type Reason string

const (
	ReasonEmptyInput        Reason = "empty_input"
	ReasonTooLong           Reason = "too_long"
	ReasonTooShort          Reason = "too_short"
	ReasonInvalidFormat     Reason = "invalid_format"
	ReasonInvalidCharacters Reason = "invalid_characters"
	ReasonContainsSpace     Reason = "contains_space"
	ReasonDoubleSpace       Reason = "double_space"
	ReasonNumericOnly       Reason = "numeric_only"
	ReasonMissingDigit      Reason = "missing_digit"
)

// Rejection is a business outcome, not a failure of the validator.
type Rejection struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(reason Reason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}
