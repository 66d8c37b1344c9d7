package prechecks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
)

// MaxInputLength caps every category except long-form content.
const MaxInputLength = 1000

// Validator is the network-free first stage. It holds no mutable state and is safe for concurrent use.
type Validator struct {
	checkers map[category.Category]Checker
}

func NewValidator() *Validator {
	shortText := NewShortTextChecker()
	return &Validator{
		checkers: map[category.Category]Checker{
			category.Email:       NewEmailChecker(),
			category.Website:     NewWebsiteChecker(),
			category.Phone:       NewPhoneChecker(),
			category.Username:    NewUsernameChecker(),
			category.FullName:    NewFullNameChecker(),
			category.Identity:    NewIdentityChecker(),
			category.DateTime:    NewDateTimeChecker(),
			category.Numeric:     NewNumericChecker(),
			category.Institution: shortText,
			category.Company:     shortText,
			category.Product:     shortText,
			category.Location:    shortText,
			category.Title:       shortText,
			category.JobTitle:    shortText,
			category.Tag:         shortText,
			category.Address:     shortText,
			category.LongForm:    NewLongFormChecker(),
		},
	}
}

// Check resolves label and validates input against it.
func (v *Validator) Check(input, label string) *Rejection {
	return v.CheckCategory(input, label, category.Resolve(label))
}

// CheckCategory runs the global rules, then the category rules. Generic has no category rules.
func (v *Validator) CheckCategory(input, label string, c category.Category) *Rejection {
	in := Input{Text: strings.TrimSpace(input), Label: label}

	rules := chain{CheckerFunc(notEmpty)}
	if !c.IsLongForm() {
		rules = append(rules, CheckerFunc(withinCap))
	}
	if checker, ok := v.checkers[c]; ok {
		rules = append(rules, checker)
	}
	return rules.Check(in)
}

func notEmpty(in Input) *Rejection {
	if in.Text == "" {
		return reject(ReasonEmptyInput, "Input tidak boleh kosong.")
	}
	return nil
}

func withinCap(in Input) *Rejection {
	if utf8.RuneCountInString(in.Text) > MaxInputLength {
		return reject(ReasonTooLong, fmt.Sprintf("Input terlalu panjang untuk kategori '%s'.", in.Label))
	}
	return nil
}
