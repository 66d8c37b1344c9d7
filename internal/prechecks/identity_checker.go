package prechecks

import (
	"unicode/utf8"
)

const minIdentityLength = 5

// IdentityChecker accepts anything shaped like an ID document number. Exact
// per-document lengths (NIK, NPWP, passport) are judged by the model.
type IdentityChecker struct{}

func NewIdentityChecker() *IdentityChecker {
	return &IdentityChecker{}
}

func (c *IdentityChecker) Check(in Input) *Rejection {
	if utf8.RuneCountInString(in.Text) < minIdentityLength {
		return reject(ReasonTooShort, "Nomor identitas terlalu pendek.")
	}
	if !hasDigit(in.Text) {
		return reject(ReasonMissingDigit, "Nomor identitas harus mengandung angka.")
	}
	return nil
}
