package prechecks

import (
	"unicode"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

type PhoneChecker struct{}

func NewPhoneChecker() *PhoneChecker {
	return &PhoneChecker{}
}

// Check counts digits against the E.164 bounds, then restricts the separators.
func (c *PhoneChecker) Check(in Input) *Rejection {
	digits := 0
	for _, r := range in.Text {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits == 0 {
		return reject(ReasonMissingDigit, "Nomor telepon tidak boleh kosong.")
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return reject(ReasonInvalidFormat, "Panjang nomor telepon tidak valid (Global: 7-15 digit).")
	}
	for _, r := range in.Text {
		if !isPhoneRune(r) {
			return reject(ReasonInvalidCharacters, "Nomor telepon mengandung karakter yang tidak valid.")
		}
	}
	return nil
}

func isPhoneRune(r rune) bool {
	switch r {
	case '+', '-', ' ', '(', ')':
		return true
	}
	return unicode.IsDigit(r)
}
