package prechecks

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const minNameLength = 3

// NameChecker covers usernames and personal names. Usernames are handles and may not contain whitespace.
type NameChecker struct {
	handle bool
}

func NewUsernameChecker() *NameChecker {
	return &NameChecker{handle: true}
}

func NewFullNameChecker() *NameChecker {
	return &NameChecker{}
}

func (c *NameChecker) Check(in Input) *Rejection {
	if utf8.RuneCountInString(in.Text) < minNameLength {
		if c.handle {
			return reject(ReasonTooShort, "Username terlalu pendek (minimal 3 karakter).")
		}
		return reject(ReasonTooShort, "Nama terlalu pendek (minimal 3 karakter).")
	}
	if strings.Contains(in.Text, "  ") {
		return reject(ReasonDoubleSpace, fmt.Sprintf("'%s' tidak boleh mengandung double spasi.", in.Label))
	}
	if c.handle && hasSpace(in.Text) {
		return reject(ReasonContainsSpace, "Username tidak boleh mengandung spasi.")
	}
	if allNumeric(in.Text) {
		return reject(ReasonNumericOnly, fmt.Sprintf("'%s' tidak boleh hanya terdiri dari angka.", in.Label))
	}
	return nil
}
