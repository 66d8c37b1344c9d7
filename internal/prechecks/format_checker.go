package prechecks

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FormatChecker matches structural shapes: email addresses and website URLs.
type FormatChecker struct {
	website bool
}

func NewEmailChecker() *FormatChecker {
	return &FormatChecker{}
}

func NewWebsiteChecker() *FormatChecker {
	return &FormatChecker{website: true}
}

func (c *FormatChecker) Check(in Input) *Rejection {
	if c.website {
		return checkWebsite(in.Text)
	}
	return checkEmail(in.Text)
}

func checkEmail(s string) *Rejection {
	if utf8.RuneCountInString(s) > maxEmailLength {
		return reject(ReasonTooLong, "Email terlalu panjang.")
	}
	if !emailPattern.MatchString(s) {
		return reject(ReasonInvalidFormat, "Format email tidak valid (contoh: user@domain.com).")
	}
	return nil
}

func checkWebsite(s string) *Rejection {
	if !strings.Contains(s, ".") || utf8.RuneCountInString(s) < 4 {
		return reject(ReasonInvalidFormat, "Format URL tidak valid (harus mengandung domain, misal: example.com).")
	}
	if hasSpace(s) {
		return reject(ReasonContainsSpace, "URL tidak boleh mengandung spasi.")
	}
	return nil
}
