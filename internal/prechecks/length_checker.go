package prechecks

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minShortTextLength = 2
	minLongFormLength  = 10
)

type LengthChecker struct {
	min         int
	message     string
	doubleSpace bool
}

// NewShortTextChecker is used for descriptive fields such as company, title or address.
func NewShortTextChecker() *LengthChecker {
	return &LengthChecker{
		min:         minShortTextLength,
		message:     "Input terlalu pendek (minimal 2 karakter).",
		doubleSpace: true,
	}
}

func NewLongFormChecker() *LengthChecker {
	return &LengthChecker{
		min:     minLongFormLength,
		message: "Konten terlalu pendek (minimal 10 karakter).",
	}
}

func (c *LengthChecker) Check(in Input) *Rejection {
	if utf8.RuneCountInString(in.Text) < c.min {
		return reject(ReasonTooShort, c.message)
	}
	if c.doubleSpace && strings.Contains(in.Text, "  ") {
		return reject(ReasonDoubleSpace, fmt.Sprintf("'%s' tidak boleh mengandung double spasi.", in.Label))
	}
	return nil
}
