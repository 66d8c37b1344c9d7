package prechecks

import (
	"unicode"
)

// Input is what a Checker sees: the trimmed text plus the label as the caller wrote it.
type Input struct {
	Text  string
	Label string
}

type Checker interface {
	Check(in Input) *Rejection
}

type CheckerFunc func(in Input) *Rejection

func (f CheckerFunc) Check(in Input) *Rejection {
	return f(in)
}

// chain runs checkers in order and stops at the first rejection.
type chain []Checker

func (c chain) Check(in Input) *Rejection {
	for _, checker := range c {
		if r := checker.Check(in); r != nil {
			return r
		}
	}
	return nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func allNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return s != ""
}

func hasSpace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
