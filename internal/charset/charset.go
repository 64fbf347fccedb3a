package charset

import "strings"

const (
	UpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerCase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Special   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

type Class int

const (
	Upper Class = iota
	Lower
	Digit
	Symbol
)

// All lists the classes in pool order.
var All = []Class{Upper, Lower, Digit, Symbol}

func (c Class) Alphabet() string {
	switch c {
	case Upper:
		return UpperCase
	case Lower:
		return LowerCase
	case Digit:
		return Digits
	case Symbol:
		return Special
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Upper:
		return "upper-case"
	case Lower:
		return "lower-case"
	case Digit:
		return "digits"
	case Symbol:
		return "special"
	}
	return "unknown"
}

// Selection records which classes contribute to a pool.
type Selection struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Special bool
}

func (s Selection) Has(c Class) bool {
	switch c {
	case Upper:
		return s.Upper
	case Lower:
		return s.Lower
	case Digit:
		return s.Digits
	case Symbol:
		return s.Special
	}
	return false
}

// Classes returns the enabled classes in pool order.
func (s Selection) Classes() []Class {
	var out []Class
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Selection) Empty() bool {
	return !s.Upper && !s.Lower && !s.Digits && !s.Special
}

// Pool concatenates the enabled alphabets as upper, lower, digits, special.
// The result is empty when nothing is selected.
func (s Selection) Pool() string {
	var sb strings.Builder
	for _, c := range s.Classes() {
		sb.WriteString(c.Alphabet())
	}
	return sb.String()
}
