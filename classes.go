package pwstrength

import "strings"

// symbolSet is the fixed punctuation set counted as the symbol class.
// Other non-alphanumeric characters (whitespace, '-', '_', non-ASCII) belong to no class.
const symbolSet = `!@#$%^&*(),.?":{}|<>`

// ClassProfile records which character classes appear in a password and how often.
type ClassProfile struct {
	HasUpper  bool `json:"has_upper"`
	HasLower  bool `json:"has_lower"`
	HasDigit  bool `json:"has_digit"`
	HasSymbol bool `json:"has_symbol"`

	Upper   int `json:"upper"`
	Lower   int `json:"lower"`
	Digits  int `json:"digits"`
	Symbols int `json:"symbols"`
	Other   int `json:"other"` // characters outside all four classes

	Length int `json:"length"` // in runes
}

// Classes returns how many of the four classes are present.
func (p ClassProfile) Classes() int {
	n := 0
	for _, has := range []bool{p.HasUpper, p.HasLower, p.HasDigit, p.HasSymbol} {
		if has {
			n++
		}
	}
	return n
}

// DetectClasses classifies every rune of password using ASCII ranges and the fixed symbol set.
func DetectClasses(password string) ClassProfile {
	var p ClassProfile
	for _, r := range password {
		p.Length++
		switch {
		case r >= 'A' && r <= 'Z':
			p.Upper++
		case r >= 'a' && r <= 'z':
			p.Lower++
		case r >= '0' && r <= '9':
			p.Digits++
		case strings.ContainsRune(symbolSet, r):
			p.Symbols++
		default:
			p.Other++
		}
	}
	p.HasUpper = p.Upper > 0
	p.HasLower = p.Lower > 0
	p.HasDigit = p.Digits > 0
	p.HasSymbol = p.Symbols > 0
	return p
}
