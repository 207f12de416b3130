package pwstrength

import (
	"fmt"
	"strings"
)

// FindingKind identifies a weak structural pattern.
type FindingKind int

const (
	RepeatedChar FindingKind = iota
	SequentialLetters
	SequentialDigits
	KeyboardPattern
	CommonPassword
)

var findingKindNames = [...]string{
	RepeatedChar:      "repeated_char",
	SequentialLetters: "sequential_letters",
	SequentialDigits:  "sequential_digits",
	KeyboardPattern:   "keyboard_pattern",
	CommonPassword:    "common_password",
}

func (k FindingKind) String() string {
	if k < RepeatedChar || k > CommonPassword {
		return fmt.Sprintf("FindingKind(%d)", int(k))
	}
	return findingKindNames[k]
}

// MarshalText encodes the kind as snake_case.
func (k FindingKind) MarshalText() ([]byte, error) {
	if k < RepeatedChar || k > CommonPassword {
		return nil, fmt.Errorf("unknown finding kind %d", int(k))
	}
	return []byte(findingKindNames[k]), nil
}

// UnmarshalText accepts the snake_case form produced by MarshalText.
func (k *FindingKind) UnmarshalText(text []byte) error {
	for i, n := range findingKindNames {
		if n == string(text) {
			*k = FindingKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown finding kind %q", text)
}

// Finding describes a single weak pattern detected in a password.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Message string      `json:"message"`
	Penalty int         `json:"penalty"` // points subtracted from the raw score
}

// Overrides reports whether the finding replaces the whole score with the policy floor.
func (f Finding) Overrides() bool {
	return f.Kind == CommonPassword
}

const (
	alphabet    = "abcdefghijklmnopqrstuvwxyz"
	digitSeries = "1234567890"
)

var keyboardRuns = []string{"qwerty", "asdfgh", "123456", "zxcvbn"}

// ScanPatterns runs every pattern check against password with the canonical
// penalty weights and the embedded word list.
func ScanPatterns(password string) []Finding {
	return scanPatterns(password, CanonicalPolicy(), embeddedWords)
}

// scanPatterns runs all checks, never stopping early, and returns the
// findings in check order.
func scanPatterns(password string, p Policy, dict wordList) []Finding {
	var findings []Finding

	lower := strings.ToLower(password)

	// 1. Three identical characters in a row
	if f := findRepeatedChars(password); f != nil {
		findings = append(findings, *f)
	}

	// 2. Ascending letter runs (abc, bcd, ...)
	if f := findSequence(lower, alphabet, SequentialLetters, "letter"); f != nil {
		findings = append(findings, *f)
	}

	// 3. Ascending digit runs (123 ... 890)
	if f := findSequence(lower, digitSeries, SequentialDigits, "number"); f != nil {
		findings = append(findings, *f)
	}

	// 4. Keyboard runs (qwerty, asdfgh, ...)
	if f := findKeyboardPattern(lower); f != nil {
		findings = append(findings, *f)
	}

	// 5. Whole password is a common password
	if f := findCommonPassword(lower, dict, p.MatchLeet); f != nil {
		findings = append(findings, *f)
	}

	for i := range findings {
		findings[i].Penalty = p.Penalties.weight(findings[i].Kind)
	}
	return findings
}

// --- Repeated characters ---

func findRepeatedChars(password string) *Finding {
	runes := []rune(password)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return &Finding{
				Kind:    RepeatedChar,
				Message: "Avoid repeating the same character three or more times in a row",
			}
		}
	}
	return nil
}

// --- Sequences ---

// findSequence reports whether lower contains any 3-character window of series.
func findSequence(lower, series string, kind FindingKind, what string) *Finding {
	if len(lower) < 3 {
		return nil
	}
	for i := 0; i+3 <= len(series); i++ {
		if strings.Contains(lower, series[i:i+3]) {
			return &Finding{
				Kind:    kind,
				Message: fmt.Sprintf("Avoid sequential %ss like %q", what, series[i:i+3]),
			}
		}
	}
	return nil
}

// --- Keyboard patterns ---

func findKeyboardPattern(lower string) *Finding {
	for _, run := range keyboardRuns {
		if strings.Contains(lower, run) {
			return &Finding{
				Kind:    KeyboardPattern,
				Message: fmt.Sprintf("Avoid keyboard patterns like %q", run),
			}
		}
	}
	return nil
}

// --- Common password (exact match) ---

func findCommonPassword(lower string, dict wordList, matchLeet bool) *Finding {
	if dict == nil || lower == "" {
		return nil
	}

	if dict.has(lower) {
		return &Finding{
			Kind:    CommonPassword,
			Message: "This is a commonly used password; choose something unique",
		}
	}

	if !matchLeet {
		return nil
	}
	for _, v := range leetVariants(lower) {
		if dict.has(v) {
			return &Finding{
				Kind:    CommonPassword,
				Message: fmt.Sprintf("This is a common password (%s) with character substitutions; choose something unique", v),
			}
		}
	}
	return nil
}
