package pwstrength

import "fmt"

// requirementKind tags the fixed checks that produce feedback, in output order.
type requirementKind int

const (
	reqLength requirementKind = iota
	reqUpper
	reqLower
	reqDigit
	reqSymbol
)

type requirement struct {
	kind    requirementKind
	met     func(p Policy, prof ClassProfile) bool
	message func(p Policy) string
}

func fixed(msg string) func(Policy) string {
	return func(Policy) string { return msg }
}

var requirements = []requirement{
	{
		kind:    reqLength,
		met:     func(p Policy, prof ClassProfile) bool { return prof.Length >= p.MinLength },
		message: func(p Policy) string { return fmt.Sprintf("Make the password at least %d characters long", p.MinLength) },
	},
	{
		kind:    reqUpper,
		met:     func(_ Policy, prof ClassProfile) bool { return prof.HasUpper },
		message: fixed("Add uppercase letters (A-Z)"),
	},
	{
		kind:    reqLower,
		met:     func(_ Policy, prof ClassProfile) bool { return prof.HasLower },
		message: fixed("Add lowercase letters (a-z)"),
	},
	{
		kind:    reqDigit,
		met:     func(_ Policy, prof ClassProfile) bool { return prof.HasDigit },
		message: fixed("Add numbers (0-9)"),
	},
	{
		kind:    reqSymbol,
		met:     func(_ Policy, prof ClassProfile) bool { return prof.HasSymbol },
		message: fixed("Add special characters (" + symbolSet + ")"),
	},
}

// SuccessMessage is the only feedback for a password that meets every
// requirement and triggers no pattern finding.
const SuccessMessage = "Great password! It meets every requirement."

// feedback lists unmet requirements in table order, then finding messages in scan order.
func feedback(p Policy, prof ClassProfile, findings []Finding) []string {
	var out []string
	for _, req := range requirements {
		if !req.met(p, prof) {
			out = append(out, req.message(p))
		}
	}
	for _, f := range findings {
		out = append(out, f.Message)
	}
	if len(out) == 0 {
		out = []string{SuccessMessage}
	}
	return out
}
