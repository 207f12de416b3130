package pwstrength

import "fmt"

// Label is the strength category of a password.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var labelNames = [...]struct{ text, human string }{
	VeryWeak:   {"very_weak", "Very Weak"},
	Weak:       {"weak", "Weak"},
	Moderate:   {"moderate", "Moderate"},
	Strong:     {"strong", "Strong"},
	VeryStrong: {"very_strong", "Very Strong"},
}

func (l Label) valid() bool {
	return l >= VeryWeak && l <= VeryStrong
}

// String returns a human-readable representation of the label.
func (l Label) String() string {
	if !l.valid() {
		return "Unknown"
	}
	return labelNames[l].human
}

// MarshalText encodes the label as snake_case, e.g. "very_strong".
func (l Label) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("unknown label %d", int(l))
	}
	return []byte(labelNames[l].text), nil
}

// UnmarshalText accepts the snake_case form produced by MarshalText.
func (l *Label) UnmarshalText(text []byte) error {
	for i, n := range labelNames {
		if n.text == string(text) {
			*l = Label(i)
			return nil
		}
	}
	return fmt.Errorf("unknown label %q", text)
}
