package pwstrength

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LengthTier awards Points once a password reaches MinLength characters.
type LengthTier struct {
	MinLength int `yaml:"min_length" json:"min_length"`
	Points    int `yaml:"points" json:"points"`
}

// EntropyTier awards Points once the entropy estimate exceeds MinBits.
type EntropyTier struct {
	MinBits float64 `yaml:"min_bits" json:"min_bits"`
	Points  int     `yaml:"points" json:"points"`
}

// PenaltyWeights is the number of points subtracted per pattern finding.
// CommonPassword has no weight: it overrides the score instead.
type PenaltyWeights struct {
	RepeatedChar      int `yaml:"repeated_char" json:"repeated_char"`
	SequentialLetters int `yaml:"sequential_letters" json:"sequential_letters"`
	SequentialDigits  int `yaml:"sequential_digits" json:"sequential_digits"`
	KeyboardPattern   int `yaml:"keyboard_pattern" json:"keyboard_pattern"`
}

func (w PenaltyWeights) weight(k FindingKind) int {
	switch k {
	case RepeatedChar:
		return w.RepeatedChar
	case SequentialLetters:
		return w.SequentialLetters
	case SequentialDigits:
		return w.SequentialDigits
	case KeyboardPattern:
		return w.KeyboardPattern
	default:
		return 0
	}
}

// Threshold maps normalized scores of at least MinScore to Label.
type Threshold struct {
	MinScore int   `yaml:"min_score" json:"min_score"`
	Label    Label `yaml:"label" json:"label"`
}

// Policy is the scoring configuration: weights, tiers and label thresholds.
// Different scoring scales (0-4, 0-5, 0-100...) are expressed as different
// Policy values rather than different code.
type Policy struct {
	Name    string `yaml:"name" json:"name"`
	Version int    `yaml:"version" json:"version"`

	MaxScore    int `yaml:"max_score" json:"max_score"`
	Floor       int `yaml:"floor" json:"floor"` // raw score forced by a common-password match
	ClassPoints int `yaml:"class_points" json:"class_points"`

	LengthTiers  []LengthTier   `yaml:"length_tiers" json:"length_tiers"`
	EntropyTiers []EntropyTier  `yaml:"entropy_tiers" json:"entropy_tiers"`
	Penalties    PenaltyWeights `yaml:"penalties" json:"penalties"`
	Labels       []Threshold    `yaml:"labels" json:"labels"`

	// MinLength is the length below which feedback asks for a longer password.
	MinLength int     `yaml:"min_length" json:"min_length"`
	GuessRate float64 `yaml:"guess_rate" json:"guess_rate"`
	MatchLeet bool    `yaml:"match_leet" json:"match_leet"`
}

// CanonicalPolicy returns the default scoring policy on a 0-8 raw scale.
func CanonicalPolicy() Policy {
	return Policy{
		Name:        "canonical",
		Version:     1,
		MaxScore:    8,
		Floor:       0,
		ClassPoints: 1,
		LengthTiers: []LengthTier{
			{MinLength: 8, Points: 1},
			{MinLength: 12, Points: 2},
		},
		EntropyTiers: []EntropyTier{
			{MinBits: 60, Points: 1},
			{MinBits: 80, Points: 2},
		},
		Penalties: PenaltyWeights{
			RepeatedChar:      1,
			SequentialLetters: 1,
			SequentialDigits:  1,
			KeyboardPattern:   1,
		},
		Labels: []Threshold{
			{MinScore: 0, Label: VeryWeak},
			{MinScore: 20, Label: Weak},
			{MinScore: 40, Label: Moderate},
			{MinScore: 60, Label: Strong},
			{MinScore: 80, Label: VeryStrong},
		},
		MinLength: 8,
		GuessRate: DefaultGuessRate,
	}
}

// String identifies the policy as name@version.
func (p Policy) String() string {
	return fmt.Sprintf("%s@%d", p.Name, p.Version)
}

// PolicyError collects every problem found in a policy.
type PolicyError struct {
	Policy   string
	Problems []string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("invalid policy %s: %s", e.Policy, strings.Join(e.Problems, "; "))
}

// Validate reports all inconsistencies in p as a *PolicyError, or nil.
func (p Policy) Validate() error {
	pErr := &PolicyError{Policy: p.String()}
	fail := func(format string, args ...any) {
		pErr.Problems = append(pErr.Problems, fmt.Sprintf(format, args...))
	}

	if p.Name == "" {
		fail("name is empty")
	}
	if p.MaxScore <= 0 {
		fail("max_score must be positive, got %d", p.MaxScore)
	}
	if p.Floor < 0 || p.Floor > p.MaxScore {
		fail("floor %d outside [0, %d]", p.Floor, p.MaxScore)
	}
	if p.ClassPoints < 0 {
		fail("class_points must not be negative")
	}
	for i, t := range p.LengthTiers {
		if t.Points < 0 {
			fail("length tier %d has negative points", i)
		}
		if i > 0 && t.MinLength <= p.LengthTiers[i-1].MinLength {
			fail("length tiers must be strictly ascending at index %d", i)
		}
	}
	for i, t := range p.EntropyTiers {
		if t.Points < 0 {
			fail("entropy tier %d has negative points", i)
		}
		if t.MinBits < 0 {
			fail("entropy tier %d has negative min_bits", i)
		}
		if i > 0 && t.MinBits <= p.EntropyTiers[i-1].MinBits {
			fail("entropy tiers must be strictly ascending at index %d", i)
		}
	}
	w := p.Penalties
	if w.RepeatedChar < 0 || w.SequentialLetters < 0 || w.SequentialDigits < 0 || w.KeyboardPattern < 0 {
		fail("penalty weights must not be negative")
	}
	if len(p.Labels) == 0 {
		fail("labels are empty")
	} else if p.Labels[0].MinScore != 0 {
		fail("first label threshold must be 0, got %d", p.Labels[0].MinScore)
	}
	for i, t := range p.Labels {
		if !t.Label.valid() {
			fail("label %d is unknown", i)
		}
		if t.MinScore > 100 {
			fail("label threshold %d exceeds 100", t.MinScore)
		}
		if i > 0 {
			prev := p.Labels[i-1]
			if t.MinScore <= prev.MinScore {
				fail("label thresholds must be strictly ascending at index %d", i)
			}
			if t.Label <= prev.Label {
				fail("labels must increase with score at index %d", i)
			}
		}
	}
	if p.MinLength < 0 {
		fail("min_length must not be negative")
	}
	if p.GuessRate <= 0 {
		fail("guess_rate must be positive")
	}

	if len(pErr.Problems) > 0 {
		return pErr
	}
	return nil
}

// LabelFor maps a normalized score to the label of the highest threshold it reaches.
func (p Policy) LabelFor(score int) Label {
	label := VeryWeak
	for _, t := range p.Labels {
		if score < t.MinScore {
			break
		}
		label = t.Label
	}
	return label
}

func (p Policy) topLabel() Label {
	if len(p.Labels) == 0 {
		return VeryWeak
	}
	return p.Labels[len(p.Labels)-1].Label
}

// LoadPolicy decodes a YAML policy. Fields absent from the document keep
// their canonical values; unknown fields are rejected.
func LoadPolicy(r io.Reader) (Policy, error) {
	p := CanonicalPolicy()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadPolicyFile reads a YAML policy from path.
func LoadPolicyFile(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("open policy: %w", err)
	}
	defer f.Close()

	p, err := LoadPolicy(f)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WritePolicy encodes p as YAML.
func WritePolicy(w io.Writer, p Policy) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode policy: %w", err)
	}
	return enc.Close()
}
