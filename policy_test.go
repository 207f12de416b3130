package pwstrength

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCanonicalPolicy_Valid(t *testing.T) {
	if err := CanonicalPolicy().Validate(); err != nil {
		t.Fatalf("canonical policy invalid: %v", err)
	}
}

func TestPolicy_LabelFor(t *testing.T) {
	p := CanonicalPolicy()
	tests := []struct {
		score int
		want  Label
	}{
		{0, VeryWeak},
		{19, VeryWeak},
		{20, Weak},
		{39, Weak},
		{40, Moderate},
		{59, Moderate},
		{60, Strong},
		{79, Strong},
		{80, VeryStrong},
		{100, VeryStrong},
	}
	for _, tt := range tests {
		if got := p.LabelFor(tt.score); got != tt.want {
			t.Errorf("LabelFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		problem string
	}{
		{"no name", func(p *Policy) { p.Name = "" }, "name is empty"},
		{"zero max", func(p *Policy) { p.MaxScore = 0 }, "max_score must be positive"},
		{"floor above max", func(p *Policy) { p.Floor = 9 }, "floor 9 outside [0, 8]"},
		{"negative class points", func(p *Policy) { p.ClassPoints = -1 }, "class_points"},
		{"unsorted length tiers", func(p *Policy) { p.LengthTiers[1].MinLength = 8 }, "length tiers must be strictly ascending"},
		{"unsorted entropy tiers", func(p *Policy) { p.EntropyTiers[0].MinBits = 90 }, "entropy tiers must be strictly ascending"},
		{"negative penalty", func(p *Policy) { p.Penalties.KeyboardPattern = -1 }, "penalty weights"},
		{"no labels", func(p *Policy) { p.Labels = nil }, "labels are empty"},
		{"labels not from zero", func(p *Policy) { p.Labels[0].MinScore = 5 }, "first label threshold must be 0"},
		{"overlapping thresholds", func(p *Policy) { p.Labels[2].MinScore = 20 }, "label thresholds must be strictly ascending"},
		{"labels out of order", func(p *Policy) { p.Labels[3].Label = Weak }, "labels must increase with score"},
		{"threshold above 100", func(p *Policy) { p.Labels[4].MinScore = 120 }, "exceeds 100"},
		{"unknown label", func(p *Policy) { p.Labels[4].Label = Label(9) }, "label 4 is unknown"},
		{"zero guess rate", func(p *Policy) { p.GuessRate = 0 }, "guess_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CanonicalPolicy()
			tt.mutate(&p)

			err := p.Validate()
			var pErr *PolicyError
			if !errors.As(err, &pErr) {
				t.Fatalf("Validate() = %v, want *PolicyError", err)
			}
			if !strings.Contains(err.Error(), tt.problem) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.problem)
			}
		})
	}
}

func TestPolicy_ValidateCollectsAll(t *testing.T) {
	p := CanonicalPolicy()
	p.MaxScore = -1
	p.GuessRate = -1
	p.MinLength = -1

	var pErr *PolicyError
	if !errors.As(p.Validate(), &pErr) {
		t.Fatal("expected *PolicyError")
	}
	if len(pErr.Problems) < 3 {
		t.Errorf("expected every problem to be reported, got %v", pErr.Problems)
	}
}

func TestLoadPolicy(t *testing.T) {
	doc := `
name: strict
version: 2
max_score: 10
length_tiers:
  - {min_length: 10, points: 2}
  - {min_length: 16, points: 4}
labels:
  - {min_score: 0, label: very_weak}
  - {min_score: 50, label: moderate}
  - {min_score: 90, label: very_strong}
guess_rate: 1e12
match_leet: true
`
	p, err := LoadPolicy(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadPolicy() error: %v", err)
	}

	if p.String() != "strict@2" || p.MaxScore != 10 || p.GuessRate != 1e12 || !p.MatchLeet {
		t.Errorf("unexpected policy: %+v", p)
	}
	if want := []LengthTier{{10, 2}, {16, 4}}; !reflect.DeepEqual(p.LengthTiers, want) {
		t.Errorf("LengthTiers = %v, want %v", p.LengthTiers, want)
	}
	if p.Labels[1].Label != Moderate {
		t.Errorf("Labels[1] = %v, want %v", p.Labels[1].Label, Moderate)
	}
	// Absent fields keep canonical values.
	if canon := CanonicalPolicy(); !reflect.DeepEqual(p.EntropyTiers, canon.EntropyTiers) || p.Penalties != canon.Penalties {
		t.Errorf("absent fields should keep canonical values, got %+v", p)
	}
}

func TestLoadPolicy_Empty(t *testing.T) {
	p, err := LoadPolicy(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadPolicy(empty) error: %v", err)
	}
	if !reflect.DeepEqual(p, CanonicalPolicy()) {
		t.Errorf("empty document should yield the canonical policy, got %+v", p)
	}
}

func TestLoadPolicy_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "max_scor: 4\n"},
		{"unknown label", "labels:\n  - {min_score: 0, label: meh}\n"},
		{"invalid result", "max_score: 0\n"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPolicy(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("LoadPolicy(%q) expected error", tt.doc)
			}
		})
	}
}

func TestWritePolicy_LoadPolicyFile(t *testing.T) {
	p := CanonicalPolicy()
	p.Name = "written"
	p.Labels = p.Labels[:3]

	var buf bytes.Buffer
	if err := WritePolicy(&buf, p); err != nil {
		t.Fatalf("WritePolicy() error: %v", err)
	}
	if !strings.Contains(buf.String(), "label: very_weak") {
		t.Errorf("labels should be written as text, got:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPolicyFile(path)
	if err != nil {
		t.Fatalf("LoadPolicyFile() error: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("LoadPolicyFile() = %+v, want %+v", got, p)
	}
}

func TestLoadPolicyFile_Missing(t *testing.T) {
	_, err := LoadPolicyFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPolicyFile(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestLabel_Text(t *testing.T) {
	for l := VeryWeak; l <= VeryStrong; l++ {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", l, err)
		}
		var back Label
		if err := back.UnmarshalText(text); err != nil || back != l {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, back, err, l)
		}
	}
	if VeryStrong.String() != "Very Strong" || Label(-1).String() != "Unknown" {
		t.Errorf("unexpected String() output")
	}
	if _, err := Label(7).MarshalText(); err == nil {
		t.Error("expected error for unknown label")
	}
}
