// Package pwstrength estimates how strong a password is.
//
// Analysis is a pure function of the password and a scoring Policy: it
// never fails, keeps no state between calls and is safe for concurrent use.
// Callers own the password and should not log or retain it.
package pwstrength

// Result is the strength verdict for a single password.
type Result struct {
	RawScore  float64      `json:"raw_score"`
	Score     int          `json:"score"` // normalized to [0, 100]
	Label     Label        `json:"label"`
	Profile   ClassProfile `json:"profile"`
	Entropy   Entropy      `json:"entropy"`
	Findings  []Finding    `json:"findings"`
	Feedback  []string     `json:"feedback"`
	CrackTime string       `json:"crack_time"`
	Policy    string       `json:"policy"`
}

// HasFinding reports whether a finding of kind k was detected.
func (r Result) HasFinding(k FindingKind) bool {
	for _, f := range r.Findings {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// Analyzer scores passwords against a validated policy. The zero value
// applies CanonicalPolicy.
type Analyzer struct {
	policy Policy
	dict   wordList
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDictionary replaces the embedded common-password list with data,
// one password per line.
func WithDictionary(data string) Option {
	return func(a *Analyzer) {
		a.dict = parseWordList(data)
	}
}

// NewAnalyzer validates p and returns an Analyzer that applies it.
func NewAnalyzer(p Policy, opts ...Option) (*Analyzer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{
		policy: clonePolicy(p),
		dict:   embeddedWords,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// active returns the canonical analyzer in place of one that was not built
// by NewAnalyzer.
func (a *Analyzer) active() *Analyzer {
	if a == nil || len(a.policy.Labels) == 0 {
		return canonical
	}
	return a
}

// Policy returns a copy of the policy the analyzer applies.
func (a *Analyzer) Policy() Policy {
	return clonePolicy(a.active().policy)
}

// Analyze computes the strength verdict for password.
func (a *Analyzer) Analyze(password string) Result {
	a = a.active()
	prof := DetectClasses(password)
	findings := scanPatterns(password, a.policy, a.dict)
	entropy := EstimateEntropy(prof)
	raw, score, label := aggregate(a.policy, prof, entropy, findings)

	if findings == nil {
		findings = []Finding{}
	}
	return Result{
		RawScore:  raw,
		Score:     score,
		Label:     label,
		Profile:   prof,
		Entropy:   entropy,
		Findings:  findings,
		Feedback:  feedback(a.policy, prof, findings),
		CrackTime: CrackTime(entropy, a.policy.GuessRate),
		Policy:    a.policy.String(),
	}
}

var canonical = mustAnalyzer(CanonicalPolicy())

func mustAnalyzer(p Policy) *Analyzer {
	a, err := NewAnalyzer(p)
	if err != nil {
		panic(err)
	}
	return a
}

// Analyze computes the strength verdict for password under CanonicalPolicy.
func Analyze(password string) Result {
	return canonical.Analyze(password)
}

// clonePolicy copies the slices so callers cannot mutate an analyzer's policy.
func clonePolicy(p Policy) Policy {
	p.LengthTiers = append([]LengthTier(nil), p.LengthTiers...)
	p.EntropyTiers = append([]EntropyTier(nil), p.EntropyTiers...)
	p.Labels = append([]Threshold(nil), p.Labels...)
	return p
}
