package pwstrength

import "math"

// lengthPoints returns the points of the highest length tier reached.
func (p Policy) lengthPoints(length int) int {
	pts := 0
	for _, t := range p.LengthTiers {
		if length >= t.MinLength {
			pts = t.Points
		}
	}
	return pts
}

// entropyPoints returns the points of the highest entropy tier exceeded.
func (p Policy) entropyPoints(bits float64) int {
	pts := 0
	for _, t := range p.EntropyTiers {
		if bits > t.MinBits {
			pts = t.Points
		}
	}
	return pts
}

// aggregate combines length, class variety, entropy and pattern penalties
// into a raw score clamped to [0, MaxScore], its 0-100 normalization and a label.
func aggregate(p Policy, prof ClassProfile, e Entropy, findings []Finding) (float64, int, Label) {
	raw := float64(p.lengthPoints(prof.Length) +
		prof.Classes()*p.ClassPoints +
		p.entropyPoints(e.Bits))

	overridden := false
	for _, f := range findings {
		if f.Overrides() {
			overridden = true
			continue
		}
		raw -= float64(f.Penalty)
	}
	if overridden {
		raw = float64(p.Floor)
	}

	raw = math.Max(0, math.Min(raw, float64(p.MaxScore)))

	score := int(math.Round(raw / float64(p.MaxScore) * 100))
	score = max(0, min(score, 100))

	return raw, score, p.LabelFor(score)
}
