package pwstrength

import "math"

// Alphabet sizes assumed for each character class.
const (
	upperPool  = 26
	lowerPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// Entropy is a theoretical entropy estimate for a password.
//
// It assumes every character was drawn uniformly from the union of the
// classes present, so it is an upper bound: dictionary words and personal
// information are invisible to it. Do not present Bits as guessing entropy.
type Entropy struct {
	PoolSize int     `json:"pool_size"`
	Bits     float64 `json:"bits"`
}

// EstimateEntropy computes Length * log2(PoolSize) from a class profile.
// An input with no recognised class has a pool of 0 and 0 bits.
func EstimateEntropy(p ClassProfile) Entropy {
	pool := effectivePoolSize(p)
	if pool == 0 || p.Length == 0 {
		return Entropy{PoolSize: pool}
	}
	return Entropy{
		PoolSize: pool,
		Bits:     float64(p.Length) * math.Log2(float64(pool)),
	}
}

// effectivePoolSize sums the alphabet of every class present in the profile.
func effectivePoolSize(p ClassProfile) int {
	pool := 0
	if p.HasUpper {
		pool += upperPool
	}
	if p.HasLower {
		pool += lowerPool
	}
	if p.HasDigit {
		pool += digitPool
	}
	if p.HasSymbol {
		pool += symbolPool
	}
	return pool
}
