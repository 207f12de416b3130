package pwstrength

import "math"

// DefaultGuessRate models an offline attacker against a fast hash.
const DefaultGuessRate = 1e10

const (
	minute = 60.0
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
	year   = 365 * day
)

// crackBuckets are upper bounds in seconds, ascending. Anything beyond the
// last bound is "centuries".
var crackBuckets = []struct {
	below float64
	label string
}{
	{1, "instant"},
	{minute, "seconds"},
	{hour, "minutes"},
	{day, "hours"},
	{month, "days"},
	{year, "months"},
	{100 * year, "years"},
}

// CrackTime returns a human-readable time-to-crack bucket for an exhaustive
// search of 2^bits candidates at guessRate guesses per second.
//
// The comparison is done in log10 space so large entropies never overflow.
// A non-positive guessRate falls back to DefaultGuessRate.
func CrackTime(e Entropy, guessRate float64) string {
	if e.Bits <= 0 {
		return "instant"
	}
	if guessRate <= 0 {
		guessRate = DefaultGuessRate
	}
	logSeconds := e.Bits*math.Log10(2) - math.Log10(guessRate)
	for _, b := range crackBuckets {
		if logSeconds < math.Log10(b.below) {
			return b.label
		}
	}
	return "centuries"
}
