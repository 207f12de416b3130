package pwstrength

import (
	"math"
	"testing"
)

func TestDetectClasses(t *testing.T) {
	tests := []struct {
		password string
		want     ClassProfile
	}{
		{"", ClassProfile{}},
		{"Tr0ub4dor&3", ClassProfile{
			HasUpper: true, HasLower: true, HasDigit: true, HasSymbol: true,
			Upper: 1, Lower: 6, Digits: 3, Symbols: 1, Length: 11,
		}},
		{"héllo wörld", ClassProfile{HasLower: true, Lower: 8, Other: 3, Length: 11}},
		{`-_ "`, ClassProfile{HasSymbol: true, Symbols: 1, Other: 3, Length: 4}},
		{"0123456789", ClassProfile{HasDigit: true, Digits: 10, Length: 10}},
	}

	for _, tt := range tests {
		if got := DetectClasses(tt.password); got != tt.want {
			t.Errorf("DetectClasses(%q) = %+v, want %+v", tt.password, got, tt.want)
		}
	}
}

func TestDetectClasses_SymbolSet(t *testing.T) {
	for _, r := range symbolSet {
		if p := DetectClasses(string(r)); !p.HasSymbol {
			t.Errorf("%q should count as a symbol", r)
		}
	}
	for _, r := range "-_=+[];'/\\`~ \t€" {
		if p := DetectClasses(string(r)); p.HasSymbol || p.Other != 1 {
			t.Errorf("%q should belong to no class, got %+v", r, p)
		}
	}
}

func TestEstimateEntropy(t *testing.T) {
	tests := []struct {
		password string
		pool     int
		bits     float64
	}{
		{"", 0, 0},
		{"   ", 0, 0},
		{"1234", 10, 4 * math.Log2(10)},
		{"abc", 26, 3 * math.Log2(26)},
		{"aB", 52, 2 * math.Log2(52)},
		{"a1", 36, 2 * math.Log2(36)},
		{"!!", 32, 2 * math.Log2(32)},
		{"Tr0ub4dor&3", 94, 11 * math.Log2(94)},
		{"ab cd", 26, 5 * math.Log2(26)}, // the space adds length, not pool
	}

	for _, tt := range tests {
		e := EstimateEntropy(DetectClasses(tt.password))
		if e.PoolSize != tt.pool {
			t.Errorf("EstimateEntropy(%q).PoolSize = %d, want %d", tt.password, e.PoolSize, tt.pool)
		}
		if !floatEquals(e.Bits, tt.bits, 1e-9) {
			t.Errorf("EstimateEntropy(%q).Bits = %f, want %f", tt.password, e.Bits, tt.bits)
		}
	}
}

func TestCrackTime(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{0, "instant"},
		{-3, "instant"},
		{33, "instant"},  // 0.86s
		{34, "seconds"},  // 1.7s
		{40, "minutes"},  // 110s
		{45, "minutes"},  // 58.6m
		{46, "hours"},    // 1.95h
		{50, "days"},     // 1.3d
		{55, "months"},   // 41.7d
		{60, "years"},    // 3.7y
		{70, "centuries"},
		{4096, "centuries"},
	}

	for _, tt := range tests {
		if got := CrackTime(Entropy{Bits: tt.bits}, DefaultGuessRate); got != tt.want {
			t.Errorf("CrackTime(%v bits) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestCrackTime_GuessRate(t *testing.T) {
	e := Entropy{Bits: 40}
	if got := CrackTime(e, 0); got != CrackTime(e, DefaultGuessRate) {
		t.Errorf("non-positive guess rate should fall back to the default, got %q", got)
	}
	if got := CrackTime(e, 1); got != "centuries" {
		t.Errorf("CrackTime(40 bits, 1/s) = %q, want centuries", got)
	}
}
