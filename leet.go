package pwstrength

import "strings"

// leetReadings lists the letters a substituted character may stand for,
// most likely reading first.
var leetReadings = map[rune]string{
	'@': "a", '4': "a",
	'8': "b",
	'(': "c", '{': "c",
	'3': "e",
	'6': "g",
	'#': "h",
	'!': "i",
	'1': "il", '|': "il",
	'0': "o",
	'9': "gq",
	'5': "s", '$': "s",
	'7': "t", '+': "t",
	'2': "z",
	'%': "x",
}

// maxLeetAmbiguities bounds variant generation to 2^n candidates.
const maxLeetAmbiguities = 3

// leetNormalize rewrites s using the most likely reading of each substitution.
func leetNormalize(s string) string {
	return strings.Map(func(r rune) rune {
		if letters, ok := leetReadings[r]; ok {
			return rune(letters[0])
		}
		return r
	}, s)
}

// leetVariants expands the first maxLeetAmbiguities ambiguous substitutions
// of s into every combination of their readings. The primary normalization
// always comes first and no candidate is repeated.
func leetVariants(s string) []string {
	primary := leetNormalize(s)
	out := []string{primary}
	seen := map[string]bool{primary: true}

	candidates := [][]rune{[]rune(primary)}
	expanded := 0
	for i, r := range []rune(s) {
		letters := leetReadings[r]
		if len(letters) < 2 {
			continue
		}
		if expanded == maxLeetAmbiguities {
			break
		}
		expanded++

		next := make([][]rune, 0, len(candidates)*len(letters))
		for _, c := range candidates {
			for _, l := range letters {
				alt := append([]rune(nil), c...)
				alt[i] = l
				next = append(next, alt)
			}
		}
		candidates = next
	}

	for _, c := range candidates {
		if v := string(c); !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
