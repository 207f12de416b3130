package pwstrength

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidLength is returned by Generate for lengths too short to hold
	// one character of every class or to reach the policy's top label.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrUnreachableLabel is returned by Generate when no length can reach
	// the policy's top label.
	ErrUnreachableLabel = errors.New("top label is unreachable")
)

const (
	minClassLength    = 4
	maxGenerateLength = 4096
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"
)

// Generate creates a random password of the given length that contains every
// character class, triggers no pattern finding, and reaches the policy's
// highest label. It retries until such a candidate is found (max 1000 attempts).
func (a *Analyzer) Generate(length int) (string, error) {
	const maxAttempts = 1000

	a = a.active()
	if length < minClassLength {
		return "", fmt.Errorf("%w: %d is below %d", ErrInvalidLength, length, minClassLength)
	}
	top := a.policy.topLabel()
	shortest, err := a.shortestTopLength()
	if err != nil {
		return "", err
	}
	if length < shortest {
		return "", fmt.Errorf("%w: a %s password needs at least %d characters under policy %s",
			ErrInvalidLength, top, shortest, a.policy)
	}

	for range maxAttempts {
		pwd, err := generateCandidate(length)
		if err != nil {
			return "", err
		}
		res := a.Analyze(pwd)
		if len(res.Findings) == 0 && res.Label == top {
			return pwd, nil
		}
	}
	return "", fmt.Errorf("failed to generate a %s password of length %d after %d attempts", top, length, maxAttempts)
}

// shortestTopLength returns the smallest length at which a password using
// every class and triggering no finding reaches the top label.
func (a *Analyzer) shortestTopLength() (int, error) {
	p := a.policy
	top := p.topLabel()

	full := ClassProfile{HasUpper: true, HasLower: true, HasDigit: true, HasSymbol: true, Length: 1}
	perChar := EstimateEntropy(full).Bits

	// Past the last tier thresholds the best case stops improving.
	limit := minClassLength
	if n := len(p.LengthTiers); n > 0 {
		limit = max(limit, p.LengthTiers[n-1].MinLength)
	}
	if n := len(p.EntropyTiers); n > 0 {
		limit = max(limit, int(p.EntropyTiers[n-1].MinBits/perChar)+1)
	}
	limit = min(limit, maxGenerateLength)

	for n := minClassLength; n <= limit; n++ {
		full.Length = n
		if _, _, label := aggregate(p, full, EstimateEntropy(full), nil); label == top {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: policy %s cannot rate any generated password %s", ErrUnreachableLabel, p, top)
}

func generateCandidate(length int) (string, error) {
	required := []string{upperChars, lowerChars, numberChars, symbolSet}
	charset := upperChars + lowerChars + numberChars + symbolSet

	pwd := make([]byte, length)

	// Fill required characters first at random positions
	positions := make([]int, length)
	for i := range positions {
		positions[i] = i
	}
	for i := len(positions) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return "", err
		}
		positions[i], positions[j] = positions[j], positions[i]
	}

	pos := 0
	for _, req := range required {
		n, err := randIntn(len(req))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = req[n]
		pos++
	}

	for ; pos < length; pos++ {
		n, err := randIntn(len(charset))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = charset[n]
	}

	return string(pwd), nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
