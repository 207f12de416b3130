package main

import (
	"fmt"
	"os"
	"strings"

	pwstrength "github.com/creativesar/Password-Strength-Checker"
)

func main() {
	fmt.Println("Password Strength Examples")
	fmt.Println("==========================")
	fmt.Println()

	// Example 1: Canonical policy
	fmt.Println("1. Canonical Policy")
	fmt.Println("-------------------")
	res := pwstrength.Analyze("Tr0ub4dor&3")
	fmt.Printf("Password: `Tr0ub4dor&3`\n")
	fmt.Printf("Result: Score=%d, Label=%s, Entropy=%.1f bits, Crack time=%s\n",
		res.Score, res.Label, res.Entropy.Bits, res.CrackTime)
	for _, msg := range res.Feedback {
		fmt.Printf("  - %s\n", msg)
	}
	fmt.Println()

	// Example 2: A 0-4 scale expressed as a policy, with leet matching
	fmt.Println("2. Custom Policy (0-4 scale, leet-aware dictionary)")
	fmt.Println("---------------------------------------------------")
	policy := pwstrength.CanonicalPolicy()
	policy.Name = "four-point"
	policy.MaxScore = 4
	policy.LengthTiers = []pwstrength.LengthTier{{MinLength: 10, Points: 1}}
	policy.ClassPoints = 0
	policy.EntropyTiers = []pwstrength.EntropyTier{{MinBits: 50, Points: 1}, {MinBits: 70, Points: 3}}
	policy.MatchLeet = true

	a, err := pwstrength.NewAnalyzer(policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	res = a.Analyze("p@ssw0rd")
	fmt.Printf("Password: `p@ssw0rd`\n")
	fmt.Printf("Result: Raw=%.0f/4, Score=%d, Label=%s\n", res.RawScore, res.Score, res.Label)
	fmt.Println()

	// Example 3: Comprehensive table
	fmt.Println("3. Analysis Table")
	fmt.Println("=================")
	fmt.Println()

	fmt.Println("| Password             | Score | Label       | Bits  | Crack time | Findings")
	fmt.Println("|----------------------|-------|-------------|-------|------------|---------")

	for _, pwd := range []string{
		"",
		"password",
		"Tr0ub4dor&3",
		"aaaa1111AAAA!!!!",
		"abcdefgh12345678",
		"qwerty!Q1",
		"correct horse battery staple",
		"Xk9$mP2!vLq#Wz7@",
	} {
		r := pwstrength.Analyze(pwd)
		kinds := make([]string, 0, len(r.Findings))
		for _, f := range r.Findings {
			kinds = append(kinds, f.Kind.String())
		}
		fmt.Printf("| %-20s | %5d | %-11s | %5.1f | %-10s | %s\n",
			"`"+pwd+"`", r.Score, r.Label, r.Entropy.Bits, r.CrackTime, strings.Join(kinds, ", "))
	}
	fmt.Println()

	// Example 4: Generation
	fmt.Println("4. Generated Password")
	fmt.Println("---------------------")
	pwd, err := a.Generate(20)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated: %s (%s)\n", pwd, a.Analyze(pwd).Label)
}
