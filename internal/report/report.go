// Package report renders analysis results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	pwstrength "github.com/creativesar/Password-Strength-Checker"
)

const barWidth = 20

// labelColors picks a colour per strength label, red to green.
var labelColors = map[pwstrength.Label]color.Attribute{
	pwstrength.VeryWeak:   color.FgRed,
	pwstrength.Weak:       color.FgRed,
	pwstrength.Moderate:   color.FgYellow,
	pwstrength.Strong:     color.FgCyan,
	pwstrength.VeryStrong: color.FgGreen,
}

// JSON writes res as indented JSON followed by a newline.
func JSON(w io.Writer, res pwstrength.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Text writes a human-readable report. Colour escapes are only emitted when
// useColor is true.
func Text(w io.Writer, res pwstrength.Result, useColor bool) error {
	label := color.New(labelColors[res.Label], color.Bold)
	bad := color.New(color.FgYellow)
	if useColor {
		label.EnableColor()
		bad.EnableColor()
	} else {
		label.DisableColor()
		bad.DisableColor()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Strength:   %s (%d/100)\n", label.Sprint(res.Label), res.Score)
	fmt.Fprintf(&b, "Score:      %s raw %.2f\n", Bar(res.Score), res.RawScore)
	fmt.Fprintf(&b, "Entropy:    %.1f bits (pool %d)\n", res.Entropy.Bits, res.Entropy.PoolSize)
	fmt.Fprintf(&b, "Crack time: %s\n", res.CrackTime)
	fmt.Fprintf(&b, "Classes:    upper %s  lower %s  digits %s  symbols %s\n",
		mark(res.Profile.HasUpper), mark(res.Profile.HasLower),
		mark(res.Profile.HasDigit), mark(res.Profile.HasSymbol))

	if len(res.Findings) > 0 {
		b.WriteString("Findings:\n")
		for _, f := range res.Findings {
			fmt.Fprintf(&b, "  - %s\n", bad.Sprint(f.Kind))
		}
	}
	b.WriteString("Feedback:\n")
	for _, msg := range res.Feedback {
		fmt.Fprintf(&b, "  - %s\n", msg)
	}
	fmt.Fprintf(&b, "Policy:     %s\n", res.Policy)

	_, err := io.WriteString(w, b.String())
	return err
}

// Bar draws score (0-100) as a fixed-width gauge.
func Bar(score int) string {
	score = max(0, min(score, 100))
	filled := score * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
