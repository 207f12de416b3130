package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	pwstrength "github.com/creativesar/Password-Strength-Checker"
	"github.com/creativesar/Password-Strength-Checker/internal/config"
	"github.com/creativesar/Password-Strength-Checker/internal/log"
	"github.com/creativesar/Password-Strength-Checker/internal/report"
	"github.com/creativesar/Password-Strength-Checker/internal/secret"
)

func (a *app) checkCmd() *cobra.Command {
	var minScore int

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Analyze a password.",
		Long: `Analyze a password and print its score, label, entropy estimate, crack
time, detected patterns and improvement feedback.

The password is read from the argument if given, from a masked prompt when
stdin is a terminal, or from the first line of stdin otherwise. Passing it
as an argument may leave it in your shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := a.readPassword(cmd, args)
			if err != nil {
				return err
			}

			var res pwstrength.Result
			_ = pwd.Use(func(plain string) error {
				res = a.analyzer.Analyze(plain)
				return nil
			})

			a.logger.Info("password analyzed", log.ResultFields(res.Label.String(), res.Score, res.Policy, len(res.Findings))...)

			if err := a.render(cmd, res); err != nil {
				return err
			}
			if res.Score < minScore {
				return fmt.Errorf("score %d is below the required minimum %d", res.Score, minScore)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minScore, "min-score", 0, "exit with an error if the score is below this value")
	return cmd
}

// readPassword captures the password into a Secret the caller must Use or Zero.
func (a *app) readPassword(cmd *cobra.Command, args []string) (secret.Secret, error) {
	if len(args) == 1 {
		a.logger.Warn("password passed as an argument; it may be recorded in shell history")
		return secret.FromString(args[0]), nil
	}
	if a.isTerminal() {
		pwd, err := a.prompt()
		if err != nil {
			return nil, err
		}
		return secret.FromString(pwd), nil
	}
	return readLine(cmd.InOrStdin())
}

// readLine reads the first line of r without its line terminator. Empty input
// is an empty password, not an error. Bytes are read one at a time so no
// buffer outside the returned Secret holds the line.
func readLine(r io.Reader) (secret.Secret, error) {
	var (
		line secret.Secret
		b    [1]byte
	)
	defer clear(b[:])
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			line.AppendByte(b[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line.Zero()
			return nil, fmt.Errorf("read password: %w", err)
		}
	}
	for len(line) > 0 && line[len(line)-1] == '\r' {
		line[len(line)-1] = 0
		line = line[:len(line)-1]
	}
	return line, nil
}

func promptPassword() (string, error) {
	p := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}
	pwd, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("password prompt failed: %w", err)
	}
	return pwd, nil
}

func (a *app) render(cmd *cobra.Command, res pwstrength.Result) error {
	w := a.out(cmd)
	switch a.cfg.Output {
	case config.OutputJSON:
		return report.JSON(w, res)
	default:
		return report.Text(w, res, a.cfg.Color)
	}
}
