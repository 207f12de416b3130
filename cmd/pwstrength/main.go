// main.go sets up the pwstrength command-line interface using Cobra and
// Viper: a root command carrying the shared configuration, and the check,
// generate and policy subcommands.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	pwstrength "github.com/creativesar/Password-Strength-Checker"
	"github.com/creativesar/Password-Strength-Checker/internal/config"
	"github.com/creativesar/Password-Strength-Checker/internal/log"
)

var version = "dev" // this will be set by the linker

// main is the entry point of the application.
func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands for one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg      config.Config
	logger   *zap.Logger
	analyzer *pwstrength.Analyzer

	// Seams replaced in tests.
	newLogger  func(log.Env) (*zap.Logger, error)
	isTerminal func() bool
	prompt     func() (string, error)
}

func newApp() *app {
	v := viper.New()
	config.SetDefaults(v)
	return &app{
		v:          v,
		newLogger:  log.Initialize,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		prompt:     promptPassword,
	}
}

// rootCmd creates and configures the root command with all subcommands.
func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "pwstrength rates how strong a password is.",
		Long: `pwstrength scores a password from 0 to 100 using its length, character
classes, a character-pool entropy estimate and weak-pattern detection
(repeats, sequences, keyboard runs, common passwords), and explains how
to improve it.

The entropy figure is a theoretical upper bound, not a guessability model.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.Version = version

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.pwstrength.yaml or ./.pwstrength.yaml)")
	cmd.PersistentFlags().String("policy", "", "YAML scoring policy file (default is the canonical policy)")
	cmd.PersistentFlags().StringP("output", "o", config.OutputText, `output format ("text", "json")`)
	cmd.PersistentFlags().Bool("color", true, "colour text output")
	cmd.PersistentFlags().String("log-env", string(log.EnvDev), `logging configuration ("dev", "prod")`)

	_ = a.v.BindPFlag(config.KeyPolicy, cmd.PersistentFlags().Lookup("policy"))
	_ = a.v.BindPFlag(config.KeyOutput, cmd.PersistentFlags().Lookup("output"))
	_ = a.v.BindPFlag(config.KeyColor, cmd.PersistentFlags().Lookup("color"))
	_ = a.v.BindPFlag(config.KeyLogEnv, cmd.PersistentFlags().Lookup("log-env"))

	cmd.AddCommand(a.checkCmd())
	cmd.AddCommand(a.generateCmd())
	cmd.AddCommand(a.policyCmd())

	return cmd
}

// setup reads the configuration, builds the logger and loads the policy.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Read(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.newLogger(cfg.LogEnv)
	if err != nil {
		return err
	}
	a.logger = logger

	policy := pwstrength.CanonicalPolicy()
	if cfg.PolicyFile != "" {
		if policy, err = pwstrength.LoadPolicyFile(cfg.PolicyFile); err != nil {
			return err
		}
	}
	a.analyzer, err = pwstrength.NewAnalyzer(policy)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", cfg.ConfigFile),
		zap.Stringer("policy", policy),
		zap.String("output", cfg.Output),
	)
	return nil
}

func (a *app) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func (a *app) policyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective scoring policy as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return pwstrength.WritePolicy(a.out(cmd), a.analyzer.Policy())
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password that reaches the policy's top label.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			length := a.v.GetInt(config.KeyGenerateLength)
			pwd, err := a.analyzer.Generate(length)
			if err != nil {
				return err
			}
			a.logger.Info("password generated", zap.Int("length", length), zap.Stringer("policy", a.analyzer.Policy()))
			_, err = fmt.Fprintln(a.out(cmd), pwd)
			return err
		},
	}
	cmd.Flags().IntP("length", "l", 16, "password length")
	_ = a.v.BindPFlag(config.KeyGenerateLength, cmd.Flags().Lookup("length"))
	return cmd
}
