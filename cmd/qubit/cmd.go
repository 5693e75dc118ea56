package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/born-ml/qubit/internal/config"
	"github.com/born-ml/qubit/internal/experiment"
	"github.com/born-ml/qubit/internal/logger"
	"github.com/born-ml/qubit/internal/quantum"
)

const version = "v0.1.0-dev"

// app carries what the root command resolved for its subcommands.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

// experimentConfig maps the CLI configuration onto an experiment run.
func (a *app) experimentConfig() experiment.Config {
	ec := experiment.DefaultConfig()
	ec.Trials = a.cfg.Trials
	ec.Seed = a.cfg.Seed
	ec.Parallel.NumWorkers = a.cfg.Workers
	ec.Parallel.Enabled = a.cfg.Workers > 1
	ec.Logger = &a.log
	return ec
}

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "qubit",
		Short:         "Real-valued qubit simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", -1, "Random seed; negative draws a fresh one (env QUBIT_SEED)")
	flags.IntP("trials", "n", 100_000, "Number of trials (env QUBIT_TRIALS)")
	flags.Int("workers", 0, "Worker goroutines, default one per CPU (env QUBIT_WORKERS)")
	flags.String("log-level", "info", "debug, info, warn or error (env QUBIT_LOG_LEVEL)")
	flags.Bool("log-pretty", true, "Human-readable log output (env QUBIT_LOG_PRETTY)")

	rootCmd.AddCommand(
		newFiltersCmd(a),
		newSweepCmd(a),
		newBellCmd(a),
		newPrepareCmd(a),
		newInspectCmd(a),
		newMeasureCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads the environment and lets explicitly set flags override it.
func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.Load(func(c *config.Config) {
		if flags.Changed("seed") {
			c.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("trials") {
			c.Trials, _ = flags.GetInt("trials")
		}
		if flags.Changed("workers") {
			c.Workers, _ = flags.GetInt("workers")
		}
		if flags.Changed("log-level") {
			c.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-pretty") {
			c.LogPretty, _ = flags.GetBool("log-pretty")
		}
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: cmd.ErrOrStderr()})
	logger.SetGlobalLogger(a.log)
	quantum.SetLogger(a.log)

	a.log.Debug().
		Int64("seed", cfg.Seed).
		Int("trials", cfg.Trials).
		Int("workers", cfg.Workers).
		Msg("configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		// Skip configuration loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qubit %s\n", version)
		},
	}
}
