// Package main is the souldos entry point: the SoulWare command shell
// over the hardware abstraction layer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"souldos/internal/config"
	"souldos/internal/hal"
	"souldos/internal/shell"
)

// appVersion is the user-visible version line.
const appVersion = "0.0.1-alpha"

var (
	// Global flags
	verbose    bool
	noColor    bool
	configPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Run without arguments it starts
// the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "souldos",
	Short: "SoulDOS - interactive shell for the SoulWare HAL",
	Long: `SoulDOS is the command shell for the SoulWare runtime.

It dispatches a fixed command set (integrity checks, status, NPU and
model operations) against the hardware abstraction layer. The current
backend is the simulated HAL: canned responses plus a static signature
manifest with one module designated to fail verification.

Run without arguments to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if noColor {
			cfg.Shell.NoColor = true
		}

		zcfg := zap.NewProductionConfig()
		if cfg.Logging.Development {
			zcfg = zap.NewDevelopmentConfig()
		}
		if level, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
			zcfg.Level = zap.NewAtomicLevelAt(level)
		}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s := shell.New(hal.NewMock(logger), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), appVersion, logger)
		return s.Run(cmd.Context())
	},
}

// versionCmd prints the version line and exits.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the SoulWare CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "SoulWare CLI Version %s\n", appVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".souldos/config.yaml", "Path to the config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(doctorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
