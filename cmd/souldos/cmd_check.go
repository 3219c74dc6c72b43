// Package main command handling for the one-shot integrity surface.
// These are the scriptable twins of the in-shell integrity commands:
// same semantics, but exit-code driven for use outside the loop.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"souldos/internal/hal"
	"souldos/internal/shell"
)

var checkSource string

// checkCmd verifies a single module and exits 0 only on a Verified
// verdict.
var checkCmd = &cobra.Command{
	Use:   "check [module]",
	Short: "Verify one module's signature and exit",
	Long: `Verifies a module's integrity without entering the shell.

The source selector picks the trust path:
  ledger    simulated blockchain ledger (default)
  internal  internal manifest used for core modules

Exit code is 0 on VERIFIED, 1 on FAILED or lookup error.

Example:
  souldos check TensorMemoryDriver
  souldos check HAL_Interface --source internal`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// doctorCmd runs the full integrity sweep once, exactly as the in-shell
// system-integrity-check does.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run the full system integrity sweep and exit",
	RunE:  runDoctor,
}

func init() {
	checkCmd.Flags().StringVar(&checkSource, "source", "ledger", "Signature source: ledger or internal")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var source string
	switch checkSource {
	case "ledger":
		source = hal.SourceLedger
	case "internal":
		source = hal.SourceInternal
	default:
		return fmt.Errorf("unknown source %q (want ledger or internal)", checkSource)
	}

	module := args[0]
	backend := hal.NewMock(logger)
	verdict, err := backend.VerifyModuleSignature(module, source)
	if err != nil {
		return fmt.Errorf("verification error for %q: %w", module, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Verification Result for '%s': %s\n", module, verdict)
	if verdict != hal.VerdictVerified {
		return fmt.Errorf("verification failed for %q", module)
	}
	return nil
}

func runDoctor(cmd *cobra.Command, args []string) error {
	s := shell.New(hal.NewMock(logger), cfg, strings.NewReader(""), cmd.OutOrStdout(), appVersion, logger)
	s.SystemIntegrityCheck()
	return nil
}
