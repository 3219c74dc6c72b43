package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"souldos/internal/config"
	"souldos/internal/hal"
	"souldos/internal/ui"
)

// bootModules are checked against the internal manifest during the boot
// sequence, in this order. The sequence is fixed and never retried.
var bootModules = []string{"SoulOS_Core", "TensorMemoryDriver", "HAL_Interface"}

// Shell owns the read-eval-print loop. All user-facing output goes to
// out; diagnostics go to the zap logger. The HAL instance is the only
// state shared across commands and is never mutated.
type Shell struct {
	hal     hal.HAL
	cfg     config.Config
	in      *bufio.Reader
	out     io.Writer
	theme   ui.Theme
	logger  *zap.Logger
	version string

	// now is swappable so date/time output is testable.
	now func() time.Time
}

// New constructs a shell over the given HAL and streams. A nil logger
// is replaced with a no-op logger.
func New(h hal.HAL, cfg config.Config, in io.Reader, out io.Writer, version string, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		hal:     h,
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     out,
		theme:   ui.NewTheme(cfg.Shell.NoColor),
		logger:  logger,
		version: version,
		now:     time.Now,
	}
}

// Run prints the boot sequence and enters the loop. It returns nil on
// exit/quit or end of input; a read failure other than EOF is logged
// and returned. Context cancellation is checked between commands; the
// blocking read itself is not interruptible.
func (s *Shell) Run(ctx context.Context) error {
	s.Boot()

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("shell context done", zap.Error(err))
			return err
		}

		fmt.Fprintf(s.out, "\n%s", s.theme.Prompt.Render(strings.TrimRight(s.cfg.Shell.Prompt, " "))+" ")

		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				s.logger.Debug("input stream closed")
				return nil
			}
			s.logger.Error("failed to read input", zap.Error(err))
			return fmt.Errorf("failed to read input: %w", err)
		}

		cmd, perr := Parse(line)
		if perr != nil {
			if perr == ErrEmpty {
				continue
			}
			fmt.Fprintln(s.out, s.theme.Err.Render(perr.Error()))
			continue
		}
		if cmd.Kind == KindExit {
			s.logger.Info("session ended by user")
			return nil
		}

		s.dispatch(cmd)
	}
}

// Boot prints the welcome banner and runs the fixed startup sequence:
// three internal manifest checks, one status fetch, one NPU init.
// Failures are printed and execution continues.
func (s *Shell) Boot() {
	sessionID := uuid.NewString()
	s.logger.Info("interactive session starting",
		zap.String("session_id", sessionID),
		zap.String("version", s.version))

	fmt.Fprintln(s.out, s.theme.RenderBanner(s.version))
	fmt.Fprintln(s.out, "Initializing System...")

	fmt.Fprintln(s.out, "\nPerforming initial system integrity check...")
	for _, name := range bootModules {
		verdict, err := s.hal.VerifyModuleSignature(name, hal.SourceInternal)
		switch {
		case err != nil:
			fmt.Fprintf(s.out, "  %s integrity: %s - %v\n", name, s.theme.Fail.Render("Check FAILED"), err)
		case verdict == hal.VerdictVerified:
			fmt.Fprintf(s.out, "  %s integrity: %s\n", name, s.theme.Ok.Render("Verified"))
		default:
			fmt.Fprintf(s.out, "  %s integrity: %s\n", name, s.theme.Fail.Render("Check FAILED"))
		}
	}

	fmt.Fprintln(s.out, "\nFetching initial system status...")
	if status, err := s.hal.SystemStatus(); err != nil {
		fmt.Fprintf(s.out, "Failed to get status: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "System Status: %s\n", status)
	}

	fmt.Fprintln(s.out, "\nAttempting to initialize NPU...")
	if msg, err := s.hal.InitializeNPU(); err != nil {
		fmt.Fprintf(s.out, "NPU Initialization Failed: %v\n", err)
	} else {
		fmt.Fprintln(s.out, msg)
	}

	fmt.Fprintln(s.out, "\nSystem Initialized. Type 'help' for available commands.")
}

// dispatch executes one parsed command. Every arm is print-only.
func (s *Shell) dispatch(cmd Command) {
	switch cmd.Kind {
	case KindHelp:
		s.printHelp()

	case KindVersion:
		fmt.Fprintf(s.out, "SoulWare CLI Version %s\n", s.version)

	case KindDate:
		fmt.Fprintln(s.out, s.now().Format("2006-01-02"))

	case KindTime:
		fmt.Fprintln(s.out, s.now().Format("15:04:05"))

	case KindClear:
		fmt.Fprint(s.out, "\x1b[2J\x1b[H")

	case KindList:
		fmt.Fprintln(s.out, "Placeholder: Listing directory contents or module status...")

	case KindStatus:
		if status, err := s.hal.SystemStatus(); err != nil {
			fmt.Fprintf(s.out, "Error getting system status: %v\n", err)
		} else {
			fmt.Fprintln(s.out, status)
		}

	case KindCheckModule:
		s.checkModuleIntegrity(cmd.Args[0])

	case KindSystemCheck:
		s.SystemIntegrityCheck()

	case KindPing:
		fmt.Fprintln(s.out, "pong!")

	case KindInitNPU:
		if msg, err := s.hal.InitializeNPU(); err != nil {
			fmt.Fprintf(s.out, "Error initializing NPU: %v\n", err)
		} else {
			fmt.Fprintln(s.out, msg)
		}

	case KindMapEmotion:
		s.mapEmotion()

	case KindCollapseTruth:
		s.collapseTruth(cmd.Args[0], cmd.Args[1], cmd.Args[2])

	case KindRunONNX:
		s.runONNXTest(cmd.Args[0], cmd.Args[1])
	}
}

// checkModuleIntegrity verifies one module against the simulated
// blockchain ledger and prints the verdict.
func (s *Shell) checkModuleIntegrity(name string) {
	fmt.Fprintf(s.out, "\nVerifying module '%s' using %s...\n", name, hal.SourceLedger)

	verdict, err := s.hal.VerifyModuleSignature(name, hal.SourceLedger)
	if err != nil {
		fmt.Fprintf(s.out, "Error during verification for '%s': %s\n", name, s.theme.Err.Render(err.Error()))
		return
	}

	style := s.theme.Ok
	if verdict == hal.VerdictFailed {
		style = s.theme.Fail
	}
	fmt.Fprintf(s.out, "Verification Result for '%s': %s\n", name, style.Render(verdict.String()))
}

// SystemIntegrityCheck runs the fixed sweep over both trust sources.
// The ledger section deliberately includes the designated failure
// module and a nonexistent one so all three outcomes are exercised.
func (s *Shell) SystemIntegrityCheck() {
	fmt.Fprintln(s.out, "\nPerforming comprehensive system integrity check...")

	fmt.Fprintln(s.out, "\n"+s.theme.Section.Render("--- Internal Manifest Checks ---"))
	for _, name := range bootModules {
		s.printCheckLine(name, hal.SourceInternal)
	}

	fmt.Fprintln(s.out, "\n"+s.theme.Section.Render("--- GitHub Blockchain Ledger (Simulated) Checks ---"))
	s.printCheckLine("EmotionalResonanceEngine", hal.SourceLedger)
	s.printCheckLine("UserInterfaceModule", hal.SourceLedger)
	s.printCheckLine("NonExistentModule", hal.SourceLedger)

	fmt.Fprintln(s.out, "\nSystem integrity check complete.")
}

func (s *Shell) printCheckLine(name, source string) {
	fmt.Fprintf(s.out, "  Checking '%s' (source: %s): ", name, source)
	verdict, err := s.hal.VerifyModuleSignature(name, source)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "%s - %v\n", s.theme.Err.Render("ERROR"), err)
	case verdict == hal.VerdictVerified:
		fmt.Fprintln(s.out, s.theme.Ok.Render("VERIFIED"))
	default:
		fmt.Fprintln(s.out, s.theme.Fail.Render("FAILED"))
	}
}

func (s *Shell) mapEmotion() {
	fmt.Fprintln(s.out, "\nFetching emotional map from Tensor Field...")
	entries, err := s.hal.EmotionalMap()
	if err != nil {
		fmt.Fprintf(s.out, "Error fetching emotional map: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Current Emotional Map in Tensor Field:")
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "  Emotional map is currently clear.")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(s.out, "  - %s\n", entry)
	}
}

func (s *Shell) collapseTruth(emotion, mode, timeVector string) {
	fmt.Fprintf(s.out, "\nAttempting to collapse truth waveform for emotion '%s', mode '%s', time '%s'...\n",
		emotion, mode, timeVector)
	node, err := s.hal.CollapseTruthWaveform(emotion, mode, timeVector)
	if err != nil {
		fmt.Fprintf(s.out, "Error during truth collapse: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Tensor Waveform Collapse Result: '%s'\n", node)
}

func (s *Shell) runONNXTest(modelPath, inputInfo string) {
	out, err := s.hal.RunONNXModel(modelPath, hal.TensorData{Info: inputInfo})
	if err != nil {
		fmt.Fprintf(s.out, "Error running ONNX model: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "ONNX Model Output: %s\n", out.Info)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	for _, row := range [][2]string{
		{"help", "Show this help"},
		{"ver", "Show version information"},
		{"date", "Show the current date"},
		{"time", "Show the current time"},
		{"cls, clear", "Clear the screen"},
		{"ls, dir", "List directory contents or module status (placeholder)"},
		{"status, mem", "Show system status and memory resonance"},
		{"check-module-integrity <module_name>", "Verify a module against the simulated ledger"},
		{"system-integrity-check", "Run the full integrity sweep"},
		{"ping", "Check shell responsiveness"},
		{"init-npu", "Initialize the NPU"},
		{"map-emotion", "Show the emotional map"},
		{"collapse-truth <emotion> <mode> <time>", "Collapse a truth waveform"},
		{"run-onnx-test <model_path> <input_info>", "Run a test ONNX model"},
		{"exit, quit", "Leave the shell"},
	} {
		fmt.Fprintf(s.out, "  %-41s %s\n", row[0], s.theme.Dim.Render(row[1]))
	}
}
