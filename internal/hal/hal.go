// Package hal defines the hardware abstraction layer contract for the
// SoulWare runtime. The shell never talks to hardware directly; every
// capability (status, signature verification, NPU access, model
// execution) goes through the HAL interface so the backing
// implementation can be swapped without touching the command layer.
package hal

// TensorData is a placeholder for actual tensor payloads. The mock
// backend only carries a human-readable description.
type TensorData struct {
	Info string
}

// Verdict is the outcome of a signature comparison. A lookup that cannot
// produce a verdict at all (unknown module, unknown source) is reported
// as an error instead, so callers see three distinct outcomes.
type Verdict int

const (
	// VerdictFailed means the locally computed signature did not match
	// the expected one.
	VerdictFailed Verdict = iota
	// VerdictVerified means the signatures matched.
	VerdictVerified
)

// String returns the display form used in shell output.
func (v Verdict) String() string {
	if v == VerdictVerified {
		return "VERIFIED"
	}
	return "FAILED"
}

// Signature source selectors recognized by VerifyModuleSignature.
// Any other selector is rejected before the module name is examined.
const (
	// SourceLedger routes verification through the simulated blockchain
	// ledger manifest.
	SourceLedger = "GitHubBlockchainLedger (Simulated)"
	// SourceInternal routes verification through the internal manifest
	// used for core modules during boot.
	SourceInternal = "InternalManifest"
)

// HAL is the capability set exposed to the command shell. Exactly one
// implementation exists today (the mock backend); the contract is kept
// narrow so a real backend can slot in behind it later.
type HAL interface {
	// SystemStatus reports the current system health line.
	SystemStatus() (string, error)

	// VerifyModuleSignature checks module integrity against the given
	// signature source. The verdict distinguishes a signature mismatch
	// from a failed lookup: mismatches return (VerdictFailed, nil),
	// unknown modules or sources return a non-nil error.
	VerifyModuleSignature(module, source string) (Verdict, error)

	// EmotionalMap returns the current entries in the tensor field's
	// emotional map.
	EmotionalMap() ([]string, error)

	// CollapseTruthWaveform resolves an emotion/mode/time triple to a
	// memory node identifier.
	CollapseTruthWaveform(emotion, mode, timeVector string) (string, error)

	// InitializeNPU prepares the neural processing unit for model runs.
	InitializeNPU() (string, error)

	// RunONNXModel executes a model against the given inputs.
	RunONNXModel(modelPath string, inputs TensorData) (TensorData, error)
}
