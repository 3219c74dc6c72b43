package hal

import (
	"fmt"

	"go.uber.org/zap"
)

// ManifestEntry pairs a module's expected signature with the provenance
// URL the signature was published under.
type ManifestEntry struct {
	Signature string
	SourceURL string
}

// internalOnlyModule is the one core module that is verifiable through
// the internal manifest without appearing in the ledger manifest.
const internalOnlyModule = "HAL_Interface"

// forcedFailureModule is a simulation artifact: its "locally computed"
// signature is a hardcoded constant that never matches the manifest
// entry. It is not a real hashing scheme and must not be treated as one.
const (
	forcedFailureModule    = "UserInterfaceModule"
	forcedFailureSignature = "hash_ui_zxcv_FAIL"
)

// Mock is the simulated HAL backend. It returns canned strings for every
// capability and resolves signature checks against a static in-memory
// manifest. The manifest is built once in NewMock and never mutated.
type Mock struct {
	manifest map[string]ManifestEntry
	logger   *zap.Logger
}

var _ HAL = (*Mock)(nil)

// NewMock constructs the mock backend with the static ledger manifest.
// A nil logger is replaced with a no-op logger.
func NewMock(logger *zap.Logger) *Mock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mock{
		logger: logger,
		manifest: map[string]ManifestEntry{
			"SoulOS_Core": {
				Signature: "hash_core_123_abc",
				SourceURL: "gh://soulware/core/v1.0",
			},
			"TensorMemoryDriver": {
				Signature: "hash_tensor_xyz_789",
				SourceURL: "gh://soulware/tensor/v0.9",
			},
			"EmotionalResonanceEngine": {
				Signature: "hash_ere_qwerty_456",
				SourceURL: "gh://soulware/ere/v0.5",
			},
			forcedFailureModule: {
				Signature: "hash_ui_zxcv_321",
				SourceURL: "gh://soulware/ui/v1.1",
			},
		},
	}
}

// Manifest returns a copy of the ledger manifest. Callers cannot reach
// the backing map, so the manifest stays immutable for the process
// lifetime.
func (m *Mock) Manifest() map[string]ManifestEntry {
	out := make(map[string]ManifestEntry, len(m.manifest))
	for k, v := range m.manifest {
		out[k] = v
	}
	return out
}

// SystemStatus reports the fixed mock status line.
func (m *Mock) SystemStatus() (string, error) {
	return "MockStatus: System Optimal, Resonance Field Stable.", nil
}

// VerifyModuleSignature resolves the tri-state integrity check. The
// branch order is fixed: source selector first, then manifest
// membership, then signature comparison.
func (m *Mock) VerifyModuleSignature(module, source string) (Verdict, error) {
	switch source {
	case SourceLedger:
		m.logger.Debug("accessing ledger manifest",
			zap.String("module", module),
			zap.String("source", source))

		entry, ok := m.manifest[module]
		if !ok {
			m.logger.Debug("module not found in ledger manifest",
				zap.String("module", module))
			return VerdictFailed, fmt.Errorf(
				"module %q not listed in the simulated blockchain ledger", module)
		}

		// Simulated local computation: every module reproduces its
		// manifest signature except the designated failure module.
		local := entry.Signature
		if module == forcedFailureModule {
			local = forcedFailureSignature
		}

		m.logger.Debug("computed local signature",
			zap.String("module", module),
			zap.String("expected", entry.Signature),
			zap.String("local", local),
			zap.String("provenance", entry.SourceURL))

		if local != entry.Signature {
			m.logger.Debug("signature mismatch", zap.String("module", module))
			return VerdictFailed, nil
		}
		return VerdictVerified, nil

	case SourceInternal:
		m.logger.Debug("internal integrity check",
			zap.String("module", module))

		if _, ok := m.manifest[module]; ok || module == internalOnlyModule {
			return VerdictVerified, nil
		}
		return VerdictFailed, fmt.Errorf(
			"core module %q not recognized for internal check", module)

	default:
		return VerdictFailed, fmt.Errorf("unknown signature source: %q", source)
	}
}

// EmotionalMap returns the fixed mock map entries.
func (m *Mock) EmotionalMap() ([]string, error) {
	return []string{"Joy: Bright Cloud", "Sadness: Blue Mist"}, nil
}

// CollapseTruthWaveform resolves every triple to the fixed mock node.
func (m *Mock) CollapseTruthWaveform(emotion, mode, timeVector string) (string, error) {
	m.logger.Debug("collapsing truth waveform",
		zap.String("emotion", emotion),
		zap.String("mode", mode),
		zap.String("time_vector", timeVector))
	return "Waveform collapsed to 'MockMemoryNode'", nil
}

// InitializeNPU reports the fixed ready message.
func (m *Mock) InitializeNPU() (string, error) {
	return "NPU initialized and ready for ONNX models.", nil
}

// RunONNXModel echoes the request back as a templated result.
func (m *Mock) RunONNXModel(modelPath string, inputs TensorData) (TensorData, error) {
	m.logger.Debug("running ONNX model",
		zap.String("model_path", modelPath),
		zap.String("input_info", inputs.Info))
	return TensorData{
		Info: fmt.Sprintf("ONNX model %s processed with input %s", modelPath, inputs.Info),
	}, nil
}
