package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("blank lines return ErrEmpty", func(t *testing.T) {
		for _, line := range []string{"", "   ", "\t", "\n"} {
			_, err := Parse(line)
			assert.ErrorIs(t, err, ErrEmpty, "line %q", line)
		}
	})

	t.Run("zero-argument commands", func(t *testing.T) {
		cases := map[string]Kind{
			"help":                   KindHelp,
			"ver":                    KindVersion,
			"date":                   KindDate,
			"time":                   KindTime,
			"cls":                    KindClear,
			"clear":                  KindClear,
			"ls":                     KindList,
			"dir":                    KindList,
			"status":                 KindStatus,
			"mem":                    KindStatus,
			"system-integrity-check": KindSystemCheck,
			"ping":                   KindPing,
			"init-npu":               KindInitNPU,
			"map-emotion":            KindMapEmotion,
		}
		for line, kind := range cases {
			cmd, err := Parse(line)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, kind, cmd.Kind, "line %q", line)
			assert.Empty(t, cmd.Args, "line %q", line)
		}
	})

	t.Run("commands with arguments", func(t *testing.T) {
		cmd, err := Parse("check-module-integrity TensorMemoryDriver")
		require.NoError(t, err)
		assert.Equal(t, KindCheckModule, cmd.Kind)
		assert.Equal(t, []string{"TensorMemoryDriver"}, cmd.Args)

		cmd, err = Parse("collapse-truth joy deep now")
		require.NoError(t, err)
		assert.Equal(t, KindCollapseTruth, cmd.Kind)
		assert.Equal(t, []string{"joy", "deep", "now"}, cmd.Args)

		cmd, err = Parse("run-onnx-test models/test.onnx zeros(1,3)")
		require.NoError(t, err)
		assert.Equal(t, KindRunONNX, cmd.Kind)
		assert.Equal(t, []string{"models/test.onnx", "zeros(1,3)"}, cmd.Args)
	})

	t.Run("exit and quit are case-insensitive", func(t *testing.T) {
		for _, line := range []string{"exit", "quit", "EXIT", "Quit", "  qUiT  "} {
			cmd, err := Parse(line)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, KindExit, cmd.Kind, "line %q", line)
		}
	})

	t.Run("other commands are case-sensitive", func(t *testing.T) {
		_, err := Parse("PING")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})

	t.Run("wrong arity reports usage", func(t *testing.T) {
		cases := map[string]string{
			"check-module-integrity":          "check-module-integrity <module_name>",
			"check-module-integrity a b":      "check-module-integrity <module_name>",
			"collapse-truth joy deep":         "collapse-truth <emotion> <mode> <time>",
			"run-onnx-test models/test.onnx":  "run-onnx-test <model_path> <input_info>",
			"ping pong":                       "ping",
		}
		for line, usage := range cases {
			_, err := Parse(line)
			require.Error(t, err, "line %q", line)
			assert.Contains(t, err.Error(), "usage: "+usage, "line %q", line)
		}
	})

	t.Run("unknown token names the command", func(t *testing.T) {
		_, err := Parse("frobnicate everything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown command "frobnicate"`)
	})
}
