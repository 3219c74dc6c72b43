// Package shell implements the SoulDOS interactive loop: a closed
// command grammar parsed from whitespace-delimited input lines and
// dispatched against the HAL. Commands are parsed fresh per line and
// never mutate shared state; all side effects are prints.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the fixed shell operations.
type Kind int

const (
	KindHelp Kind = iota
	KindVersion
	KindDate
	KindTime
	KindClear
	KindList
	KindStatus
	KindCheckModule
	KindSystemCheck
	KindPing
	KindInitNPU
	KindMapEmotion
	KindCollapseTruth
	KindRunONNX
	KindExit
)

// Command is one parsed input line. Args holds the positional arguments
// in grammar order (module name, or emotion/mode/time, or
// model_path/input_info).
type Command struct {
	Kind Kind
	Args []string
}

// ErrEmpty is returned for blank input lines. The loop treats it as a
// no-op rather than an error to report.
var ErrEmpty = errors.New("empty input")

type cmdSpec struct {
	kind  Kind
	arity int
	usage string
}

// grammar maps command tokens (case-sensitive) to their spec. Aliases
// share a spec. exit/quit are matched case-insensitively in Parse.
var grammar = map[string]cmdSpec{
	"help":                   {kind: KindHelp, usage: "help"},
	"ver":                    {kind: KindVersion, usage: "ver"},
	"date":                   {kind: KindDate, usage: "date"},
	"time":                   {kind: KindTime, usage: "time"},
	"cls":                    {kind: KindClear, usage: "cls"},
	"clear":                  {kind: KindClear, usage: "clear"},
	"ls":                     {kind: KindList, usage: "ls"},
	"dir":                    {kind: KindList, usage: "dir"},
	"status":                 {kind: KindStatus, usage: "status"},
	"mem":                    {kind: KindStatus, usage: "mem"},
	"check-module-integrity": {kind: KindCheckModule, arity: 1, usage: "check-module-integrity <module_name>"},
	"system-integrity-check": {kind: KindSystemCheck, usage: "system-integrity-check"},
	"ping":                   {kind: KindPing, usage: "ping"},
	"init-npu":               {kind: KindInitNPU, usage: "init-npu"},
	"map-emotion":            {kind: KindMapEmotion, usage: "map-emotion"},
	"collapse-truth":         {kind: KindCollapseTruth, arity: 3, usage: "collapse-truth <emotion> <mode> <time>"},
	"run-onnx-test":          {kind: KindRunONNX, arity: 2, usage: "run-onnx-test <model_path> <input_info>"},
}

// Parse tokenizes one input line against the fixed grammar. A blank
// line returns ErrEmpty; an unknown token or wrong argument count
// returns a descriptive error with the usage form.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	token := fields[0]
	if len(fields) == 1 && (strings.EqualFold(token, "exit") || strings.EqualFold(token, "quit")) {
		return Command{Kind: KindExit}, nil
	}

	spec, ok := grammar[token]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q (type 'help' for available commands)", token)
	}
	args := fields[1:]
	if len(args) != spec.arity {
		return Command{}, fmt.Errorf("usage: %s", spec.usage)
	}
	return Command{Kind: spec.kind, Args: args}, nil
}
