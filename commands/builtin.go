// Package commands implements the commands the shell runs in-process instead
// of spawning a program.
package commands

import (
	"io"
	"sort"
)

// Builtin identifies how a pipeline stage is run.
type Builtin int

const (
	// External stages are spawned as child processes.
	External Builtin = iota
	Exit
	ChangeDirectory
	Echo
	History
	Help
)

var builtinNames = map[string]Builtin{
	"exit":    Exit,
	"eggxit":  Exit,
	"cd":      ChangeDirectory,
	"echo":    Echo,
	"history": History,
	"help":    Help,
}

// Resolve maps a program name to its builtin, or External.
func Resolve(name string) Builtin {
	if b, ok := builtinNames[name]; ok {
		return b
	}
	return External
}

func (b Builtin) String() string {
	switch b {
	case External:
		return "external"
	case Exit:
		return "exit"
	case ChangeDirectory:
		return "cd"
	case Echo:
		return "echo"
	case History:
		return "history"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Names lists every name that resolves to a builtin, sorted.
func Names() []string {
	var out []string
	for name := range builtinNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Env is what a builtin may touch while it runs.
//
// Builtins that only produce output (echo, history, help) return an exit
// status like a program would. Builtins that act on the shell itself (cd,
// exit) return an error instead, which stops the pipeline.
type Env struct {
	// Args holds the full stage, Args[0] is the builtin's name.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer

	// History is a snapshot of the session history.
	History []string

	// Chdir changes the shell's working directory, defaults to os.Chdir.
	Chdir func(dir string) error
	// HomeDir finds the directory cd uses without arguments, defaults to
	// os.UserHomeDir.
	HomeDir func() (string, error)
}
