package commands

import (
	"fmt"
	"io"
	"strings"
)

// EchoPayload is what echo writes: the arguments joined by single spaces and
// a trailing newline.
func EchoPayload(args []string) string {
	return strings.Join(args, " ") + "\n"
}

// RunEcho writes the echo payload for env.Args to env.Stdout. Options are not
// interpreted.
func RunEcho(env *Env) int {
	if _, err := io.WriteString(env.Stdout, EchoPayload(env.Args[1:])); err != nil {
		fmt.Fprintf(env.Stderr, "%s: write error: %v\n", env.Args[0], err)
		return 1
	}
	return 0
}
