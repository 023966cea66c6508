package commands

import (
	"fmt"
	"strings"
)

// RunHelp lists the builtins.
func RunHelp(env *Env) int {
	w := env.Stdout
	fmt.Fprintln(w, "eggshell builtins:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(Names(), "\n"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands may be joined with '|' to form a pipeline.")
	return 0
}
