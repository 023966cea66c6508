package commands

import (
	"fmt"
)

// RunHistory prints the session history with line numbers.
func RunHistory(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "history [-n COUNT]",
		Short: "Display the history list with line numbers.",
	}
	count := cmd.Flags().IntLong("count", 'n', 0, "only show the last COUNT entries", "COUNT")

	return cmd.Run(env, func() int {
		if *count < 0 {
			fmt.Fprintf(env.Stderr, "%s: %d: invalid count\n", env.Args[0], *count)
			return 1
		}

		start := 0
		if *count > 0 && *count < len(env.History) {
			start = len(env.History) - *count
		}

		for i := start; i < len(env.History); i++ {
			fmt.Fprintf(env.Stdout, "% 5d  %s\n", i+1, env.History[i])
		}
		return 0
	})
}
