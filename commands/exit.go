package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrExit matches any request to leave the shell.
var ErrExit = errors.New("exit")

// ExitRequest asks the shell to terminate with Code.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// Is makes errors.Is(err, ErrExit) true for every exit request.
func (e *ExitRequest) Is(target error) bool {
	return target == ErrExit
}

// RunExit implements exit and eggxit. It always returns an *ExitRequest; an
// optional argument sets the exit code.
func RunExit(env *Env) error {
	code := 0
	if len(env.Args) > 1 {
		n, err := strconv.Atoi(env.Args[1])
		if err != nil {
			fmt.Fprintf(env.Stderr, "%s: %s: numeric argument required\n", env.Args[0], env.Args[1])
			n = 2
		}
		code = n
	}

	return &ExitRequest{Code: code}
}
