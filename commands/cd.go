package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// RunCd changes the shell's own working directory. Without an argument it
// goes to the home directory, or / if there is none.
func RunCd(env *Env) error {
	chdir := env.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}

	var dir string
	switch len(env.Args) {
	case 1:
		dir = homeDir(env)
	case 2:
		dir = env.Args[1]
	default:
		return fmt.Errorf("%s: too many arguments", env.Args[0])
	}

	if err := chdir(dir); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return fmt.Errorf("%s: %s: %w", env.Args[0], dir, err)
	}
	return nil
}

func homeDir(env *Env) string {
	home := env.HomeDir
	if home == nil {
		home = os.UserHomeDir
	}

	if dir, err := home(); err == nil && dir != "" {
		return dir
	}
	return "/"
}
