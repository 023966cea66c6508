package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExit(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{"no args", []string{"exit"}, 0, ""},
		{"egg", []string{"eggxit"}, 0, ""},
		{"code", []string{"exit", "3"}, 3, ""},
		{"bad code", []string{"exit", "soon"}, 2, "exit: soon: numeric argument required\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			err := RunExit(&Env{Args: tc.args, Stderr: stderr})

			assert.ErrorIs(t, err, ErrExit)
			var req *ExitRequest
			if assert.True(t, errors.As(err, &req)) {
				assert.Equal(t, tc.code, req.Code)
			}
			assert.Equal(t, tc.stderr, stderr.String())
		})
	}
}
