package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		expected Builtin
	}{
		{"exit", Exit},
		{"eggxit", Exit},
		{"cd", ChangeDirectory},
		{"echo", Echo},
		{"history", History},
		{"help", Help},
		{"ls", External},
		{"", External},
		{"Echo", External},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.name))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cd", "echo", "eggxit", "exit", "help", "history"}, Names())

	for _, name := range Names() {
		assert.NotEqual(t, External, Resolve(name), name)
		assert.NotEqual(t, "unknown", Resolve(name).String(), name)
	}
}
