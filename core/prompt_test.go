package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	cases := []struct {
		name  string
		dir   string
		home  string
		depth int
		want  string
	}{
		{"home", "/home/egg", "/home/egg", 3, "~>"},
		{"under home", "/home/egg/src", "/home/egg", 3, "~/src>"},
		{"deep under home", "/home/egg/src/eggshell/core", "/home/egg", 3, "src/eggshell/core>"},
		{"three under home", "/home/egg/src/eggshell", "/home/egg", 3, "~/src/eggshell>"},
		{"root", "/", "/home/egg", 3, ">"},
		{"outside home", "/usr/local/bin", "/home/egg", 3, "usr/local/bin>"},
		{"truncated", "/var/lib/docker/volumes", "/home/egg", 3, "lib/docker/volumes>"},
		{"sibling prefix", "/home/eggs/x", "/home/egg", 3, "home/eggs/x>"},
		{"no home", "/tmp", "", 3, "tmp>"},
		{"depth one", "/home/egg/src/eggshell", "/home/egg", 1, "eggshell>"},
		{"trailing slash", "/home/egg/src/", "/home/egg", 3, "~/src>"},
		{"unknown dir", "", "/home/egg", 3, ">"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Prompt(tc.dir, tc.home, tc.depth))
		})
	}
}

func TestColorPrinter(t *testing.T) {
	plain := NewColorPrinter(false)
	assert.Equal(t, "~/src>", plain.Prompt("~/src>"))
	assert.Equal(t, "oops: 3", plain.Errorf("oops: %d", 3))

	colored := NewColorPrinter(true)
	assert.Equal(t, "\x1b[36;1m~/src>\x1b[0m", colored.Prompt("~/src>"))
	assert.Equal(t, "\x1b[31;1moops: 3\x1b[0m", colored.Errorf("oops: %d", 3))
}
