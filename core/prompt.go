package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Prompt renders the working directory dir as a prompt: its last depth
// components followed by ">". A dir inside home is shown relative to "~".
func Prompt(dir, home string, depth int) string {
	var parts []string
	if rel, ok := relativeToHome(dir, home); ok {
		parts = append([]string{"~"}, splitPath(rel)...)
	} else {
		parts = splitPath(dir)
	}

	if depth > 0 && len(parts) > depth {
		parts = parts[len(parts)-depth:]
	}
	return strings.Join(parts, "/") + ">"
}

func relativeToHome(dir, home string) (string, bool) {
	if dir == "" || home == "" {
		return "", false
	}

	rel, err := filepath.Rel(filepath.Clean(home), filepath.Clean(dir))
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

func splitPath(p string) []string {
	var out []string
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part != "" && part != "." {
			out = append(out, part)
		}
	}
	return out
}

// ColorPrinter colors the shell's own output when enabled.
type ColorPrinter struct {
	enabled bool

	prompt *color.Color
	err    *color.Color
}

func NewColorPrinter(enabled bool) *ColorPrinter {
	return &ColorPrinter{
		enabled: enabled,
		prompt:  forcedColor(color.FgCyan, color.Bold),
		err:     forcedColor(color.FgRed, color.Bold),
	}
}

// forcedColor ignores color's own terminal detection, ColorPrinter decides.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (c *ColorPrinter) sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.enabled {
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

// Prompt colors a prompt string.
func (c *ColorPrinter) Prompt(prompt string) string {
	return c.sprintf(c.prompt, "%s", prompt)
}

// Errorf formats a diagnostic line.
func (c *ColorPrinter) Errorf(format string, a ...interface{}) string {
	return c.sprintf(c.err, format, a...)
}
