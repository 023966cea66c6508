package pipeline

import "strings"

// PipeOperator separates stages on an input line.
const PipeOperator = "|"

// Stage is a single command in a pipeline.
type Stage struct {
	Name string   // program or builtin name, empty for a blank stage
	Args []string // remaining arguments
}

// Tokens returns the stage as a command line, name first.
func (s Stage) Tokens() []string {
	if s.Empty() {
		return []string{}
	}
	return append([]string{s.Name}, s.Args...)
}

// Empty is true for a stage with no tokens.
func (s Stage) Empty() bool {
	return s.Name == ""
}

func (s Stage) String() string {
	return strings.Join(s.Tokens(), " ")
}

// Pipeline is an ordered list of stages whose standard streams are chained.
type Pipeline struct {
	Stages []Stage
}

// IsNoop reports whether the pipeline came from a blank line.
func (p *Pipeline) IsNoop() bool {
	return len(p.Stages) == 0 || (len(p.Stages) == 1 && p.Stages[0].Empty())
}

func (p *Pipeline) String() string {
	parts := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		parts[i] = s.String()
	}
	return strings.Join(parts, " "+PipeOperator+" ")
}
