package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStage is returned for a pipeline with a blank stage such as "a | | b".
var ErrEmptyStage = errors.New("empty command in pipeline")

// Parse splits line on the pipe operator and each stage on runs of
// whitespace. There is no quoting.
//
// A blank line yields a single empty stage, which callers treat as a no-op.
// A line with several stages where any of them is blank is an error wrapping
// ErrEmptyStage.
func Parse(line string) (*Pipeline, error) {
	segments := strings.Split(strings.TrimSpace(line), PipeOperator)

	p := &Pipeline{}
	for _, segment := range segments {
		var stage Stage
		if fields := strings.Fields(segment); len(fields) > 0 {
			stage.Name = fields[0]
			stage.Args = fields[1:]
		}
		p.Stages = append(p.Stages, stage)
	}

	if len(p.Stages) > 1 {
		for i, stage := range p.Stages {
			if stage.Empty() {
				return nil, fmt.Errorf("stage %d: %w", i+1, ErrEmptyStage)
			}
		}
	}

	return p, nil
}
