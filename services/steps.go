package services

import (
	"context"
	"fmt"
	"strings"
)

// persistStep is one write of a multi-record workflow.
type persistStep struct {
	name string
	run  func(ctx context.Context) error
}

// StepError reports the step that failed and the steps committed before it.
// Committed rows are not rolled back.
type StepError struct {
	Step      string
	Committed []string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed after [%s]: %v", e.Step, strings.Join(e.Committed, ", "), e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// runSteps executes steps in order and stops at the first failure.
func runSteps(ctx context.Context, steps []persistStep) ([]string, error) {
	committed := make([]string, 0, len(steps))
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			return committed, &StepError{Step: st.name, Committed: committed, Err: err}
		}
		committed = append(committed, st.name)
	}
	return committed, nil
}
