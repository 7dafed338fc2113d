// Package guidance is the core of the planner: a pure mapping from a
// workflow position (phase, step number, total steps) to the canned
// instruction block for that position. It performs no I/O and keeps no
// state — continuity across steps is the caller's responsibility.
package guidance

import "fmt"

// Phase selects which step table is consulted.
type Phase string

const (
	// PhasePlanning is the step-based planning workflow with forced
	// reflection pauses.
	PhasePlanning Phase = "planning"

	// PhaseReview orchestrates delegate annotation and validation of a
	// written plan before execution.
	PhaseReview Phase = "review"
)

// ParsePhase resolves a phase flag value to a Phase.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhasePlanning:
		return PhasePlanning, nil
	case PhaseReview:
		return PhaseReview, nil
	}
	return "", fmt.Errorf("unknown phase %q — use planning or review", s)
}

// Result is the guidance for a single step.
type Result struct {
	// Actions is the ordered checklist for the current step. Empty
	// entries are vertical spacing for the renderer, not content.
	Actions []string

	// Next describes the mandatory next invocation. Never empty: a
	// terminal step's Next announces completion instead of a follow-up.
	Next string
}

// Complete reports whether the position is terminal for its phase.
// There is no upper bound: a step number far past the total is treated
// the same as the final step.
func Complete(step, total int) bool {
	return step >= total
}

// Select returns the guidance for the given workflow position. It is
// total over all step/total pairs with both values >= 1; range
// validation belongs to the CLI layer.
func Select(phase Phase, step, total int) Result {
	if phase == PhaseReview {
		return Review(step, total)
	}
	return Planning(step, total)
}
