// Package event records planner invocations as an append-only audit
// trail. The log is write-after-render: nothing in the guidance
// selection path reads it.
package event

import "time"

// Event type constants.
const (
	PlannerStep          = "planner.step"
	PlannerPhaseComplete = "planner.phase-complete"

	PlanCreated = "plan.created"
	PlanUpdated = "plan.updated"
)

// Event represents a single event in the invocation log.
type Event struct {
	TS      time.Time      `json:"ts"`
	Event   string         `json:"event"`
	Plan    string         `json:"plan"`
	Phase   string         `json:"phase"`
	Actor   string         `json:"actor"`
	Session string         `json:"session"`
	Data    map[string]any `json:"data"`
}
