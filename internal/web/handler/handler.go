// Package handler implements the HTTP handlers for the web viewer.
// The viewer is read-only: plans are created and advanced from the CLI.
package handler

import (
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/seqplan/seqplan/internal/web/sse"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store     *plan.Store
	eventsDir string
	broker    *sse.Broker
}

// New creates a new Handler.
func New(plansDir, eventsDir string, broker *sse.Broker) *Handler {
	return &Handler{
		store:     plan.NewStore(plansDir),
		eventsDir: eventsDir,
		broker:    broker,
	}
}

// recentEvents queries the most recent events, limited to count.
func recentEvents(eventsDir string, q event.Query, limit int) []event.Event {
	events, err := event.QueryEvents(eventsDir, q)
	if err != nil {
		return nil
	}
	// Events come sorted chronologically; keep the tail.
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	// Reverse so newest is first.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}
