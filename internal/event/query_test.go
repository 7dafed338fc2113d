package event

import (
	"testing"
	"time"
)

func seedLog(t *testing.T, dir string) {
	t.Helper()
	log := NewEventLog(dir)

	events := []Event{
		{TS: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), Event: PlanCreated, Plan: "pl_aaaaaa", Phase: "planning", Session: "sess-1"},
		{TS: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC), Event: PlannerStep, Plan: "pl_aaaaaa", Phase: "planning", Session: "sess-1"},
		{TS: time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC), Event: PlannerStep, Plan: "pl_bbbbbb", Phase: "review", Session: "sess-2"},
		{TS: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC), Event: PlannerPhaseComplete, Plan: "pl_aaaaaa", Phase: "review", Session: "sess-3"},
	}
	for _, e := range events {
		if err := log.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
}

func TestQueryByPlan(t *testing.T) {
	dir := t.TempDir()
	seedLog(t, dir)

	got, err := QueryEvents(dir, Query{PlanID: "pl_aaaaaa"})
	if err != nil {
		t.Fatalf("QueryEvents: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestQueryByPhase(t *testing.T) {
	dir := t.TempDir()
	seedLog(t, dir)

	got, err := QueryEvents(dir, Query{Phase: "review"})
	if err != nil {
		t.Fatalf("QueryEvents: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestQueryByDateRange(t *testing.T) {
	dir := t.TempDir()
	seedLog(t, dir)

	got, err := QueryEvents(dir, Query{
		After:  time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("QueryEvents: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Plan != "pl_bbbbbb" {
		t.Errorf("plan = %q, want pl_bbbbbb", got[0].Plan)
	}
}

func TestQueryMissingDir(t *testing.T) {
	got, err := QueryEvents("/nonexistent/path", Query{})
	if err != nil {
		t.Fatalf("QueryEvents on missing dir: %v", err)
	}
	if got != nil {
		t.Errorf("got = %v, want nil", got)
	}
}

func TestSessionsForPlan(t *testing.T) {
	dir := t.TempDir()
	seedLog(t, dir)

	got, err := SessionsForPlan(dir, "pl_aaaaaa")
	if err != nil {
		t.Fatalf("SessionsForPlan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sessions = %v, want 2 unique", got)
	}
	if got[0] != "sess-1" || got[1] != "sess-3" {
		t.Errorf("sessions = %v, want [sess-1 sess-3]", got)
	}
}
