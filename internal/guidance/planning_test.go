package guidance

import (
	"strings"
	"testing"
)

func TestPlanning_NumberedSteps(t *testing.T) {
	tests := []struct {
		step   int
		total  int
		marker string
	}{
		{1, 4, "<step_1_checklist>"},
		{2, 4, "<step_2_evaluate_first>"},
		{3, 4, "<step_3_risks>"},
		{4, 5, "<contract_specification_step>"},
		{1, 2, "<step_1_checklist>"},
		{2, 3, "<step_2_evaluate_first>"},
	}

	for _, tt := range tests {
		got := Planning(tt.step, tt.total)
		joined := strings.Join(got.Actions, "\n")
		if !strings.Contains(joined, tt.marker) {
			t.Errorf("Planning(%d, %d) actions missing %q", tt.step, tt.total, tt.marker)
		}
		if strings.Contains(joined, "FINAL VERIFICATION") {
			t.Errorf("Planning(%d, %d) returned the terminal checklist for a non-terminal step", tt.step, tt.total)
		}
	}
}

func TestPlanning_TerminalTakesPrecedence(t *testing.T) {
	// Terminal wins even over the step-1 case: with total 1, step 1
	// yields final verification immediately.
	tests := []struct {
		step  int
		total int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{5, 5},
		{9, 4},
		{100, 1},
	}

	for _, tt := range tests {
		got := Planning(tt.step, tt.total)
		joined := strings.Join(got.Actions, "\n")
		if !strings.Contains(joined, "FINAL VERIFICATION") {
			t.Errorf("Planning(%d, %d) = non-terminal, want final verification", tt.step, tt.total)
		}
		if !strings.Contains(got.Next, "PLANNING PHASE COMPLETE") {
			t.Errorf("Planning(%d, %d) next = %q, want completion directive", tt.step, tt.total, got.Next)
		}
		if !strings.Contains(got.Next, "--phase review --step-number 1") {
			t.Errorf("Planning(%d, %d) next should point at review step 1", tt.step, tt.total)
		}
	}
}

func TestPlanning_TerminalIdenticalPastTotal(t *testing.T) {
	atTotal := Planning(4, 4)
	pastTotal := Planning(17, 4)

	if len(atTotal.Actions) != len(pastTotal.Actions) {
		t.Fatalf("terminal actions differ in length: %d vs %d", len(atTotal.Actions), len(pastTotal.Actions))
	}
	for i := range atTotal.Actions {
		if atTotal.Actions[i] != pastTotal.Actions[i] {
			t.Errorf("terminal action %d differs: %q vs %q", i, atTotal.Actions[i], pastTotal.Actions[i])
		}
	}
	if atTotal.Next != pastTotal.Next {
		t.Errorf("terminal next differs: %q vs %q", atTotal.Next, pastTotal.Next)
	}
}

func TestPlanning_RecheckReportsRemaining(t *testing.T) {
	tests := []struct {
		step      int
		total     int
		remaining string
	}{
		{5, 8, "3 step(s) remaining"},
		{6, 7, "1 step(s) remaining"},
		{5, 10, "5 step(s) remaining"},
	}

	for _, tt := range tests {
		got := Planning(tt.step, tt.total)
		joined := strings.Join(got.Actions, "\n")
		if !strings.Contains(joined, "<backtrack_check>") {
			t.Errorf("Planning(%d, %d) missing backtrack check", tt.step, tt.total)
		}
		if !strings.Contains(got.Next, tt.remaining) {
			t.Errorf("Planning(%d, %d) next = %q, want substring %q", tt.step, tt.total, got.Next, tt.remaining)
		}
	}
}

func TestPlanning_NextPointsAtFollowingStep(t *testing.T) {
	tests := []struct {
		step  int
		total int
		want  string
	}{
		{1, 4, "Invoke step 2"},
		{2, 4, "Invoke step 3"},
		{4, 6, "Invoke step 5"},
		{5, 8, "Invoke step 6"},
	}

	for _, tt := range tests {
		got := Planning(tt.step, tt.total)
		if !strings.Contains(got.Next, tt.want) {
			t.Errorf("Planning(%d, %d) next = %q, want substring %q", tt.step, tt.total, got.Next, tt.want)
		}
	}
}

func TestPlanning_Step3OffersContractBranch(t *testing.T) {
	got := Planning(3, 5)
	if !strings.Contains(got.Next, "If contracts needed") {
		t.Errorf("step 3 next = %q, want contract branch", got.Next)
	}
	if !strings.Contains(got.Next, "If no contracts") {
		t.Errorf("step 3 next = %q, want skip branch", got.Next)
	}
}

func TestPlanning_NextNeverEmpty(t *testing.T) {
	for step := 1; step <= 12; step++ {
		for total := 1; total <= 12; total++ {
			got := Planning(step, total)
			if got.Next == "" {
				t.Errorf("Planning(%d, %d) next is empty", step, total)
			}
		}
	}
}

func TestPlanning_Deterministic(t *testing.T) {
	a := Planning(2, 4)
	b := Planning(2, 4)

	if a.Next != b.Next {
		t.Errorf("next differs between calls: %q vs %q", a.Next, b.Next)
	}
	if len(a.Actions) != len(b.Actions) {
		t.Fatalf("actions differ in length between calls")
	}
	for i := range a.Actions {
		if a.Actions[i] != b.Actions[i] {
			t.Errorf("action %d differs between calls", i)
		}
	}
}
