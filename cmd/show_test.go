package cmd

import (
	"strings"
	"testing"
)

func TestShow_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlan(t, "shown plan", "planning")

	out, err := env.runCmd(t, "show", p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "id: "+p.ID) {
		t.Errorf("output = %q, want frontmatter id", out)
	}
	if !strings.Contains(out, "title: shown plan") {
		t.Errorf("output = %q, want frontmatter title", out)
	}
	if !strings.Contains(out, "## Planning Context") {
		t.Errorf("output = %q, want plan body", out)
	}
}

func TestShow_PrefixMatch(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlan(t, "prefix plan", "planning")

	// First 9 chars: "pl_" plus 6 random chars is the full ID,
	// so use a shorter unique prefix.
	prefix := p.ID[:6]
	out, err := env.runCmd(t, "show", prefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, p.ID) {
		t.Errorf("output = %q, want resolved plan %s", out, p.ID)
	}
}

func TestShow_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runCmd(t, "show", "pl_zzzzzz")
	if err == nil {
		t.Fatal("expected error for missing plan")
	}
}
