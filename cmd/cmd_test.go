package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/identity"
	"github.com/seqplan/seqplan/internal/plan"
)

// testEnv sets up a temp config, plans dir, and events dir.
// It sets SEQPLAN_DIR so config.Load() and EventsDir() use the test paths.
type testEnv struct {
	ConfigDir string
	PlansDir  string
	EventsDir string
	Store     *plan.Store
	EventLog  *event.EventLog
	Config    *config.Config
}

// newTestEnv creates a fully isolated test environment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	baseDir := t.TempDir()
	configDir := filepath.Join(baseDir, "config")
	plansDir := filepath.Join(configDir, "plans")
	eventsDir := filepath.Join(configDir, "events")

	for _, dir := range []string{configDir, plansDir, eventsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create dir %s: %v", dir, err)
		}
	}

	configContent := "[settings]\nplans_path = \"" + plansDir + "\"\n"
	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config.toml: %v", err)
	}

	t.Setenv("SEQPLAN_DIR", configDir)
	t.Setenv("CLAUDE_SESSION_ID", "")
	t.Setenv("CLAUDECODE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	return &testEnv{
		ConfigDir: configDir,
		PlansDir:  plansDir,
		EventsDir: eventsDir,
		Store:     plan.NewStore(plansDir),
		EventLog:  event.NewEventLog(eventsDir),
		Config:    cfg,
	}
}

// createPlan creates a test plan with the given title and phase.
func (e *testEnv) createPlan(t *testing.T, title, phase string) *plan.Plan {
	t.Helper()

	now := time.Now().UTC()
	p := &plan.Plan{
		Title:      title,
		Phase:      phase,
		Step:       1,
		TotalSteps: 4,
		Created:    now,
		Updated:    now,
		Tags:       []string{},
		Body:       plan.SkeletonBody,
	}

	if err := e.Store.Create(p); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	return p
}

// runCmd executes a cobra command with the given args and captures stdout.
// Commands use fmt.Printf (writes to os.Stdout), so we redirect os.Stdout
// to a pipe to capture output.
func (e *testEnv) runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stdout = w

	// Reset global flag vars to avoid state leakage between tests
	resetFlags()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	r.Close()

	return string(out), execErr
}

// resetFlags resets package-level flag variables to their defaults
// so tests don't leak state between runs.
func resetFlags() {
	stepPhase = "planning"
	stepNumber = 0
	stepTotal = 0
	stepThoughts = ""
	stepPlan = ""
	stepSession = ""
	newTags = ""
	listPhase = ""
	listVerdict = ""
	logPlan = ""
	logPhase = ""
	logSession = ""
	logToday = false
	logLimit = 0
	outlinePhase = ""
	verdictNotes = ""
	identity.SetSessionID("")
}
