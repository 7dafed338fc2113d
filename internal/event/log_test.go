package event

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestAppendBasic(t *testing.T) {
	dir := t.TempDir()
	log := NewEventLog(dir)

	ts := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	e := Event{
		TS:    ts,
		Event: PlannerStep,
		Plan:  "pl_a7Kx2m",
		Phase: "planning",
		Actor: "agent",
		Data:  map[string]any{"step": 1, "total": 4},
	}

	if err := log.Append(e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Verify file exists with correct name.
	path := filepath.Join(dir, "2026-08-25.jsonl")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	// Parse the line back.
	var got Event
	if err := json.Unmarshal(data[:len(data)-1], &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Plan != "pl_a7Kx2m" {
		t.Errorf("plan = %q, want %q", got.Plan, "pl_a7Kx2m")
	}
	if got.Event != PlannerStep {
		t.Errorf("event = %q, want %q", got.Event, PlannerStep)
	}
	if got.Phase != "planning" {
		t.Errorf("phase = %q, want %q", got.Phase, "planning")
	}

	// Verify trailing newline.
	if data[len(data)-1] != '\n' {
		t.Error("expected trailing newline")
	}
}

func TestAppendMultipleLines(t *testing.T) {
	dir := t.TempDir()
	log := NewEventLog(dir)

	ts := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i := range 3 {
		e := Event{
			TS:    ts.Add(time.Duration(i) * time.Minute),
			Event: PlannerStep,
			Plan:  "pl_test01",
		}
		if err := log.Append(e); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	path := filepath.Join(dir, "2026-08-25.jsonl")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	if count != 3 {
		t.Errorf("line count = %d, want 3", count)
	}
}

func TestDailyRotation(t *testing.T) {
	dir := t.TempDir()
	log := NewEventLog(dir)

	day1 := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)
	day3 := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{day1, day2, day3} {
		e := Event{
			TS:    ts,
			Event: PlannerStep,
			Plan:  "pl_rotate",
		}
		if err := log.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	// Verify three separate files.
	for _, name := range []string{"2026-08-25.jsonl", "2026-08-26.jsonl", "2026-09-01.jsonl"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected file %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("file %s is empty", name)
		}
	}
}

func TestConcurrentAppends(t *testing.T) {
	dir := t.TempDir()
	log := NewEventLog(dir)

	ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func(i int) {
			defer wg.Done()
			e := Event{
				TS:    ts,
				Event: PlannerStep,
				Plan:  "pl_concur",
				Data:  map[string]any{"i": i},
			}
			if err := log.Append(e); err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	path := filepath.Join(dir, "2026-08-25.jsonl")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	// Every line must be valid JSON: flock prevents interleaved writes.
	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Errorf("line %d is not valid JSON: %v", count, err)
		}
		count++
	}
	if count != n {
		t.Errorf("line count = %d, want %d", count, n)
	}
}
