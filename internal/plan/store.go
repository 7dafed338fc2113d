package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store provides file-based plan storage.
type Store struct {
	plansDir string
}

// NewStore creates a Store that reads/writes plans in the given directory.
func NewStore(plansDir string) *Store {
	return &Store{plansDir: plansDir}
}

// ListFilter defines optional filters for listing plans.
type ListFilter struct {
	Phase   string
	Verdict Verdict
}

// Create generates a new plan and writes it to disk.
func (s *Store) Create(p *Plan) error {
	if err := os.MkdirAll(s.plansDir, 0o755); err != nil {
		return fmt.Errorf("create plans dir: %w", err)
	}

	if p.ID == "" {
		id, err := GenerateID(s.plansDir)
		if err != nil {
			return fmt.Errorf("generate ID: %w", err)
		}
		p.ID = id
	}

	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	path := filepath.Join(s.plansDir, p.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	return nil
}

// Get retrieves a plan by ID (exact match or prefix).
func (s *Store) Get(id string) (*Plan, error) {
	path, err := s.findFile(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	return Parse(data)
}

// Save writes an existing plan back to disk.
func (s *Store) Save(p *Plan) error {
	// Remove old file if it exists (ID matches but filename might differ due to timestamp)
	oldPath, err := s.findFile(p.ID)
	if err == nil && oldPath != "" {
		path := filepath.Join(s.plansDir, p.Filename())
		if oldPath != path {
			os.Remove(oldPath)
		}
	}

	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	path := filepath.Join(s.plansDir, p.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	return nil
}

// List returns all plans, optionally filtered.
func (s *Store) List(filter ListFilter) ([]*Plan, error) {
	return s.listWithParser(filter, Parse)
}

// ListMeta returns plan frontmatter data only (Body is empty).
func (s *Store) ListMeta(filter ListFilter) ([]*Plan, error) {
	return s.listWithParser(filter, ParseFrontmatter)
}

func (s *Store) listWithParser(filter ListFilter, parser func([]byte) (*Plan, error)) ([]*Plan, error) {
	entries, err := os.ReadDir(s.plansDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plans dir: %w", err)
	}

	var plans []*Plan
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.plansDir, entry.Name()))
		if err != nil {
			continue
		}

		p, err := parser(data)
		if err != nil {
			continue
		}

		if filter.Phase != "" && p.Phase != filter.Phase {
			continue
		}
		if filter.Verdict != "" && p.Verdict != filter.Verdict {
			continue
		}

		plans = append(plans, p)
	}

	return plans, nil
}

// findFile locates the file for a plan ID. Accepts the full ID or a
// unique prefix of the random part.
func (s *Store) findFile(id string) (string, error) {
	entries, err := os.ReadDir(s.plansDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("plan %s not found", id)
	}
	if err != nil {
		return "", fmt.Errorf("read plans dir: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		fileID := extractIDFromFilename(entry.Name())
		if fileID == "" {
			continue
		}
		if fileID == id || strings.HasPrefix(fileID, id) {
			matches = append(matches, filepath.Join(s.plansDir, entry.Name()))
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan %s not found", id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID %s is ambiguous (%d matches)", id, len(matches))
	}
}
