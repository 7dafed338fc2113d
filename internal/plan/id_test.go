package plan

import (
	"strings"
	"testing"
)

func TestGenerateIDFormat(t *testing.T) {
	id, err := GenerateID(t.TempDir())
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}

	if !strings.HasPrefix(id, IDPrefix) {
		t.Errorf("id = %q, want prefix %q", id, IDPrefix)
	}
	if len(id) != len(IDPrefix)+IDLength {
		t.Errorf("len(id) = %d, want %d", len(id), len(IDPrefix)+IDLength)
	}
	for _, c := range id[len(IDPrefix):] {
		if !strings.ContainsRune(base62Chars, c) {
			t.Errorf("id %q contains non-base62 char %q", id, c)
		}
	}
}

func TestExtractIDFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"2026-08-25T10:00-pl_a7Kx2m.md", "pl_a7Kx2m"},
		{"pl_abcdef.md", "pl_abcdef"},
		{"notes.md", ""},
		{"2026-08-25-pl_ab.md", ""}, // too short
		{"pl_abc!ef.md", ""},        // invalid char
	}

	for _, tt := range tests {
		if got := extractIDFromFilename(tt.name); got != tt.want {
			t.Errorf("extractIDFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
