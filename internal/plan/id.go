package plan

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"
)

const (
	// IDPrefix is the prefix for all plan IDs.
	IDPrefix = "pl_"

	// IDLength is the number of random base62 characters after the prefix.
	IDLength = 6

	// base62Chars is the character set for base62 encoding.
	base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateID creates a new unique plan ID (pl_xxxxxx).
// It checks for collisions against existing files in plansDir.
func GenerateID(plansDir string) (string, error) {
	existing, err := existingIDs(plansDir)
	if err != nil {
		return "", fmt.Errorf("scan existing IDs: %w", err)
	}

	for range 100 {
		id, err := randomID()
		if err != nil {
			return "", err
		}
		if !existing[id] {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique ID after 100 attempts")
}

// randomID generates a random pl_xxxxxx ID.
func randomID() (string, error) {
	max := big.NewInt(int64(len(base62Chars)))
	var b strings.Builder
	b.WriteString(IDPrefix)
	for range IDLength {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random: %w", err)
		}
		b.WriteByte(base62Chars[n.Int64()])
	}
	return b.String(), nil
}

// existingIDs scans the plans directory and returns a set of existing plan IDs.
func existingIDs(plansDir string) (map[string]bool, error) {
	ids := make(map[string]bool)

	entries, err := os.ReadDir(plansDir)
	if os.IsNotExist(err) {
		return ids, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id := extractIDFromFilename(entry.Name()); id != "" {
			ids[id] = true
		}
	}

	return ids, nil
}

// extractIDFromFilename extracts the plan ID from a filename like
// 2026-08-25T10:00-pl_a7Kx2m.md
func extractIDFromFilename(name string) string {
	idx := strings.Index(name, IDPrefix)
	if idx < 0 {
		return ""
	}
	rest := name[idx:]
	if len(rest) < len(IDPrefix)+IDLength {
		return ""
	}
	id := rest[:len(IDPrefix)+IDLength]
	for _, c := range id[len(IDPrefix):] {
		if !strings.ContainsRune(base62Chars, c) {
			return ""
		}
	}
	return id
}
