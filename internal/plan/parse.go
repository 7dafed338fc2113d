package plan

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse parses a markdown plan file content into a Plan.
// The format is:
//
//	---
//	<yaml frontmatter>
//	---
//
//	<markdown body>
func Parse(data []byte) (*Plan, error) {
	content := string(data)

	frontmatter, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	p, err := parseFrontmatter(frontmatter)
	if err != nil {
		return nil, err
	}
	p.Body = body

	return p, nil
}

// ParseFrontmatter parses only the YAML frontmatter section into a Plan.
// Body is intentionally left empty.
func ParseFrontmatter(data []byte) (*Plan, error) {
	content := string(data)
	frontmatter, _, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}
	return parseFrontmatter(frontmatter)
}

func parseFrontmatter(frontmatter string) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal([]byte(frontmatter), &p); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return &p, nil
}

// splitFrontmatter splits markdown content into frontmatter YAML and body.
// Expects --- on the first line and a closing --- on its own line.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(content, "---") {
		return "", "", fmt.Errorf("missing opening frontmatter delimiter")
	}

	// Find the closing ---
	// Skip the first line (the opening ---)
	rest := content[3:]
	if len(rest) > 0 && rest[0] == '\n' {
		rest = rest[1:]
	}

	before, after, found := strings.Cut(rest, "\n---")
	if !found {
		return "", "", fmt.Errorf("missing closing frontmatter delimiter")
	}

	frontmatter = before
	if len(after) > 0 && after[0] == '\n' {
		after = after[1:]
	}

	return frontmatter, after, nil
}
