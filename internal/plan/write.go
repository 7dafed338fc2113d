package plan

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontmatterData is the YAML-serializable frontmatter structure.
// We use a separate struct to control field ordering and time formatting.
type frontmatterData struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Phase      string   `yaml:"phase"`
	Step       int      `yaml:"step"`
	TotalSteps int      `yaml:"total-steps"`
	Verdict    Verdict  `yaml:"verdict"`
	Created    string   `yaml:"created"`
	Updated    string   `yaml:"updated"`
	Tags       []string `yaml:"tags"`
}

// Marshal serializes a Plan to markdown bytes (frontmatter + body).
func Marshal(p *Plan) ([]byte, error) {
	fm := frontmatterData{
		ID:         p.ID,
		Title:      p.Title,
		Phase:      p.Phase,
		Step:       p.Step,
		TotalSteps: p.TotalSteps,
		Verdict:    p.Verdict,
		Created:    p.Created.UTC().Format(time.RFC3339),
		Updated:    p.Updated.UTC().Format(time.RFC3339),
		Tags:       p.Tags,
	}

	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(yamlBytes)
	b.WriteString("---\n")

	if p.Body != "" {
		b.WriteString(p.Body)
	}

	return []byte(b.String()), nil
}

// AppendSection appends a new section to the plan body.
// Format:
//
//	## <heading> — <timestamp>
//	**actor:** <actor> (session: <session>)
//	**key:** value
//
//	<content>
func AppendSection(p *Plan, heading, actor, session, content string, fields map[string]string, ts time.Time) {
	var b strings.Builder

	// Ensure body ends with newline before appending
	if p.Body != "" && !strings.HasSuffix(p.Body, "\n") {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n## %s — %s\n", heading, ts.UTC().Format(time.RFC3339))
	if actor != "" {
		if session != "" {
			fmt.Fprintf(&b, "**actor:** %s (session: %s)\n", actor, session)
		} else {
			fmt.Fprintf(&b, "**actor:** %s\n", actor)
		}
	}

	for k, v := range fields {
		fmt.Fprintf(&b, "**%s:** %s\n", k, v)
	}

	if content != "" {
		b.WriteString("\n")
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
	}

	p.Body += b.String()
	p.Updated = ts
}
