// Package plan stores plan documents as markdown files with YAML
// frontmatter. The planner never reads these during guidance
// selection; they are the artifact the workflow produces.
package plan

import "time"

// Verdict is the quality reviewer's judgement recorded on a plan.
type Verdict string

const (
	VerdictNone     Verdict = ""
	VerdictPass     Verdict = "PASS"
	VerdictConcerns Verdict = "PASS_WITH_CONCERNS"
	VerdictChanges  Verdict = "NEEDS_CHANGES"
)

// ValidVerdicts is the set of all valid non-empty verdict values.
var ValidVerdicts = map[Verdict]bool{
	VerdictPass:     true,
	VerdictConcerns: true,
	VerdictChanges:  true,
}

// Plan represents a plan document with frontmatter and body.
type Plan struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	Phase      string    `yaml:"phase"`
	Step       int       `yaml:"step"`
	TotalSteps int       `yaml:"total-steps"`
	Verdict    Verdict   `yaml:"verdict"`
	Created    time.Time `yaml:"created"`
	Updated    time.Time `yaml:"updated"`
	Tags       []string  `yaml:"tags"`

	// Body is the markdown body below the frontmatter.
	Body string `yaml:"-"`
}

// Filename returns the expected filename for this plan.
// Format: 2026-08-25T10:00-pl_xxxxxx.md
func (p *Plan) Filename() string {
	return p.Created.UTC().Format("2006-01-02T15:04") + "-" + p.ID + ".md"
}

// SkeletonBody is the scaffold for a fresh plan document. The section
// headings match what the review-phase delegates look for.
const SkeletonBody = `# Plan

## Planning Context

### Decision Log

### Rejected Alternatives

### Known Risks

## Invisible Knowledge

## Milestones
`
