package cmd

import (
	"fmt"

	"github.com/seqplan/seqplan/internal/guidance"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Show a one-screen summary of both workflow phases",
	RunE:  runOutline,
}

var outlinePhase string

func init() {
	outlineCmd.Flags().StringVar(&outlinePhase, "phase", "", "show only one phase (planning or review)")
	rootCmd.AddCommand(outlineCmd)
}

// Step summaries for the outline. The authoritative content lives in
// the guidance tables; these are one-line labels only.
var planningOutline = []string{
	"1  Context, scope, approaches, constraints, success criteria",
	"2  Evaluate approaches, decide, record rejections, architecture, milestones",
	"3  Risks, uncertainty flags, milestone refinement, contract consideration",
	"4  Contract specification (optional; skip if no contracts needed)",
	"5+ Backtrack check, gap analysis, implementer walkthrough",
	"N  Final verification, write plan to file, start review",
}

var reviewOutline = []string{
	"1  @agent-technical-writer annotates the plan",
	"2  @agent-contract-specifier validates/defines contracts",
	"3  @agent-test-specifier defines test specifications",
	"4  @agent-quality-reviewer issues a verdict",
	"N  Review complete, plan approved for execution",
}

func runOutline(_ *cobra.Command, _ []string) error {
	if outlinePhase != "" {
		if _, err := guidance.ParsePhase(outlinePhase); err != nil {
			return err
		}
	}

	if outlinePhase == "" || outlinePhase == string(guidance.PhasePlanning) {
		fmt.Println("PLANNING PHASE (terminal step takes precedence over numbered steps):")
		for _, line := range planningOutline {
			fmt.Printf("  %s\n", line)
		}
	}

	if outlinePhase == "" {
		fmt.Println()
	}

	if outlinePhase == "" || outlinePhase == string(guidance.PhaseReview) {
		fmt.Println("REVIEW PHASE (numbered steps take precedence over the terminal step):")
		for _, line := range reviewOutline {
			fmt.Printf("  %s\n", line)
		}
	}

	return nil
}
