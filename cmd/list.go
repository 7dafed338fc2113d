package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans with optional filters",
	RunE:  runList,
}

var (
	listPhase   string
	listVerdict string
)

func init() {
	listCmd.Flags().StringVar(&listPhase, "phase", "", "filter by phase (planning or review)")
	listCmd.Flags().StringVar(&listVerdict, "verdict", "", "filter by verdict (PASS, PASS_WITH_CONCERNS, NEEDS_CHANGES)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	plansDir, err := cfg.PlansDir()
	if err != nil {
		return fmt.Errorf("get plans dir: %w", err)
	}

	if listVerdict != "" && !plan.ValidVerdicts[plan.Verdict(listVerdict)] {
		return fmt.Errorf("invalid verdict %q", listVerdict)
	}

	store := plan.NewStore(plansDir)
	plans, err := store.ListMeta(plan.ListFilter{
		Phase:   listPhase,
		Verdict: plan.Verdict(listVerdict),
	})
	if err != nil {
		return fmt.Errorf("list plans: %w", err)
	}

	if len(plans) == 0 {
		fmt.Println("No plans found.")
		return nil
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Updated.After(plans[j].Updated)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range plans {
		verdict := string(p.Verdict)
		if verdict == "" {
			verdict = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n",
			p.ID, p.Phase, p.Step, p.TotalSteps, verdict, truncate(p.Title, 40)); err != nil {
			return err
		}
	}

	return w.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
