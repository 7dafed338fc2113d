package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/identity"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/spf13/cobra"
)

var verdictCmd = &cobra.Command{
	Use:   "verdict <plan-id> <verdict>",
	Short: "Record the quality reviewer's verdict on a plan",
	Long:  `Records PASS, PASS_WITH_CONCERNS, or NEEDS_CHANGES in the plan frontmatter and appends a verdict section. A NEEDS_CHANGES verdict resets the plan to review step 1.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runVerdict,
}

var verdictNotes string

func init() {
	verdictCmd.Flags().StringVar(&verdictNotes, "notes", "", "reviewer notes appended with the verdict")
	rootCmd.AddCommand(verdictCmd)
}

func runVerdict(_ *cobra.Command, args []string) error {
	id := args[0]
	v := plan.Verdict(strings.ToUpper(args[1]))
	if !plan.ValidVerdicts[v] {
		return fmt.Errorf("invalid verdict %q — use PASS, PASS_WITH_CONCERNS, or NEEDS_CHANGES", args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	plansDir, err := cfg.PlansDir()
	if err != nil {
		return fmt.Errorf("get plans dir: %w", err)
	}

	store := plan.NewStore(plansDir)
	p, err := store.Get(id)
	if err != nil {
		return err
	}

	actor := identity.Actor()
	session := identity.SessionID()

	now := time.Now().UTC()
	p.Verdict = v
	if v == plan.VerdictChanges {
		p.Phase = "review"
		p.Step = 1
	}
	plan.AppendSection(p, "Verdict", actor, session, verdictNotes,
		map[string]string{"verdict": string(v)}, now)

	if err := store.Save(p); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}

	eventsDir, err := cfg.EventsDir()
	if err != nil {
		return fmt.Errorf("get events dir: %w", err)
	}
	el := event.NewEventLog(eventsDir)
	_ = el.Append(event.Event{
		TS:      now,
		Event:   event.PlanUpdated,
		Plan:    p.ID,
		Phase:   p.Phase,
		Actor:   actor,
		Session: session,
		Data:    map[string]any{"verdict": string(v)},
	})

	fmt.Printf("Verdict %s recorded on %s\n", v, p.ID)
	if v == plan.VerdictChanges {
		fmt.Println("Plan reset to review step 1.")
	}
	return nil
}
