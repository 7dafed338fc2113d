package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/guidance"
	"github.com/seqplan/seqplan/internal/identity"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new plan document",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var newTags string

func init() {
	newCmd.Flags().StringVar(&newTags, "tags", "", "comma-separated tags")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	title := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var tags []string
	if newTags != "" {
		for _, t := range strings.Split(newTags, ",") {
			tags = append(tags, strings.TrimSpace(t))
		}
	}

	now := time.Now().UTC()
	p := &plan.Plan{
		Title:      title,
		Phase:      string(guidance.PhasePlanning),
		Step:       1,
		TotalSteps: cfg.Defaults.PlanningSteps,
		Created:    now,
		Updated:    now,
		Tags:       tags,
		Body:       plan.SkeletonBody,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	plansDir, err := cfg.PlansDir()
	if err != nil {
		return fmt.Errorf("get plans dir: %w", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("ensure dirs: %w", err)
	}

	store := plan.NewStore(plansDir)
	if err := store.Create(p); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}

	// Log event
	eventsDir, err := cfg.EventsDir()
	if err != nil {
		return fmt.Errorf("get events dir: %w", err)
	}
	el := event.NewEventLog(eventsDir)
	_ = el.Append(event.Event{
		TS:      now,
		Event:   event.PlanCreated,
		Plan:    p.ID,
		Phase:   p.Phase,
		Actor:   identity.Actor(),
		Session: identity.SessionID(),
		Data:    map[string]any{"title": title},
	})

	fmt.Printf("Created %s: %s\n", p.ID, title)
	fmt.Printf("\nStart planning with:\n")
	fmt.Printf("  sp step --step-number 1 --total-steps %d --plan %s --thoughts \"%s\"\n",
		p.TotalSteps, p.ID, title)
	return nil
}
