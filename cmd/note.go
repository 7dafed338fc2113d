package cmd

import (
	"fmt"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/identity"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <plan-id> <message>",
	Short: "Append a note section to a plan",
	Args:  cobra.ExactArgs(2),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(_ *cobra.Command, args []string) error {
	id, message := args[0], args[1]

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
	plan.AppendSection(p, "Note", actor, session, message, nil, now)

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
		Data:    map[string]any{"note": message},
	})

	fmt.Printf("Note added to %s\n", p.ID)
	return nil
}
