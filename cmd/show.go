package cmd

import (
	"fmt"
	"os"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/plan"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show full plan detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	id := args[0]

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
		return fmt.Errorf("get plan: %w", err)
	}

	data, err := plan.Marshal(p)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
