package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the invocation log",
	Long:  `Shows recorded step invocations and plan lifecycle events, newest last.`,
	RunE:  runLog,
}

var (
	logPlan    string
	logPhase   string
	logSession string
	logToday   bool
	logLimit   int
)

func init() {
	logCmd.Flags().StringVar(&logPlan, "plan", "", "filter by plan ID")
	logCmd.Flags().StringVar(&logPhase, "phase", "", "filter by phase (planning or review)")
	logCmd.Flags().StringVar(&logSession, "session", "", "filter by session ID")
	logCmd.Flags().BoolVar(&logToday, "today", false, "only show today's events")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "show at most N most recent events")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir, err := cfg.EventsDir()
	if err != nil {
		return err
	}

	q := event.Query{
		PlanID:  logPlan,
		Phase:   logPhase,
		Session: logSession,
	}
	if logToday {
		now := time.Now()
		q.After = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	events, err := event.QueryEvents(dir, q)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}

	if logLimit > 0 && len(events) > logLimit {
		events = events[len(events)-logLimit:]
	}

	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range events {
		plan := e.Plan
		if plan == "" {
			plan = "-"
		}
		detail := ""
		if step, ok := e.Data["step"]; ok {
			detail = fmt.Sprintf("step %v of %v", step, e.Data["total"])
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.TS.Local().Format("2006-01-02 15:04"), e.Event, plan, e.Phase, e.Actor, detail)
	}
	return w.Flush()
}
