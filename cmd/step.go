package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/event"
	"github.com/seqplan/seqplan/internal/guidance"
	"github.com/seqplan/seqplan/internal/identity"
	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Get guidance for the current workflow step",
	Long: `Prints the required actions for a workflow position and the directive
for the next invocation. The caller advances the workflow by re-invoking
with an incremented step number; a step number at or past the total marks
the phase complete.`,
	RunE: runStep,
}

var (
	stepPhase    string
	stepNumber   int
	stepTotal    int
	stepThoughts string
	stepPlan     string
	stepSession  string
)

func init() {
	stepCmd.Flags().StringVar(&stepPhase, "phase", "planning", "workflow phase: planning or review")
	stepCmd.Flags().IntVar(&stepNumber, "step-number", 0, "current step number (>= 1)")
	stepCmd.Flags().IntVar(&stepTotal, "total-steps", 0, "total step count (>= 1)")
	stepCmd.Flags().StringVar(&stepThoughts, "thoughts", "", "your current thinking, echoed into the report")
	stepCmd.Flags().StringVar(&stepPlan, "plan", "", "plan ID to tag in the invocation log")
	stepCmd.Flags().StringVar(&stepSession, "session", "", "session ID override for the invocation log")
	_ = stepCmd.MarkFlagRequired("step-number")
	_ = stepCmd.MarkFlagRequired("total-steps")
	_ = stepCmd.MarkFlagRequired("thoughts")
	rootCmd.AddCommand(stepCmd)
}

func runStep(_ *cobra.Command, _ []string) error {
	if stepNumber < 1 || stepTotal < 1 {
		return fmt.Errorf("step-number and total-steps must be >= 1")
	}

	phase, err := guidance.ParsePhase(stepPhase)
	if err != nil {
		return err
	}

	if stepSession != "" {
		identity.SetSessionID(stepSession)
	}

	result := guidance.Select(phase, stepNumber, stepTotal)
	complete := guidance.Complete(stepNumber, stepTotal)

	printReport(phase, stepNumber, stepTotal, stepThoughts, result, complete)
	logStep(phase, stepNumber, stepTotal, complete)

	return nil
}

// printReport renders the fixed-format report. This text is the
// planner's only observable artifact; changing it changes the contract.
func printReport(phase guidance.Phase, step, total int, thoughts string, result guidance.Result, complete bool) {
	rule := strings.Repeat("=", 80)

	fmt.Println(rule)
	fmt.Printf("PLANNER - %s PHASE - Step %d of %d\n", strings.ToUpper(string(phase)), step, total)
	fmt.Println(rule)
	fmt.Println()

	status := "in_progress"
	if complete {
		status = "phase_complete"
	}
	fmt.Printf("STATUS: %s\n", status)
	fmt.Println()

	fmt.Println("YOUR THOUGHTS:")
	fmt.Println(thoughts)
	fmt.Println()

	if len(result.Actions) > 0 {
		if complete {
			fmt.Println("FINAL CHECKLIST:")
		} else {
			fmt.Println("REQUIRED ACTIONS:")
		}
		for _, action := range result.Actions {
			if action == "" {
				fmt.Println()
			} else {
				fmt.Printf("  %s\n", action)
			}
		}
		fmt.Println()
	}

	fmt.Println("NEXT:")
	fmt.Println(result.Next)
	fmt.Println()
	fmt.Println(rule)
}

// logStep appends the invocation to the audit log. Best effort: the
// report has already been printed and a logging failure must not
// change the exit status.
func logStep(phase guidance.Phase, step, total int, complete bool) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	eventsDir, err := cfg.EventsDir()
	if err != nil {
		return
	}

	name := event.PlannerStep
	if complete {
		name = event.PlannerPhaseComplete
	}

	el := event.NewEventLog(eventsDir)
	_ = el.Append(event.Event{
		TS:      time.Now().UTC(),
		Event:   name,
		Plan:    stepPlan,
		Phase:   string(phase),
		Actor:   identity.Actor(),
		Session: identity.SessionID(),
		Data:    map[string]any{"step": step, "total": total},
	})
}
