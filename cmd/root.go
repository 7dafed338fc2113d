package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sp",
	Short:         "seqplan — two-phase sequential planning workflow for AI coding agents",
	Long:          `A guidance dispatcher that forces a multi-step reflective planning process: a planning phase with reflection pauses between steps, then a review phase that orchestrates delegate annotation and validation before execution. Each invocation is stateless; the caller carries the workflow forward by re-invoking with the next step number.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
