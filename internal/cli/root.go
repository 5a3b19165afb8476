// Package cli implements the workoutctl command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the workoutctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "workoutctl",
		Short:         "Summarize workout logs from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSummaryCommand(), newTypesCommand())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
