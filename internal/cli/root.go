package cli

import "github.com/spf13/cobra"

// Execute runs the dm-tools command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the dm-tools command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dm-tools",
		Short:        "Dungeon master helpers for running tabletop sessions",
		Long:         "dm-tools resolves game actions against the persisted state of a session, such as searching the current room for traps.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newDetectTrapsCmd(),
		newTrapsCmd(),
	)

	return rootCmd
}
