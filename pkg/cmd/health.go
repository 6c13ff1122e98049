package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/router"
)

var healthCmd = &cobra.Command{
	Use:   "health <hostname>",
	Short: "Show sensor readings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.Health())
	},
}

var selCmd = &cobra.Command{
	Use:   "sel <hostname>",
	Short: "List the system event log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.SEL())
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(selCmd)
}
