package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/router"
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Drive identification commands (Dell RACADM)",
}

var driveStatusCmd = &cobra.Command{
	Use:   "status <hostname>",
	Short: "List physical disks with status, size and serial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.DriveStatus())
	},
}

var driveLocateCmd = &cobra.Command{
	Use:   "locate <hostname> <on|off> <slot>",
	Short: "Toggle a drive bay locate LED",
	// State and slot are validated by the router before any transport
	// contact.
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, slot := "", ""
		if len(args) > 1 {
			state = args[1]
		}
		if len(args) > 2 {
			slot = args[2]
		}
		return runOperation(args[0], router.DriveLocate(state, slot))
	},
}

func init() {
	driveCmd.AddCommand(driveStatusCmd)
	driveCmd.AddCommand(driveLocateCmd)
	rootCmd.AddCommand(driveCmd)
}
