package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/router"
)

var bootCmd = &cobra.Command{
	Use:   "boot <hostname> <pxe|bios>",
	Short: "Set the next boot device",
	Long: `Set the boot device and boot flag for the next restart. Issues two
sequential IPMI calls; both are attempted and a failure in either is
reported, with no rollback of the other.`,
	// The boot target is validated by the router after resolution so a
	// missing sub-argument still performs the address pre-check.
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bootTarget := ""
		if len(args) > 1 {
			bootTarget = args[1]
		}
		return runOperation(args[0], router.SetBootMode(bootTarget))
	},
}

func init() {
	rootCmd.AddCommand(bootCmd)
}
