package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/router"
)

var nvmeCmd = &cobra.Command{
	Use:   "nvme",
	Short: "NVMe drive commands (Redfish)",
}

var nvmeStatusCmd = &cobra.Command{
	Use:   "status <hostname>",
	Short: "List NVMe drives with location, capacity and health",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.NvmeStatus())
	},
}

var nvmeLocateCmd = &cobra.Command{
	Use:   "locate <hostname> <on|off> <slot>",
	Short: "Toggle an NVMe bay locate LED",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, slot := "", ""
		if len(args) > 1 {
			state = args[1]
		}
		if len(args) > 2 {
			slot = args[2]
		}
		return runOperation(args[0], router.NvmeLocate(state, slot))
	},
}

func init() {
	nvmeCmd.AddCommand(nvmeStatusCmd)
	nvmeCmd.AddCommand(nvmeLocateCmd)
	rootCmd.AddCommand(nvmeCmd)
}
