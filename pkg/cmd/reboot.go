package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/guard"
	"github.com/sylgeist/oob-cli/pkg/router"
)

var (
	rebootMagic  string
	rebootReason string
	kdumpMagic   string
	kdumpReason  string
)

var rebootCmd = &cobra.Command{
	Use:   "reboot <hostname> --magic <token> --reason <why>",
	Short: "Power cycle a host (requires confirmation)",
	Long: `Power cycle a host through its BMC. Destructive: requires the
hostname-derived confirmation token and a reason, and marks the host
offline in fleet status (best effort).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if rebootMagic == "" {
			return confirmationHint("reboot", args[0])
		}
		return runOperation(args[0], router.Reboot(rebootMagic, rebootReason))
	},
}

var kdumpCmd = &cobra.Command{
	Use:   "kdump <hostname> --magic <token> --reason <why>",
	Short: "Trigger a kernel crash dump via diagnostic interrupt (requires confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if kdumpMagic == "" {
			return confirmationHint("kdump", args[0])
		}
		return runOperation(args[0], router.Kdump(kdumpMagic, kdumpReason))
	},
}

// confirmationHint tells the operator how to confirm. The token is an
// anti-fat-finger device derived from the hostname, not a secret.
func confirmationHint(operation, hostname string) error {
	return fmt.Errorf("%s is destructive: re-run with --magic %s and a --reason", operation, guard.Token(hostname))
}

func init() {
	rebootCmd.Flags().StringVar(&rebootMagic, "magic", "", "confirmation token for this hostname")
	rebootCmd.Flags().StringVar(&rebootReason, "reason", "", "reason recorded in fleet status")
	kdumpCmd.Flags().StringVar(&kdumpMagic, "magic", "", "confirmation token for this hostname")
	kdumpCmd.Flags().StringVar(&kdumpReason, "reason", "", "reason recorded in fleet status")

	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(kdumpCmd)
}
