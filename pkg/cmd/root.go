package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/config"
	"github.com/sylgeist/oob-cli/pkg/guard"
	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/ipmi"
	"github.com/sylgeist/oob-cli/pkg/racadm"
	"github.com/sylgeist/oob-cli/pkg/redfish"
	"github.com/sylgeist/oob-cli/pkg/router"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "oob",
	Short: "Out-of-band server management CLI",
	Long: `Operator tooling for out-of-band server management through BMC interfaces.
Resolves a hostname against the fleet inventory and performs power, sensor,
boot-mode, reboot/kdump and drive identification operations over IPMI,
the vendor management shell or Redfish.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.Log.ConfigureZerolog()
		return nil
	},
}

// Execute runs the command tree. Every failure path prints one explanatory
// line with the tool prefix and exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "oob: %v\n", err)
		os.Exit(1)
	}
}

// newRouter wires the router from configuration. All network operations
// require the service-account password.
func newRouter() (*router.Router, error) {
	if err := cfg.RequirePassword(); err != nil {
		return nil, err
	}

	resolver := inventory.NewClient(cfg.Inventory.Endpoint, cfg.Inventory.Token, cfg.Inventory.Timeout)
	notifier := guard.NewNotifier(cfg.Fleet.Endpoint, cfg.Fleet.Token, cfg.Fleet.Timeout)

	return router.New(
		resolver,
		ipmi.NewClient(cfg.IPMI),
		racadm.NewClient(cfg.IPMI),
		redfish.NewClient(cfg.IPMI),
		notifier,
	), nil
}

// printResult writes a normalized result for the operator.
func printResult(res *router.Result) {
	if res.Message != "" {
		fmt.Println(res.Message)
	}
	for _, d := range res.Disks {
		fmt.Printf("%-40s %-12s %-12s %s\n", d.Bay, d.Status, d.Size, d.Detail)
	}
	if res.Warning != "" {
		fmt.Println(res.Warning)
	}
	if res.Message == "" && len(res.Disks) == 0 && res.Output != "" {
		fmt.Println(res.Output)
	}
}
