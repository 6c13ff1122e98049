package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sylgeist/oob-cli/pkg/router"
)

var powerCmd = &cobra.Command{
	Use:   "power <hostname>",
	Short: "Show chassis power status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.Power())
	},
}

var powerOnCmd = &cobra.Command{
	Use:   "poweron <hostname>",
	Short: "Power on the chassis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(args[0], router.PowerOn())
	},
}

// runOperation is the shared execution path for all commands: build the
// router, run one operation, print the normalized result.
func runOperation(hostname string, op router.Operation) error {
	r, err := newRouter()
	if err != nil {
		return err
	}

	res, err := r.Run(context.Background(), hostname, op)
	if err != nil {
		return err
	}

	printResult(res)
	return nil
}

func init() {
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(powerOnCmd)
}
