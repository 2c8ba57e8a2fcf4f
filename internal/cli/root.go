// Package cli implements the svcconfig command line.
package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "svcconfig",
		Short:         "Validate and inspect RPC service-config documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newValidateCmd(),
		newLookupCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command against args.
func Execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
