package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routekit/svcconfig/internal/snapshot"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse and compile a service-config document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if snap.HasPolicy {
				fmt.Fprintf(out, "loadBalancingPolicy: %s\n", snap.Policy)
			}
			fmt.Fprintf(out, "method configs: %d\n", snap.Table.Len())
			for _, p := range snap.Table.Paths() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}
}
