package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routekit/svcconfig/internal/snapshot"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <file> </service/method>",
		Short: "Resolve one call path against a compiled document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]
			snap, err := snapshot.Load(file)
			if err != nil {
				return err
			}
			opts, ok := snap.Table.Lookup(path)
			if !ok {
				return fmt.Errorf("no method config for %q", path)
			}
			b, err := json.MarshalIndent(opts, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
