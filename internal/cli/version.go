package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the "version" command.
func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the finprod version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "finprod version %s\n", ver)
			return nil
		},
	}
}
