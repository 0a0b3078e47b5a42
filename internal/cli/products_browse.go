package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/tui"
)

// newProductsBrowseCmd creates the "products browse" command.
func newProductsBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse products interactively",
		Long: "Open a terminal browser over the product list: / search, 1-6 sort, " +
			"left/right pages, + page size, enter details, d delete, r reload, q quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := opts.newManager()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), m)
		},
	}
}
