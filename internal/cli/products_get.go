package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/products"
)

// newProductsGetCmd creates the "products get" command.
func newProductsGetCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "get ID",
		Short:   "Show one product",
		Example: `  finprod products get trj-crd --output yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			p, err := products.NewService(c).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderProduct(cmd.OutOrStdout(), output, p)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputTable, "output format: table, json or yaml")
	return cmd
}
