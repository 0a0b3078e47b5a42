package cli

import (
	"github.com/spf13/cobra"
)

// newProductsCmd creates the products command group.
func newProductsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Product management commands",
	}
	cmd.AddCommand(
		newProductsListCmd(opts),
		newProductsGetCmd(opts),
		newProductsCreateCmd(opts),
		newProductsUpdateCmd(opts),
		newProductsDeleteCmd(opts),
		newProductsImportCmd(opts),
		newProductsBrowseCmd(opts),
	)
	return cmd
}
