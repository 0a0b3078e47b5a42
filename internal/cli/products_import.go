package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/products"
)

// newProductsImportCmd creates the "products import" command.
func newProductsImportCmd(opts *rootOptions) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create every product listed in a YAML or JSON file",
		Long: "Validate every product in FILE and create the valid ones concurrently. " +
			"Invalid or rejected products are reported and make the command fail.",
		Example: `  finprod products import products.yaml --concurrency 8`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := product.ReadFile(args[0])
			if err != nil {
				return err
			}

			valid := make([]product.Product, 0, len(items))
			var failures []products.ImportFailure
			for _, p := range items {
				if vErr := product.Validate(p); vErr != nil {
					failures = append(failures, products.ImportFailure{ID: p.ID, Err: vErr})
					continue
				}
				valid = append(valid, p)
			}

			m, err := opts.newManager()
			if err != nil {
				return err
			}
			result, err := m.Import(cmd.Context(), valid, concurrency)
			result.Failures = append(failures, result.Failures...)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d products\n", len(result.Created), len(items))
			for _, f := range result.Failures {
				cmd.PrintErrf("  %s: %v\n", f.ID, f.Err)
			}
			if err != nil {
				return err
			}
			if len(result.Failures) > 0 {
				return fmt.Errorf("%d products not imported", len(result.Failures))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", products.DefaultImportConcurrency, "maximum concurrent create calls")
	return cmd
}
