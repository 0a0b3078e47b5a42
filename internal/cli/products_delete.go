package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/products"
)

// ErrDeleteAborted is returned when the user declines the confirmation.
var ErrDeleteAborted = errors.New("delete aborted")

// newProductsDeleteCmd creates the "products delete" command.
func newProductsDeleteCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Long: "Delete a product. An interactive terminal is asked to confirm unless --yes is given; " +
			"non-interactive input deletes without asking.",
		Example: `  finprod products delete trj-crd --yes`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			svc := products.NewService(c)
			ctx := cmd.Context()

			if !yes && stdinIsTerminal(cmd.InOrStdin()) {
				p, getErr := svc.Get(ctx, id)
				if getErr != nil {
					return getErr
				}
				question := fmt.Sprintf("Delete product %q (%s)?", p.Name, p.ID)
				if !confirm(cmd.OutOrStdout(), cmd.InOrStdin(), question) {
					return ErrDeleteAborted
				}
			}

			msg, err := svc.Delete(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
