package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/products"
)

// Create and update errors.
var (
	ErrIDTaken      = errors.New("product id is already taken")
	ErrNothingToSet = errors.New("no fields to update")
)

// revisionOffsetYears is the default gap between release and revision.
const revisionOffsetYears = 1

type productFlags struct {
	id          string
	name        string
	description string
	logo        string
	release     string
	revision    string
}

func (f *productFlags) register(cmd *cobra.Command, withID bool) {
	if withID {
		cmd.Flags().StringVar(&f.id, "id", "", "product id (3-10 letters, digits or '-')")
	}
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.description, "description", "", "product description")
	cmd.Flags().StringVar(&f.logo, "logo", "", "logo URL")
	cmd.Flags().StringVar(&f.release, "release", "", "release date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.revision, "revision", "", "revision date (YYYY-MM-DD)")
}

// newProductsCreateCmd creates the "products create" command.
func newProductsCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		flags   productFlags
		checkID bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Long:  "Create a product. The revision date defaults to one year after the release date.",
		Example: `  finprod products create --id trj-crd --name "Credit card" \
    --description "Standard credit card" --logo https://example.com/card.png \
    --release 2025-01-01 --check-id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.build()
			if err != nil {
				return err
			}
			if err = product.Validate(p); err != nil {
				return err
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if checkID {
				taken, verifyErr := c.Verify(ctx, p.ID)
				if verifyErr != nil {
					return fmt.Errorf("verifying product id: %w", verifyErr)
				}
				if taken {
					return fmt.Errorf("%w: %q", ErrIDTaken, p.ID)
				}
			}

			msg, err := products.NewService(c).Create(ctx, &p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&checkID, "check-id", false, "verify the id is free before creating")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("release")

	return cmd
}

// build assembles a new product from the flags.
func (f *productFlags) build() (product.Product, error) {
	release, err := product.ParseDate(f.release)
	if err != nil {
		return product.Product{}, fmt.Errorf("--release: %w", err)
	}
	revision, err := product.ParseDate(f.revision)
	if err != nil {
		return product.Product{}, fmt.Errorf("--revision: %w", err)
	}
	if revision.IsZero() && !release.IsZero() {
		revision = release.AddYears(revisionOffsetYears)
	}
	return product.Product{
		ID:           f.id,
		Name:         f.name,
		Description:  f.description,
		Logo:         f.logo,
		DateRelease:  release,
		DateRevision: revision,
	}, nil
}

// newProductsUpdateCmd creates the "products update" command.
func newProductsUpdateCmd(opts *rootOptions) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:     "update ID",
		Short:   "Change fields of a product",
		Long:    "Fetch a product, apply only the flags that were given, validate and save it.",
		Example: `  finprod products update trj-crd --name "Gold credit card" --revision 2027-01-01`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			svc := products.NewService(c)
			ctx := cmd.Context()

			p, err := svc.Get(ctx, args[0])
			if err != nil {
				return err
			}
			changed, err := flags.apply(cmd, &p)
			if err != nil {
				return err
			}
			if !changed {
				return ErrNothingToSet
			}
			if err = product.Validate(p); err != nil {
				return err
			}

			msg, err := svc.Update(ctx, &p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

// apply copies every explicitly set flag onto p and reports whether any was set.
func (f *productFlags) apply(cmd *cobra.Command, p *product.Product) (bool, error) {
	set := cmd.Flags().Changed
	changed := false

	for name, pair := range map[string]struct {
		dst *string
		src string
	}{
		"name":        {&p.Name, f.name},
		"description": {&p.Description, f.description},
		"logo":        {&p.Logo, f.logo},
	} {
		if set(name) {
			*pair.dst = pair.src
			changed = true
		}
	}

	if set("release") {
		d, err := product.ParseDate(f.release)
		if err != nil {
			return false, fmt.Errorf("--release: %w", err)
		}
		p.DateRelease = d
		changed = true
	}
	if set("revision") {
		d, err := product.ParseDate(f.revision)
		if err != nil {
			return false, fmt.Errorf("--revision: %w", err)
		}
		p.DateRevision = d
		changed = true
	}
	return changed, nil
}
