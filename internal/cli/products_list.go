package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/catalog"
	"github.com/rshade/finprod/internal/listing"
)

type listParams struct {
	search   string
	sort     string
	page     int
	pageSize int
	all      bool
	output   string
}

// newProductsListCmd creates the "products list" command.
func newProductsListCmd(opts *rootOptions) *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products one page at a time",
		Long: "List products from the product API. The search term matches the configured " +
			"search fields case-insensitively; sorting is stable and empty values sort last.",
		Example: `  # First page with the default page size
  finprod products list

  # Products whose name or description contains "card", newest release first
  finprod products list --search card --sort date_release:desc

  # Everything at once, as JSON
  finprod products list --all --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProductsList(cmd, opts, params)
		},
	}

	cmd.Flags().StringVar(&params.search, "search", "", "case-insensitive search term")
	cmd.Flags().StringVar(&params.sort, "sort", "", "sort as field or field:asc|desc")
	cmd.Flags().IntVar(&params.page, "page", listing.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "products per page (default from config)")
	cmd.Flags().BoolVar(&params.all, "all", false, "print every matching product on one page")
	cmd.Flags().StringVarP(&params.output, "output", "o", OutputTable, "output format: table, json or yaml")

	return cmd
}

func runProductsList(cmd *cobra.Command, opts *rootOptions, params listParams) error {
	if err := validateOutput(params.output); err != nil {
		return err
	}
	field, dir, err := listing.ParseSort(params.sort)
	if err != nil {
		return err
	}

	if params.page < listing.DefaultPage {
		return fmt.Errorf("%w: got %d", catalog.ErrInvalidPage, params.page)
	}

	m, err := opts.newManager()
	if err != nil {
		return err
	}
	if err = m.SetSort(field, dir); err != nil {
		return err
	}
	if cmd.Flags().Changed("page-size") {
		if err = m.SetPageSize(params.pageSize); err != nil {
			return err
		}
	}
	m.SetSearch(params.search)

	if err = m.Load(cmd.Context()); err != nil {
		return err
	}
	if err = m.GoToPage(params.page); err != nil {
		return err
	}

	if params.all {
		items := m.Sorted()
		return renderProducts(cmd.OutOrStdout(), params.output, items, listing.NewMeta(1, max(len(items), 1), len(items)))
	}

	v := m.Current()
	opts.logger.Debug().
		Str("operation", "list").
		Int("page", v.Meta.CurrentPage).
		Int("total_items", v.Meta.TotalItems).
		Msg("rendering product page")

	if err = renderProducts(cmd.OutOrStdout(), params.output, v.Items, v.Meta); err != nil {
		return fmt.Errorf("rendering products: %w", err)
	}
	return nil
}
