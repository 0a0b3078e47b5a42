package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/logging"
	"github.com/rshade/finprod/internal/mockapi"
	"github.com/rshade/finprod/internal/product"
)

// newServeCmd creates the "serve" command running the in-memory product API.
func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr, seed string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the in-memory product API",
		Long:    "Serve the product REST API from memory, optionally seeded from a YAML or JSON file.",
		Example: `  finprod serve --addr 127.0.0.1:3002 --seed products.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = opts.cfg.Server.Addr
			}
			if !cmd.Flags().Changed("seed") {
				seed = opts.cfg.Server.SeedFile
			}

			var items []product.Product
			if seed != "" {
				var err error
				if items, err = product.ReadFile(seed); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := mockapi.NewServer(mockapi.NewStore(items...),
				mockapi.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "mockapi")),
				mockapi.WithDebug(opts.debug),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving product API on http://%s (%d products)\n", addr, len(items))
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&seed, "seed", "", "YAML or JSON file with initial products")
	return cmd
}
