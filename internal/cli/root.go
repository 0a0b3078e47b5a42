// Package cli implements the finprod command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/finprod/internal/catalog"
	"github.com/rshade/finprod/internal/client"
	"github.com/rshade/finprod/internal/config"
	"github.com/rshade/finprod/internal/logging"
)

// stdinIsTerminal reports whether r is an interactive terminal.
//
//nolint:gochecknoglobals // Replaced in tests.
var stdinIsTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// rootOptions holds the persistent flags and the state built from them
// before any subcommand runs.
type rootOptions struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	debug      bool

	cfg       *config.Config
	logger    zerolog.Logger
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the finprod CLI.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "finprod",
		Short:         "Financial product administration",
		Long:          "finprod: list, search, create, edit and delete financial products through the product API",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			opts.logResult = setupLogging(cmd, opts)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file merged over ~/.finprod/config.yaml")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "product API base URL (overrides config and "+config.EnvAPIURL+")")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for API calls (overrides config)")

	cmd.AddCommand(newProductsCmd(opts), newServeCmd(opts), newVersionCmd(ver))
	return cmd
}

const rootCmdExample = `  # List the first page of products
  finprod products list

  # Search and sort, second page of 10
  finprod products list --search card --sort date_release:desc --page 2 --page-size 10

  # Create a product (revision defaults to one year after release)
  finprod products create --id trj-crd --name "Credit card" \
    --description "Standard credit card" --logo https://example.com/card.png --release 2025-01-01

  # Delete without a confirmation prompt
  finprod products delete trj-crd --yes

  # Browse interactively
  finprod products browse

  # Run the reference API locally
  finprod serve --seed products.yaml`

// loadConfig builds the effective config: files, then env, then flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = o.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = o.timeout
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg
	return nil
}

// newClient returns an API client for the configured base URL.
func (o *rootOptions) newClient() (*client.Client, error) {
	c, err := client.New(o.cfg.API.BaseURL, client.WithTimeout(o.cfg.API.Timeout))
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}
	return c, nil
}

// newManager returns a list manager shaped by the list config section.
func (o *rootOptions) newManager() (*catalog.Manager, error) {
	c, err := o.newClient()
	if err != nil {
		return nil, err
	}
	return catalog.New(c,
		catalog.WithPageSizes(o.cfg.List.PageSizes),
		catalog.WithDefaultPageSize(o.cfg.List.DefaultPageSize),
		catalog.WithSearchFields(o.cfg.List.SearchFields),
		catalog.WithLogger(logging.ComponentLogger(o.logger, "catalog")),
	), nil
}
