package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/finprod/internal/listing"
	"github.com/rshade/finprod/internal/product"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// productPage is the structured form of a rendered list.
type productPage struct {
	Data []product.Product `json:"data" yaml:"data"`
	Meta listing.Meta      `json:"meta" yaml:"meta"`
}

func validateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (use %s, %s or %s)", ErrUnsupportedOutput, format, OutputTable, OutputJSON, OutputYAML)
	}
}

// renderProducts writes one page of products in format.
func renderProducts(w io.Writer, format string, items []product.Product, meta listing.Meta) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, productPage{Data: items, Meta: meta})
	case OutputYAML:
		return writeYAML(w, productPage{Data: items, Meta: meta})
	case OutputTable:
		return renderProductTable(w, items, meta)
	default:
		return validateOutput(format)
	}
}

// renderProduct writes a single product in format.
func renderProduct(w io.Writer, format string, p product.Product) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, p)
	case OutputYAML:
		return writeYAML(w, p)
	case OutputTable:
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
		fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
		fmt.Fprintf(tw, "Logo:\t%s\n", p.Logo)
		fmt.Fprintf(tw, "Released:\t%s\n", p.DateRelease)
		fmt.Fprintf(tw, "Revised:\t%s\n", p.DateRevision)
		return tw.Flush()
	default:
		return validateOutput(format)
	}
}

func renderProductTable(w io.Writer, items []product.Product, meta listing.Meta) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No products found.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tRELEASED\tREVISED\tLOGO")
		fmt.Fprintln(tw, "--\t----\t-----------\t--------\t-------\t----")
		for _, p := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Description, p.DateRelease, p.DateRevision, p.Logo)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", meta.Summary())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	return enc.Close()
}
