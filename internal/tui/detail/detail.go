package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/finprod/internal/product"
)

const (
	labelWidth  = 14
	minWidth    = 40
	placeholder = "-"
)

//nolint:gochecknoglobals // Shared styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Render formats p for a terminal of the given width.
func Render(p product.Product, width int) string {
	rows := []struct{ label, value string }{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Description", p.Description},
		{"Logo", p.Logo},
		{"Released", p.DateRelease.String()},
		{"Revised", p.DateRevision.String()},
	}

	inner := max(width, minWidth) - labelWidth - 4
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("PRODUCT %s", p.ID)))
	for _, r := range rows {
		value := r.value
		if strings.TrimSpace(value) == "" {
			value = placeholder
		}
		sb.WriteString("\n")
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(r.label),
			valueStyle.Width(inner).Render(value),
		))
	}
	return boxStyle.Render(sb.String())
}

// Plain formats p without styling, one "label: value" line per field.
func Plain(p product.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:          %s\n", p.ID)
	fmt.Fprintf(&sb, "Name:        %s\n", p.Name)
	fmt.Fprintf(&sb, "Description: %s\n", p.Description)
	fmt.Fprintf(&sb, "Logo:        %s\n", orPlaceholder(p.Logo))
	fmt.Fprintf(&sb, "Released:    %s\n", orPlaceholder(p.DateRelease.String()))
	fmt.Fprintf(&sb, "Revised:     %s\n", orPlaceholder(p.DateRevision.String()))
	return sb.String()
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
