package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/finprod/internal/catalog"
)

// Run starts the interactive browser and blocks until the user quits.
func Run(ctx context.Context, manager *catalog.Manager) error {
	p := tea.NewProgram(NewBrowseModel(ctx, manager), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running product browser: %w", err)
	}
	return nil
}
