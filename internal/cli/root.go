// Package cli defines the packlist command tree.
package cli

import (
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need to run the pipeline.
type App struct {
	Engine *engine.Engine

	// IsInteractive reports whether stdin is a terminal; gates the trip form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "packlist" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "packlist",
		Short: "Trip-aware packing list recommender",
	}

	root.AddCommand(
		newExtractCmd(app),
		newSeasonCmd(app),
		newRecommendCmd(app),
	)

	return root
}
