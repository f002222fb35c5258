package cli

import (
	"context"
	"fmt"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/cli/formatter"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var flags contextFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Run the full pipeline and print a packing list",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := engine.WithRequestID(context.Background(), engine.NewRequestID())

			tc := flags.resolve(ctx, app.Engine)

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runTripForm(tc); err != nil {
					return err
				}
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner("building packing list")
			}
			info, status := app.Engine.ResolveSeason(ctx, tc)
			list := app.Engine.RecommendProducts(ctx, tc)
			rationale := app.Engine.ComposeRationale(ctx, tc, info)
			stop()

			fmt.Print(formatter.FormatContext(tc))
			fmt.Println()
			fmt.Print(formatter.FormatSeason(info, status))
			fmt.Println()
			fmt.Print(formatter.FormatRecommendations(list, rationale))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in trip details through a form")
	return cmd
}
