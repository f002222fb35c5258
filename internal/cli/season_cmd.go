package cli

import (
	"context"
	"fmt"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/cli/formatter"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/spf13/cobra"
)

func newSeasonCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Resolve seasonal info for a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := engine.WithRequestID(context.Background(), engine.NewRequestID())

			tc := flags.resolve(ctx, app.Engine)

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner("looking up season data")
			}
			info, status := app.Engine.ResolveSeason(ctx, tc)
			stop()

			fmt.Print(formatter.FormatContext(tc))
			fmt.Println()
			fmt.Print(formatter.FormatSeason(info, status))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
