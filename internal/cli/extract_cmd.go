package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/cli/formatter"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/spf13/cobra"
)

func newExtractCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <utterance>",
		Short: "Extract trip context from a free-text description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := engine.WithRequestID(context.Background(), engine.NewRequestID())

			utterance := strings.Join(args, " ")
			tc := app.Engine.ExtractSlots(ctx, utterance, nil)

			fmt.Print(formatter.FormatContext(tc))
			return nil
		},
	}
}
