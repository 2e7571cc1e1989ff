package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"axescanvas/internal/prompt"

	"github.com/spf13/cobra"
)

func newPromptCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Run the canvas from text commands on stdin",
		Long: `Reads pointer commands (down/move/up X Y, leave), filter and phrase
toggles from standard input. Clicks that open the editor are answered on the
following lines: a label (DELETE removes an edited point, CANCEL discards),
then a category number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := newState(cmd, opts)
			if err != nil {
				return err
			}
			// An interrupt ends the session even while waiting for input.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			console := prompt.NewConsole(state, cmd.InOrStdin(), cmd.OutOrStdout())
			if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
