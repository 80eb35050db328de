package root

import (
	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rec := &engine.Recorder{}
			svc, cleanup, err := a.openService(ctx, rec)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, rec, cmd.OutOrStdout())
		},
	}

	return cmd
}
