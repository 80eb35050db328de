package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newRmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Abandon a quest (XP already earned is kept)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			svc, cleanup, err := a.session(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.ResolveID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			res, err := svc.DeleteTask(ctx, id)
			if err != nil {
				return err
			}
			if !res.Saved {
				return errors.New("could not save the quest log; the quest was kept")
			}
			fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconTrash+" Abandoned"), res.Task.Title)
			return nil
		},
	}

	return cmd
}
