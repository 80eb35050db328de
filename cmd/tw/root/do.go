package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newDoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}
			if !res.Saved {
				return errors.New("could not save the quest log; no XP was awarded")
			}

			note := ""
			switch {
			case res.XP.IsBonus:
				note = ui.Good.Render(" (early)")
			case res.XP.IsPenalty:
				note = ui.Warn.Render(" (late)")
			}
			fmt.Fprintf(out, "%s %s%s\n", ui.Good.Render(ui.IconDone+" Completed"), res.Title, note)
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			if res.LevelUp {
				fmt.Fprintln(out, ui.BadgeLevelUp)
			}
			return nil
		},
	}

	return cmd
}
