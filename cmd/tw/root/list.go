package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/storage"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List open quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			svc, cleanup, err := a.session(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.ActiveTasks(ctx)
			if all {
				tasks = svc.Tasks(ctx)
			}

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Quest Log"))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests. Try: tw add \"Something small\""))
				return nil
			}
			today := svc.Today()
			for _, t := range tasks {
				printTask(out, svc.Rules(), t, today)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")

	return cmd
}

func printTask(out io.Writer, rules engine.Rules, t storage.Task, today clock.Date) {
	icon := ui.KindIcon(t.IsGoal)
	if t.Completed {
		icon = ui.IconDone
	}
	line := fmt.Sprintf("%s %s %s %s", icon, ui.Muted.Render(shortID(t.ID)), t.Title, ui.DifficultyText(t.Difficulty))

	switch {
	case t.Completed:
		line += " " + ui.Dim.Render("done "+t.CompletedDate.Short())
	case t.IsGoal && !t.DueDate.IsZero() && today.After(t.DueDate):
		line += " " + ui.Bad.Render("overdue "+t.DueDate.Short())
	case t.IsGoal && !t.DueDate.IsZero():
		line += " " + ui.Warn.Render("due "+t.DueDate.Short())
	}
	if !t.Completed {
		line += " " + ui.XPText(rules.CalculateXP(t, today).Value)
	}
	fmt.Fprintln(out, line)
}
