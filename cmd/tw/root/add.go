package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var diff string
	var isGoal bool
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Accept a new quest",
		Long: `Accept a new quest.

Goals carry a due date: finishing early pays 25% extra XP, finishing late
costs 30%, and a goal left open past its due date is penalized once.`,
		Example: `  tw add "Water the plants"
  tw add "Ship the report" -d hard --due 2026-04-01`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			in := engine.CreateTaskInput{
				Title:      strings.Join(args, " "),
				Difficulty: d,
				IsGoal:     isGoal,
			}
			if due != "" {
				date, err := clock.ParseDate(due)
				if err != nil {
					return engine.ValidationError{Field: "due date", Reason: err.Error()}
				}
				in.DueDate = date
				in.IsGoal = true
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			svc, cleanup, err := a.session(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CreateTask(ctx, in)
			if err != nil {
				return err
			}
			if !res.Saved {
				return errors.New("could not save the new quest")
			}

			t := res.Task
			line := fmt.Sprintf("%s %s %s %s", ui.KindIcon(t.IsGoal), ui.Muted.Render(shortID(t.ID)), t.Title, ui.DifficultyText(t.Difficulty))
			if !t.DueDate.IsZero() {
				line += " " + ui.Warn.Render("due "+t.DueDate.Short())
			}
			fmt.Fprintln(out, line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "difficulty", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().BoolVar(&isGoal, "goal", false, "Mark as a goal")
	cmd.Flags().StringVar(&due, "due", "", "Goal due date (YYYY-MM-DD); implies --goal")

	return cmd
}

// shortID is how ids are shown; any unique prefix is accepted back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
