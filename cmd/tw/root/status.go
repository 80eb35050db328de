package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/quote"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hero stats and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			svc, cleanup, err := a.session(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Stats(ctx)
			fmt.Fprintln(out, ui.Heading(ui.IconShield, st.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintf(out, "%s %s\n", ui.XPBar(st.Progress(), 30), ui.Muted.Render(fmt.Sprintf("%d/%d XP, %d to next level", st.XPIntoLevel, st.LevelCap, st.XPToNextLevel)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", st.XP))
			fmt.Fprintln(out, ui.LabelValue("XP today", fmt.Sprintf("%+d", st.XPToday)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFire, st.Streak, st.BestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", st.QuestsCompleted))
			fmt.Fprintln(out, ui.LabelValue("Open quests", st.ActiveTasks))
			fmt.Fprintln(out, "")

			achievements := svc.Achievements(ctx)
			earned := 0
			var badges []string
			for _, ach := range achievements {
				if ach.Earned {
					earned++
					badges = append(badges, ach.Icon+" "+ach.Name)
				}
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, earned, len(achievements))))
			if len(badges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("None yet. Complete a quest to earn your first."))
			} else {
				fmt.Fprintln(out, strings.Join(badges, "  "))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Dim.Render(quote.NewPicker(nil).Pick().String()))
			return nil
		},
	}

	return cmd
}
