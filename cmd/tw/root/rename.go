package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func newRenameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Change your hero's name",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
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

			p, err := svc.Rename(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Name", p.Name))
			return nil
		},
	}

	return cmd
}
