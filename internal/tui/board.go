package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ankush23056/taskwarrior/internal/engine"
)

// RunBoard opens the dashboard. rec must be the notifier svc was built
// with; the board drains it after every action to show toasts.
func RunBoard(ctx context.Context, svc *engine.Service, rec *engine.Recorder, out io.Writer) error {
	m := newBoardModel(ctx, svc, rec)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
