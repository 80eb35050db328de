package tui

import (
	"strings"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/engine"
)

// parseQuickAdd reads the board's one-line quest syntax:
//
//	Write report !hard @2026-04-01
//
// "!<difficulty>" sets the difficulty and "@<date>" makes the quest a goal
// due on that date. Everything else is the title.
func parseQuickAdd(line string) (engine.CreateTaskInput, error) {
	var (
		in    engine.CreateTaskInput
		title []string
	)
	for _, f := range strings.Fields(line) {
		switch {
		case len(f) > 1 && f[0] == '!':
			d, err := engine.ParseDifficulty(f[1:])
			if err != nil {
				return in, err
			}
			in.Difficulty = d
		case len(f) > 1 && f[0] == '@':
			due, err := clock.ParseDate(f[1:])
			if err != nil {
				return in, engine.ValidationError{Field: "due date", Reason: err.Error()}
			}
			in.DueDate = due
			in.IsGoal = true
		default:
			title = append(title, f)
		}
	}
	in.Title = strings.Join(title, " ")
	return in, nil
}
