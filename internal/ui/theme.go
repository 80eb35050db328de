package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ankush23056/taskwarrior/internal/engine"
)

// Taskwarrior theme (CLI + TUI).

const (
	IconQuest   = "🗡️"
	IconGoal    = "🎯"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTrash   = "🗑️"
	IconScroll  = "📜"
	IconShield  = "🛡️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func DifficultyText(d string) string {
	switch engine.Difficulty(strings.ToLower(d)) {
	case engine.DifficultyHard:
		return Bad.Render("hard")
	case engine.DifficultyMedium:
		return Warn.Render("medium")
	default:
		return Good.Render("easy")
	}
}

// SeverityText renders a toast message in its severity colour.
func SeverityText(msg string, sev engine.Severity) string {
	if sev == engine.SeverityError {
		return Bad.Render(IconWarn + " " + msg)
	}
	return Good.Render(IconSparkle + " " + msg)
}

// XPText formats a signed XP delta, e.g. "+10 XP" or "-5 XP".
func XPText(amount int) string {
	if amount < 0 {
		return Bad.Render(fmt.Sprintf("%d XP", amount))
	}
	return Gold.Render(fmt.Sprintf("+%d XP", amount))
}

// XPBar draws a fixed-width progress bar for frac in [0,1].
func XPBar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return Gold.Render(strings.Repeat("█", filled)) + Dim.Render(strings.Repeat("░", width-filled))
}

func KindIcon(isGoal bool) string {
	if isGoal {
		return IconGoal
	}
	return IconQuest
}
