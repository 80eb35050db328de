package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/quote"
	"github.com/Ankush23056/taskwarrior/internal/storage"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

const maxNotices = 4

type boardModel struct {
	ctx context.Context
	svc *engine.Service
	rec *engine.Recorder

	keys  keyMap
	help  help.Model
	input textinput.Model

	width  int
	height int

	stats engine.HeroStats
	tasks []storage.Task
	today clock.Date

	selected  int
	showAll   bool
	adding    bool
	confirmID string

	quote   string
	notices []string
	lastLog string
	loading bool
}

type loadedMsg struct {
	stats    engine.HeroStats
	tasks    []storage.Task
	today    clock.Date
	events   []engine.Event
	firstRun bool
}

type actionMsg struct {
	log string
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, rec *engine.Recorder) boardModel {
	ti := textinput.New()
	ti.Placeholder = "Slay the inbox !medium @2026-01-31"
	ti.Prompt = ui.IconPlus + " "
	ti.CharLimit = 120

	return boardModel{
		ctx:     ctx,
		svc:     svc,
		rec:     rec,
		keys:    defaultKeys(),
		help:    help.New(),
		input:   ti,
		quote:   quote.NewPicker(nil).Pick().String(),
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd runs the session reconciliation on every refresh so a board left
// open across midnight still rolls the day over and charges penalties.
func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		res := m.svc.Load(m.ctx)
		return loadedMsg{
			stats:    m.svc.Stats(m.ctx),
			tasks:    m.svc.Tasks(m.ctx),
			today:    m.svc.Today(),
			events:   m.rec.Drain(),
			firstRun: res.FirstRun,
		}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		if err != nil {
			return actionMsg{err: err}
		}
		if !res.Saved {
			return actionMsg{log: "Could not save. Nothing was awarded."}
		}
		return actionMsg{log: fmt.Sprintf("Completed %q", res.Title)}
	}
}

func (m boardModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.DeleteTask(m.ctx, id)
		if err != nil {
			return actionMsg{err: err}
		}
		if !res.Saved {
			return actionMsg{log: "Could not save. The quest is still there."}
		}
		return actionMsg{log: fmt.Sprintf("Abandoned %q", res.Task.Title)}
	}
}

func (m boardModel) createCmd(in engine.CreateTaskInput) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CreateTask(m.ctx, in)
		if err != nil {
			return actionMsg{err: err}
		}
		if !res.Saved {
			return actionMsg{log: "Could not save the new quest."}
		}
		return actionMsg{log: fmt.Sprintf("Added %q", res.Task.Title)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.loading = false
		m.stats = msg.stats
		m.tasks = msg.tasks
		m.today = msg.today
		m.pushEvents(msg.events)
		if msg.firstRun {
			m.lastLog = "Welcome, " + msg.stats.Name + ". Press a to add your first quest."
		} else if m.lastLog == "Loading…" {
			m.lastLog = ""
		}
		m.clampSelection()
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
		} else {
			m.lastLog = msg.log
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.confirmID != "" {
			id := m.confirmID
			m.confirmID = ""
			if msg.String() == "y" {
				return m, m.deleteCmd(id)
			}
			m.lastLog = "Kept."
			return m, nil
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		in, err := parseQuickAdd(m.input.Value())
		if err != nil {
			m.lastLog = ui.Bad.Render(err.Error())
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, m.createCmd(in)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visibleTasks())-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.showAll = !m.showAll
		m.clampSelection()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Complete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		if t.Completed {
			m.lastLog = "Already done."
			return m, nil
		}
		return m, m.completeCmd(t.ID)
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirmID = t.ID
		m.lastLog = fmt.Sprintf("Abandon %q? (y/n)", t.Title)
	}
	return m, nil
}

func (m *boardModel) pushEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventToast:
			m.notices = append(m.notices, ui.SeverityText(e.Message, e.Severity))
		case engine.EventFloatingXP:
			if e.Amount != 0 {
				m.notices = append(m.notices, ui.IconBolt+" "+ui.XPText(e.Amount))
			}
		}
	}
	if len(m.notices) > maxNotices {
		m.notices = m.notices[len(m.notices)-maxNotices:]
	}
}

// visibleTasks orders open goals by due date, then other open quests by
// creation time; completed quests follow when showAll is on.
func (m boardModel) visibleTasks() []storage.Task {
	var open, done []storage.Task
	for _, t := range m.tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i], open[j]
		ad, bd := a.IsGoal && !a.DueDate.IsZero(), b.IsGoal && !b.DueDate.IsZero()
		if ad != bd {
			return ad
		}
		if ad && a.DueDate != b.DueDate {
			return a.DueDate.Before(b.DueDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	if !m.showAll {
		return open
	}
	sort.SliceStable(done, func(i, j int) bool { return done[i].CompletedDate.After(done[j].CompletedDate) })
	return append(open, done...)
}

func (m boardModel) current() (storage.Task, bool) {
	list := m.visibleTasks()
	if m.selected < 0 || m.selected >= len(list) {
		return storage.Task{}, false
	}
	return list[m.selected], true
}

func (m *boardModel) clampSelection() {
	n := len(m.visibleTasks())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.loading && m.stats.Level == 0 {
		return "Loading…\n"
	}
	sections := []string{m.renderHeader(), m.renderQuests()}
	if len(m.notices) > 0 {
		sections = append(sections, strings.Join(m.notices, "\n"))
	}
	if m.adding {
		sections = append(sections, m.input.View()+"\n"+ui.Dim.Render("enter to add · esc to cancel"))
	}
	if m.lastLog != "" {
		sections = append(sections, m.lastLog)
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n\n") + "\n"
}

func (m boardModel) renderHeader() string {
	s := m.stats
	line1 := fmt.Sprintf("%s  %s  %s",
		ui.Title.Render(ui.IconShield+" "+s.Name),
		ui.Gold.Render(fmt.Sprintf("Level %d", s.Level)),
		ui.Muted.Render(fmt.Sprintf("%d XP", s.XP)))
	line2 := fmt.Sprintf("%s %s",
		ui.XPBar(s.Progress(), 30),
		ui.Muted.Render(fmt.Sprintf("%d/%d · %d to next", s.XPIntoLevel, s.LevelCap, s.XPToNextLevel)))
	line3 := fmt.Sprintf("%s %s   %s %s   %s %d",
		ui.IconFire, ui.LabelValue("Streak", s.Streak),
		ui.IconBolt, ui.LabelValue("Today", fmt.Sprintf("%+d XP", s.XPToday)),
		ui.Key.Render("Quests done:"), s.QuestsCompleted)

	panel := ui.Panel
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3, ui.Dim.Render(m.quote)))
}

func (m boardModel) renderQuests() string {
	list := m.visibleTasks()
	title := fmt.Sprintf("Quest Log (%d active)", m.stats.ActiveTasks)
	out := []string{ui.PanelTitle.Render(title)}
	if len(list) == 0 {
		out = append(out, ui.Muted.Render("No quests. Press a to accept one."))
		return strings.Join(out, "\n")
	}
	for i, t := range list {
		row := m.renderRow(t)
		if i == m.selected {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		out = append(out, row)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderRow(t storage.Task) string {
	var b strings.Builder
	if t.Completed {
		b.WriteString(ui.IconDone)
	} else {
		b.WriteString(ui.KindIcon(t.IsGoal))
	}
	b.WriteString(" ")
	b.WriteString(t.Title)
	b.WriteString("  ")
	b.WriteString(ui.DifficultyText(t.Difficulty))

	switch {
	case t.Completed:
		b.WriteString(ui.Dim.Render("  done " + t.CompletedDate.Short()))
	case t.IsGoal && !t.DueDate.IsZero():
		due := "due " + t.DueDate.Short()
		if m.today.After(t.DueDate) {
			b.WriteString("  " + ui.Bad.Render("overdue "+t.DueDate.Short()))
		} else {
			b.WriteString("  " + ui.Warn.Render(due))
		}
	}

	if !t.Completed {
		xp := m.svc.Rules().CalculateXP(t, m.today)
		b.WriteString("  " + ui.XPText(xp.Value))
	}
	return b.String()
}
