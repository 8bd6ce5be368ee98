package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/engine"
	"focusflow/internal/storage"
	"focusflow/internal/ui"
)

type boardModel struct {
	ctx context.Context
	eng *engine.Engine

	width  int
	height int

	progress storage.UserProgress
	tasks    []storage.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	progress storage.UserProgress
	tasks    []storage.Task
}

type completedMsg struct {
	id    string
	title string
	xp    int
	res   engine.CompleteResult
}

type deletedMsg struct {
	id string
}

func newBoardModel(ctx context.Context, eng *engine.Engine) boardModel {
	return boardModel{
		ctx:     ctx,
		eng:     eng,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{progress: m.eng.Progress(), tasks: m.eng.Tasks()}
	}
}

func (m boardModel) completeCmd(t storage.Task) tea.Cmd {
	return func() tea.Msg {
		res := m.eng.CompleteTask(m.ctx, t.ID)
		m.eng.UpdateStreak(m.ctx)
		return completedMsg{id: t.ID, title: t.Title, xp: t.XP, res: res}
	}
}

func (m boardModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		m.eng.DeleteTask(m.ctx, id)
		return deletedMsg{id: id}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.progress = msg.progress
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.res.LeveledUp {
			m.lastLog = fmt.Sprintf("Completed %q: +%d XP — %s level %d!", msg.title, msg.xp, ui.BadgeLevelUp, msg.res.NewLevel)
		} else {
			m.lastLog = fmt.Sprintf("Completed %q: +%d XP (level %d)", msg.title, msg.xp, msg.res.NewLevel)
		}
		return m, m.loadCmd()
	case deletedMsg:
		m.lastLog = "Deleted."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			t, ok := m.selectedTask()
			if !ok {
				return m, nil
			}
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", t.Title)
			return m, m.completeCmd(t)
		case "d":
			t, ok := m.selectedTask()
			if !ok {
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Deleting %q…", t.Title)
			return m, m.deleteCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) selectedTask() (storage.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return storage.Task{}, false
	}
	return m.tasks[m.selected], true
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	p := m.progress
	bar := ui.XPBar(engine.XPIntoLevel(p.TotalXP), engine.XPPerLevel, 30)
	return fmt.Sprintf("FocusFlow | Level %d | XP %d %s | %s %d-day streak", p.CurrentLevel, p.TotalXP, bar, ui.IconFlame, p.CurrentStreak)
}

func (m boardModel) renderSidebar() string {
	p := m.progress
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Tasks done: %d", p.TotalTasksCompleted))
	lines = append(lines, fmt.Sprintf("- Focus min: %d", p.TotalFocusMinutes))
	lines = append(lines, fmt.Sprintf("- Longest streak: %d", p.LongestStreak))
	lines = append(lines, fmt.Sprintf("- Badges: %d", len(p.EarnedBadges)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space/enter: complete")
	lines = append(lines, "- d: delete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Task Board")
	if len(m.tasks) == 0 {
		out = append(out, "(empty — add tasks with `ff add`)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s (%s, %d min, %d XP, due %s)", cursor, mark, t.Title, t.Difficulty, t.Duration, t.XP, t.DueDate))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
