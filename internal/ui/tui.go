// Package ui provides the optional terminal board.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/store"
	"tasktrack/internal/task"
)

// RunBoard starts the read-only task board over the given store. It reloads
// the file on a timer, so edits made by concurrent tasktrack invocations
// show up; the board itself never writes.
func RunBoard(ctx context.Context, st *store.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newBoardModel(st)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type boardModel struct {
	store        *store.Store
	loadErr      error
	tasks        []task.Task
	filter       *task.Status
	tickInterval time.Duration
}

type tickMsg time.Time

func newBoardModel(st *store.Store) *boardModel {
	return &boardModel{
		store:        st,
		tickInterval: time.Second,
	}
}

func (m *boardModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "1":
			m.setFilter(task.StatusTodo)
			return m, nil
		case "2":
			m.setFilter(task.StatusInProgress)
			return m, nil
		case "3":
			m.setFilter(task.StatusDone)
			return m, nil
		case "0":
			m.filter = nil
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.filter != nil {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", *m.filter)
	}

	if m.loadErr != nil {
		b.WriteString("Error loading store file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	writeOverview(&b, m.tasks)
	writeTasks(&b, m.visibleTasks())
	fmt.Fprintf(&b, "Store: %s\n\n", m.store.Path)
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func (m *boardModel) setFilter(s task.Status) {
	m.filter = &s
}

func (m *boardModel) refresh() {
	tasks, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		return
	}
	m.loadErr = nil
	m.tasks = tasks
}

func (m *boardModel) visibleTasks() []task.Task {
	if m.filter == nil {
		return m.tasks
	}
	var filtered []task.Task
	for _, t := range m.tasks {
		if t.Status == *m.filter {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTitle(b *strings.Builder) {
	title := "Tasktrack Board"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, tasks []task.Task) {
	counts := map[task.Status]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}
	fmt.Fprintf(b, "  Todo: %d  In Progress: %d  Done: %d\n\n",
		counts[task.StatusTodo],
		counts[task.StatusInProgress],
		counts[task.StatusDone],
	)
}

func writeTasks(b *strings.Builder, tasks []task.Task) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks.\n\n")
		return
	}
	for _, t := range tasks {
		b.WriteString(formatLine(t) + "\n")
	}
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString("1/2/3 filter by status | 0 clear | r refresh | q quit | ")
	fmt.Fprintf(b, "Refreshing every %s\n", interval)
}

func formatLine(t task.Task) string {
	icon := " "
	switch t.Status {
	case task.StatusInProgress:
		icon = ">"
	case task.StatusDone:
		icon = "x"
	}

	line := fmt.Sprintf("  %s [%d] %s", icon, t.ID, t.Description)
	if t.UpdatedAt != nil {
		line += fmt.Sprintf("  (updated %s)", t.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return line
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
