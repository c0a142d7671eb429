package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptHelpStyle  = lipgloss.NewStyle().Faint(true)
)

// TUIPrompter runs bubbletea programs for selection and free-text
// prompts. Each call is one logical operation: the engine suspends,
// the user answers or dismisses, and the result resumes the caller.
type TUIPrompter struct{}

func (TUIPrompter) Select(title string, options []string) (string, bool, error) {
	m := newSelectModel(title, options)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	result, ok := finalModel.(selectModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected select model type")
	}
	if result.cancelled || strings.TrimSpace(result.selected) == "" {
		return "", false, nil
	}
	return result.selected, true, nil
}

func (TUIPrompter) Input(title, placeholder string) (string, bool, error) {
	m := newInputModel(title, placeholder)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	result, ok := finalModel.(inputModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected input model type")
	}
	value := strings.TrimSpace(result.input.Value())
	if result.cancelled || value == "" {
		return "", false, nil
	}
	return value, true, nil
}

type selectRow struct {
	name  string
	score int
}

type selectModel struct {
	title      string
	allRows    []selectRow
	visible    []selectRow
	queryInput textinput.Model
	table      table.Model
	selected   string
	cancelled  bool
	width      int
	height     int
}

func newSelectModel(title string, options []string) selectModel {
	input := textinput.New()
	input.Placeholder = "filter"
	input.Prompt = "query> "
	input.Focus()

	tbl := table.New(
		table.WithColumns([]table.Column{{Title: "TABSET", Width: 40}}),
		table.WithRows(nil),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	m := selectModel{
		title:      title,
		queryInput: input,
		table:      tbl,
		allRows:    make([]selectRow, 0, len(options)),
	}
	for _, name := range options {
		m.allRows = append(m.allRows, selectRow{name: name})
	}
	m.applyFilter()
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.visible) == 0 {
				return m, nil
			}
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.visible) {
				m.selected = m.visible[idx].name
				return m, tea.Quit
			}
		}
	}

	prevQuery := m.queryInput.Value()
	var cmdInput tea.Cmd
	m.queryInput, cmdInput = m.queryInput.Update(msg)
	if prevQuery != m.queryInput.Value() {
		m.applyFilter()
	}

	var cmdTable tea.Cmd
	m.table, cmdTable = m.table.Update(msg)

	return m, tea.Batch(cmdInput, cmdTable)
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(promptHelpStyle.Render("enter: choose  esc/ctrl-c: cancel  up/down: move"))
	b.WriteString("\n\n")
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")
	if len(m.visible) == 0 {
		b.WriteString("No tabsets match query\n")
		return b.String()
	}
	b.WriteString(m.table.View())
	return b.String()
}

func (m *selectModel) resize() {
	if m.width <= 0 {
		return
	}
	nameW := m.width - 4
	if nameW < 16 {
		nameW = 16
	}
	cols := m.table.Columns()
	if len(cols) == 1 {
		cols[0].Width = nameW
		m.table.SetColumns(cols)
	}

	tableHeight := m.height - 7
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)
}

func (m *selectModel) applyFilter() {
	query := strings.TrimSpace(strings.ToLower(m.queryInput.Value()))
	rows := make([]selectRow, 0, len(m.allRows))

	for _, row := range m.allRows {
		score, ok := fuzzyScore(query, strings.ToLower(row.name))
		if !ok {
			continue
		}
		row.score = score
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score == rows[j].score {
			return rows[i].name < rows[j].name
		}
		return rows[i].score > rows[j].score
	})

	m.visible = rows
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{row.name})
	}
	m.table.SetRows(tableRows)

	if len(tableRows) == 0 {
		m.table.SetCursor(0)
		return
	}
	if m.table.Cursor() >= len(tableRows) {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

type inputModel struct {
	title     string
	input     textinput.Model
	cancelled bool
}

func newInputModel(title, placeholder string) inputModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.Focus()
	return inputModel{title: title, input: input}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return promptTitleStyle.Render(m.title) + "\n" + m.input.View() + "\n"
}

// fuzzyScore matches query as a subsequence of target, rewarding
// streaks of consecutive hits.
func fuzzyScore(query, target string) (int, bool) {
	if query == "" {
		return 1, true
	}
	qi := 0
	score := 0
	streak := 0
	for i := 0; i < len(target) && qi < len(query); i++ {
		if target[i] == query[qi] {
			score += 10 + streak*3
			streak++
			qi++
		} else {
			streak = 0
		}
	}
	if qi != len(query) {
		return 0, false
	}
	return score, true
}
