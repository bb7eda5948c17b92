// Package tui is the interactive converter form: a text input, a base
// selector, and a live table of the value in every base.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
	"github.com/pweiskircher/base-converter/internal/logging"
)

// The value column fits a sign plus 64 binary digits; every table cell has
// one column of padding on each side.
const (
	baseColumnWidth  = 14
	valueColumnWidth = 65
	tableWidth       = baseColumnWidth + valueColumnWidth + 4
	inputLimit       = 80
)

// Model is the bubbletea model for the form. Every edit replaces the
// converter state as a whole.
type Model struct {
	state  converter.State
	input  textinput.Model
	table  table.Model
	styles Styles
	log    logging.Logger
}

func New(base converter.Base, log logging.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a number"
	ti.CharLimit = inputLimit
	ti.Width = 40
	ti.Focus()

	styles := DefaultStyles()
	rows := converter.Bases()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Base", Width: baseColumnWidth},
			{Title: "Value", Width: valueColumnWidth},
		}),
		table.WithStyles(styles.Table),
		table.WithWidth(tableWidth),
		table.WithHeight(len(rows)+1),
	)

	return Model{
		state:  converter.NewState(base),
		input:  ti,
		table:  t,
		styles: styles,
		log:    logging.Named(log, "tui"),
	}
}

// State returns the current (input, base, result) triple.
func (m Model) State() converter.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setState(m.state.WithBase(m.state.Base.Next()))
			return m, nil
		case "shift+tab":
			m.setState(m.state.WithBase(m.state.Base.Prev()))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.Input {
		m.setState(m.state.WithInput(value))
	}
	return m, cmd
}

func (m *Model) setState(next converter.State) {
	m.state = next
	m.syncTable()
	m.log.Debug().
		Str("input", next.Input).
		Str("base", next.Base.Name()).
		Str("result", next.Result.String()).
		Msg("state replaced")
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Number converter"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.baseSelectorView())
	b.WriteString("\n\n")

	switch {
	case m.state.Result.IsValid():
		b.WriteString(m.styles.Label.Render("Selected base: " + m.state.Base.Name()))
		b.WriteString("\n")
		b.WriteString(m.table.View())
	case m.state.ShowInvalid():
		b.WriteString(m.styles.Invalid.Render(contracts.InvalidInputMessage + "."))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/shift+tab: change base • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) baseSelectorView() string {
	parts := make([]string, 0, len(converter.Bases()))
	for _, base := range converter.Bases() {
		style := m.styles.BaseIdle
		if base == m.state.Base {
			style = m.styles.BaseSelected
		}
		parts = append(parts, style.Render(base.Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// syncTable loads the current rows and moves the cursor to the selected base.
func (m *Model) syncTable() {
	rows := m.state.Rows()
	tableRows := make([]table.Row, 0, len(rows))
	cursor := 0
	for i, row := range rows {
		if row.Base == m.state.Base {
			cursor = i
		}
		tableRows = append(tableRows, table.Row{row.Base.Name(), row.Digits})
	}
	m.table.SetRows(tableRows)
	m.table.SetCursor(cursor)
}

// Run drives the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, base converter.Base, log logging.Logger) error {
	program := tea.NewProgram(
		New(base, log),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	return err
}
