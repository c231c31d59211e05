// Package reportui provides a Bubble Tea browser for workout reports.
package reportui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fitcalc/internal/model"
	"github.com/verte-zerg/fitcalc/internal/report"
)

const (
	title      = "Workouts"
	helpText   = "↑/↓ select • q quit"
	chromeRows = 4
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea report browser.
type Model struct {
	reports []model.Report
	table   table.Model

	width  int
	height int
}

// NewModel constructs a browser over the computed reports.
func NewModel(reports []model.Report) *Model {
	return &Model{
		reports: reports,
		table:   buildTable(reports),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(maxInt(1, msg.Height-chromeRows))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	parts := []string{
		titleStyle.Render(title),
		m.table.View(),
		detailStyle.Render(m.detail()),
		footerStyle.Render(helpText),
	}
	return strings.Join(parts, "\n")
}

// Selected returns the report under the cursor.
func (m *Model) Selected() (model.Report, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.reports) {
		return model.Report{}, false
	}
	return m.reports[idx], true
}

func (m *Model) detail() string {
	r, ok := m.Selected()
	if !ok {
		return "No workouts found."
	}
	return report.Message(r)
}

func buildTable(reports []model.Report) table.Model {
	headers := report.TableHeaders()
	cells := report.TableRows(reports)

	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		width := report.DisplayWidth(header)
		for _, row := range cells {
			if w := report.DisplayWidth(row[i]); w > width {
				width = w
			}
		}
		columns[i] = table.Column{Title: header, Width: width}
	}
	rows := make([]table.Row, 0, len(cells))
	for _, row := range cells {
		rows = append(rows, table.Row(row))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxInt(1, len(rows))),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
