// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cinedex/cinedex/internal/catalog"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// PickAction represents the user's action in the picker UI.
type PickAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone PickAction = iota
	// ActionPicked indicates the user picked a movie.
	ActionPicked
	// ActionSkipped indicates the user left without picking.
	ActionSkipped
)

// PickResult holds the outcome of a picker session.
type PickResult struct {
	Action PickAction
	Record *catalog.Record
}

type movieItem struct {
	catalog.Record
}

func (i movieItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.Record.Title, i.Record.Year)
}

func (i movieItem) Description() string {
	return i.Summary
}

func (i movieItem) FilterValue() string {
	return i.Record.Title
}

type itemStyles struct {
	normal      lipgloss.Style
	selected    lipgloss.Style
	titleStyle  lipgloss.Style
	ratingStyle lipgloss.Style
	metaStyle   lipgloss.Style
	plotStyle   lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		ratingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		plotStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")),
	}
}

type movieDelegate struct {
	styles itemStyles
}

func newDelegate() movieDelegate {
	return movieDelegate{styles: newItemStyles()}
}

func (d movieDelegate) Height() int                         { return 4 }
func (d movieDelegate) Spacing() int                        { return 1 }
func (d movieDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d movieDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	result, ok := item.(movieItem)
	if !ok {
		return
	}

	titleLine := d.styles.titleStyle.Render(fmt.Sprintf("%s (%s)", result.Record.Title, result.Record.Year))
	ratingLine := d.styles.ratingStyle.Render(fmt.Sprintf("%s | %s", result.Rating, result.Director))
	metaLine := d.styles.metaStyle.Render(fmt.Sprintf("[%s] %s", result.Provider, result.Record.ID))
	plotLine := d.styles.plotStyle.Render(truncate(result.Summary, m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, ratingLine, metaLine, plotLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list   list.Model
	query  string
	result PickResult
}

func newModel(query string, items []movieItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := newDelegate()
	l := list.New(listItems, delegate, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:  l,
		query: query,
		result: PickResult{
			Action: ActionNone,
		},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(movieItem); ok {
				record := selected.Record
				m.result = PickResult{
					Action: ActionPicked,
					Record: &record,
				}
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.result = PickResult{Action: ActionSkipped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Results for: %s", m.query))
	listView := m.list.View()
	help := helpStyle.Render("Up/Down navigate | Enter add to selection | q leave")
	return lipgloss.JoinVertical(lipgloss.Left, header, listView, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Pick presents an interactive picker over search results and returns the
// movie the librarian chose, if any.
func Pick(query string, records []catalog.Record) (PickResult, error) {
	if len(records) == 0 {
		return PickResult{Action: ActionSkipped}, nil
	}

	items := make([]movieItem, len(records))
	for i, record := range records {
		items[i] = movieItem{Record: record}
	}

	m := newModel(query, items)
	finalModel, err := runProgram(m)
	if err != nil {
		return PickResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return PickResult{}, fmt.Errorf("unexpected program result")
}

// truncate trims on rune boundaries so accented summaries stay valid UTF-8.
func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func clamp(preferred, max, min int) int {
	if max < min {
		return min
	}
	if preferred > max {
		return max
	}
	if preferred < min {
		return min
	}
	return preferred
}
