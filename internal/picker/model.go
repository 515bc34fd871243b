package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reelnote/internal/services/tmdb"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 12
)

type candidateItem struct {
	tmdb.SearchResult
}

func (i candidateItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.DisplayTitle(), i.Year())
}

func (i candidateItem) Description() string { return i.Overview }

func (i candidateItem) FilterValue() string { return i.DisplayTitle() }

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))

	typeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	overviewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	selectedItemStyle = itemStyle.
				BorderForeground(lipgloss.Color("214")).
				Foreground(lipgloss.Color("230"))
)

type candidateDelegate struct{}

func (candidateDelegate) Height() int                         { return 4 }
func (candidateDelegate) Spacing() int                        { return 1 }
func (candidateDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (candidateDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	candidate, ok := item.(candidateItem)
	if !ok {
		return
	}

	typeLine := typeStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(candidate.MediaType)))
	titleLine := titleStyle.Render(fmt.Sprintf("%s (%s)", candidate.DisplayTitle(), candidate.Year()))
	ratingLine := ratingStyle.Render(fmt.Sprintf("%.1f/10", candidate.VoteAverage))
	overviewLine := overviewStyle.Render(truncate(candidate.Overview, m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, typeLine, titleLine, ratingLine, overviewLine)

	container := itemStyle
	if idx == m.Index() {
		container = selectedItemStyle
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list        list.Model
	searchTitle string
	result      Result
}

func newModel(title string, results []tmdb.SearchResult) *model {
	items := make([]list.Item, len(results))
	for i, result := range results {
		items[i] = candidateItem{SearchResult: result}
	}

	l := list.New(items, candidateDelegate{}, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	return &model{list: l, searchTitle: title}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(candidateItem); ok {
				result := selected.SearchResult
				m.result = Result{Action: ActionSelected, Selection: &result}
				return m, tea.Quit
			}
		case "s", "esc":
			m.result = Result{Action: ActionSkipped}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.result = Result{Action: ActionStopped}
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
	header := headerStyle.Render(fmt.Sprintf("Multiple results found for: %s", m.searchTitle))
	help := helpStyle.Render("up/down navigate | enter select | s skip | q stop")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func clamp(preferred, available, minimum int) int {
	size := preferred
	if available > 0 && available < preferred {
		size = available
	}
	if size < minimum {
		size = minimum
	}
	return size
}
