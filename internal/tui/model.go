// Package tui provides the Bubble Tea interactive search interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordjumble/internal/jumble"
	"github.com/verte-zerg/wordjumble/internal/letters"
	"github.com/verte-zerg/wordjumble/internal/model"
)

// Recorder persists completed searches.
type Recorder interface {
	InsertQuery(ctx context.Context, rec model.QueryRecord) (int64, error)
}

// Model implements the Bubble Tea search UI.
type Model struct {
	dictPath string
	recorder Recorder

	input   textinput.Model
	results viewport.Model

	width  int
	height int

	searched bool
	last     jumble.Result
	errMsg   string
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a search TUI model. recorder may be nil.
func NewModel(dictPath string, recorder Recorder) *Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render("Letters: ")
	input.Placeholder = "type letters and press enter"
	input.CharLimit = 256
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()

	return &Model{
		dictPath: dictPath,
		recorder: recorder,
		input:    input,
		results:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderResults()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.search()
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{m.input.View(), "", m.results.View(), m.renderFooter()}
	return strings.Join(parts, "\n")
}

// Matches returns the words found by the last successful search.
func (m *Model) Matches() []string {
	return m.last.Matches
}

func (m *Model) search() {
	query := strings.TrimSpace(m.input.Value())
	if letters.New(query).Len() == 0 {
		m.errMsg = "enter at least one letter a-z"
		return
	}
	res, err := jumble.Search(query, m.dictPath)
	if err != nil {
		m.errMsg = err.Error()
		m.searched = false
		m.last = jumble.Result{}
		m.renderResults()
		return
	}
	m.errMsg = ""
	m.searched = true
	m.last = res
	m.renderResults()
	m.results.GotoTop()

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.InsertQuery(context.Background(), res.Record(time.Now())); err != nil {
		logErrf("failed to save query: %v\n", err)
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.Width = maxInt(10, m.width-lipgloss.Width(m.input.Prompt)-2)
	m.results.Width = m.width
	m.results.Height = maxInt(1, m.height-3)
}

func (m *Model) renderResults() {
	if !m.searched {
		m.results.SetContent("")
		return
	}
	if len(m.last.Matches) == 0 {
		m.results.SetContent(emptyStyle.Render("no words found"))
		return
	}
	lines := wrapWords(displayWords(m.last.Matches), m.width)
	for i, line := range lines {
		lines[i] = matchStyle.Render(line)
	}
	m.results.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	segments := []string{fmt.Sprintf("Dictionary %s", m.dictPath)}
	if m.searched {
		segments = append(segments,
			fmt.Sprintf("%d matches for %q", len(m.last.Matches), m.last.Query),
			fmt.Sprintf("%d ms", m.last.Elapsed.Milliseconds()),
		)
	}
	segments = append(segments, "enter search · ↑/↓ scroll · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func displayWords(words []string) []string {
	out := make([]string, len(words))
	for i, word := range words {
		if word == "" {
			out[i] = "(blank)"
			continue
		}
		out[i] = word
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
