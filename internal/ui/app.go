package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lyrics-overlay/internal/lyrics"
)

const windowTitle = "Lyrics Overlay"

// Model is the Bubble Tea model behind the overlay. It only renders; all
// connection state lives in the event loop.
type Model struct {
	theme  Theme
	styles Styles
	paint  bgPainter
	keys   KeyMap
	maxLen int

	lyric  string
	status string
	width  int
	height int

	// onClose is called when the user asks to close the overlay.
	onClose func()
}

// NewModel creates an overlay model showing the waiting text.
func NewModel(theme Theme, maxLen int, onClose func()) Model {
	return Model{
		theme:   theme,
		styles:  theme.Styles(),
		paint:   newBgPainter(theme.Background),
		keys:    DefaultKeyMap(),
		maxLen:  maxLen,
		lyric:   lyrics.Waiting,
		onClose: onClose,
	}
}

// Messages

type lyricsMsg string

type statusMsg string

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.onClose != nil {
				m.onClose()
			}
			return m, tea.Quit
		}
		return m, nil

	case lyricsMsg:
		m.lyric = string(msg)
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	panel := m.styles.Panel.Render(m.renderLyric())
	if m.width <= 0 || m.height <= 0 {
		return panel
	}

	body := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, panel)
	status := m.styles.Status.Render(lyrics.Truncate(m.status, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m Model) renderLyric() string {
	if m.lyric == lyrics.Disconnected {
		return m.paint.paint(m.lyric, m.styles.Placeholder)
	}

	lines := lyrics.Lines(m.lyric, m.maxLen)
	note := m.paint.paint("♪", m.styles.Note)
	for i, line := range lines {
		lines[i] = m.paint.join(note, m.paint.paint(line, m.styles.Lyric), note)
	}
	return m.paint.center(lines)
}
