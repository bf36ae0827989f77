package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines reserved around the scrolled list.
const chromeLines = 5

type model struct {
	ctx     context.Context
	session *application.EditSession
	title   string

	input  textinput.Model
	help   help.Model
	keys   keyMap
	styles styles

	width  int
	height int
	offset int
}

func newModel(ctx context.Context, session *application.EditSession, title string) model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "caption"
	input.CharLimit = 0

	return model{
		ctx:     ctx,
		session: session,
		title:   title,
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.currentFilename())-6, 10)
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		if m.session.State() == application.StateEditing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	default:
		return m, nil
	}
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.session.ClearNotice()

	switch {
	case key.Matches(msg, m.keys.browse.Quit):
		m.session.Apply(m.ctx, application.IntentQuit)
		return m, tea.Quit
	case key.Matches(msg, m.keys.browse.Prev):
		m.session.Apply(m.ctx, application.IntentPrev)
	case key.Matches(msg, m.keys.browse.Next):
		m.session.Apply(m.ctx, application.IntentNext)
	case key.Matches(msg, m.keys.browse.Edit):
		if !m.session.Apply(m.ctx, application.IntentBeginEdit) {
			return m, nil
		}
		m.input.SetValue(m.session.Buffer())
		m.input.CursorEnd()
		return m, m.input.Focus()
	}

	m.scrollToCursor()
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var intent application.Intent

	switch {
	case key.Matches(msg, m.keys.edit.Quit):
		m.session.Apply(m.ctx, application.IntentQuit)
		m.input.Blur()
		return m, tea.Quit
	case key.Matches(msg, m.keys.edit.Save):
		intent = application.IntentCommit
	case key.Matches(msg, m.keys.edit.SaveNext):
		intent = application.IntentCommitNext
	case key.Matches(msg, m.keys.edit.SavePrev):
		intent = application.IntentCommitPrev
	case key.Matches(msg, m.keys.edit.Cancel):
		intent = application.IntentCancel
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetBuffer(m.input.Value())
		return m, cmd
	}

	m.session.SetBuffer(m.input.Value())
	m.session.Apply(m.ctx, intent)
	m.input.Blur()
	m.input.Reset()
	m.scrollToCursor()
	return m, nil
}

func (m model) visibleRows() int {
	if m.height <= 0 {
		return m.session.Len()
	}

	return max(m.height-chromeLines, 1)
}

func (m *model) scrollToCursor() {
	rows := m.visibleRows()
	index := m.session.Index()

	if index < m.offset {
		m.offset = index
	}
	if index >= m.offset+rows {
		m.offset = index - rows + 1
	}
	if maxOffset := max(m.session.Len()-rows, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func (m model) currentFilename() string {
	record, ok := m.session.Current()
	if !ok {
		return ""
	}

	return record.Filename
}

func (m model) View() string {
	if m.session.State() == application.StateExiting {
		return ""
	}

	header := fmt.Sprintf("image %d/%d", m.session.Index()+1, m.session.Len())
	if spec := m.session.ViewerSpec(); spec.Configured() {
		header += "  viewer: " + spec.Command
	}

	lines := []string{
		m.styles.title.Render(m.title),
		m.styles.header.Render(header),
		"",
	}

	end := min(m.offset+m.visibleRows(), m.session.Len())
	records := m.session.Records()
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, records[i]))
	}

	if notice := m.session.Notice(); notice != "" {
		lines = append(lines, m.styles.notice.Render(notice))
	}

	if m.session.State() == application.StateEditing {
		lines = append(lines, m.help.View(m.keys.edit))
	} else {
		lines = append(lines, m.help.View(m.keys.browse))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}

	return view
}

func (m model) renderRow(i int, record domain.CaptionRecord) string {
	if i != m.session.Index() {
		if strings.TrimSpace(record.Caption) == "" {
			return "  " + m.styles.row.Render(record.Filename+":") + " " + m.styles.empty.Render("(none)")
		}
		return "  " + m.styles.row.Render(record.Label())
	}

	prefix := m.styles.cursor.Render("> ")
	if m.session.State() == application.StateEditing {
		return prefix + m.styles.selected.Render(record.Filename+": ") + m.input.View()
	}

	return prefix + m.styles.selected.Render(record.Label())
}
