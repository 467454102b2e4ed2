package tui

import (
	"strings"

	"lscp/internal/classpath"
	"lscp/internal/model"
	"lscp/internal/naming"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgAnalysisReady indicates that the classpath analysis has completed.
type MsgAnalysisReady model.Report

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgAnalysisReady:
		m.Loading = false
		m.Report = model.Report(msg)
		// Auto-populate filtered indices with all
		m.FilteredIndices = make([]int, len(m.Report.Roots))
		for i := range m.Report.Roots {
			m.FilteredIndices[i] = i
		}
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			// Global ESC handler
			if m.SearchActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
			if m.ShowDiagnostics {
				m.ShowDiagnostics = false
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "d":
			m.ShowDiagnostics = !m.ShowDiagnostics
		case "w":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// performSearch filters the root list to roots providing the typed
// resource. A dotted term with no slash is taken as a namespace name and
// converted to its source path first; anything else is matched as a
// resource path, falling back to a prefix match over top-level children.
func (m *AppModel) performSearch() {
	term := strings.TrimSpace(m.InputBuffer.Value())
	if term == "" {
		// Reset
		m.SearchActive = false
		m.SearchMatches = nil
		m.FilteredIndices = make([]int, len(m.Report.Roots))
		for i := range m.Report.Roots {
			m.FilteredIndices[i] = i
		}
	} else {
		m.SearchActive = true
		m.SearchMatches = make(map[int]string)

		rel := naming.PathForQuery(term)

		var result []int
		for i, root := range m.Report.Roots {
			loc := classpath.NewLocator([]model.Root{root})
			if loc.Exists(rel) {
				m.SearchMatches[i] = rel
				result = append(result, i)
				continue
			}
			// Prefix match over the root's top-level children, so typing
			// a partial name narrows the list as you go.
			lower := strings.ToLower(term)
			for name := range loc.ChildNames("") {
				if strings.HasPrefix(strings.ToLower(name), lower) {
					m.SearchMatches[i] = name
					result = append(result, i)
					break
				}
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// InitAnalyzeCmd runs the classpath analysis in the background.
func InitAnalyzeCmd(roots []model.Root) tea.Cmd {
	return func() tea.Msg {
		report := classpath.NewAnalyzer().Analyze(roots)
		return MsgAnalysisReady(report)
	}
}
