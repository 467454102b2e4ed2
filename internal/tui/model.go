package tui

import (
	"lscp/internal/classpath"
	"lscp/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Roots   []model.Root
	Report  model.Report
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowDiagnostics bool

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int          // Indices of Roots to show
	SearchMatches   map[int]string // Map of root index -> matched resource
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state for the given classpath strings.
func InitialModel(cp, override string) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Resource or namespace..."
	ti.CharLimit = 80
	ti.Width = 30

	return AppModel{
		Roots:       classpath.BuildRoots(cp, override),
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init kicks off the background analysis.
func (m AppModel) Init() tea.Cmd {
	return InitAnalyzeCmd(m.Roots)
}
