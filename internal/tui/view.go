package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lscp/internal/classpath"
	"lscp/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Scanning classpath... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	borderColor := lipgloss.Color("63")

	// LEFT PANEL: Classpath roots
	var leftView strings.Builder
	leftView.WriteString(headerStyle.Render("Classpath Entries"))
	leftView.WriteString("\n\n")

	// Windowing Logic for Left Panel (header is 2 lines)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	start := 0
	if m.SelectedIdx >= visibleItems {
		start = m.SelectedIdx - visibleItems + 1
	}

	for row, idx := range m.FilteredIndices {
		if row < start || row >= start+visibleItems {
			continue
		}
		root := m.Report.Roots[idx]
		line := fmt.Sprintf("%s %s", rootIcon(root), truncate(root.Value, leftWidth-6))

		style := normalStyle
		if root.Missing || root.IsDuplicate {
			style = dimStyle
		}
		if row == m.SelectedIdx {
			style = selectedStyle
		}
		leftView.WriteString(style.Render(line))

		if match, ok := m.SearchMatches[idx]; ok && m.SearchActive {
			leftView.WriteString(" " + matchStyle.Render(match))
		}
		leftView.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  (no matching entries)"))
	}

	// RIGHT PANEL: details or diagnostics
	var rightView string
	if m.ShowDiagnostics {
		rightView = m.renderDiagnostics(rightWidth)
	} else {
		rightView = m.renderDetails(rightWidth, interiorHeight)
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Height(interiorHeight)

	left := panelStyle.Width(leftWidth).Render(leftView.String())
	right := panelStyle.Width(rightWidth).Render(rightView)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// FOOTER
	var footer string
	if m.InputMode {
		footer = "Find resource: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ move · w find resource · d diagnostics · q quit")
		if m.SearchActive {
			footer += matchStyle.Render("  [filter: " + m.InputBuffer.Value() + "]")
		}
	}

	title := titleStyle.Render(fmt.Sprintf("lscp v%s — classpath inspector", model.Version))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

func (m AppModel) renderDetails(width, height int) string {
	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected")
	}
	root := m.Report.Roots[m.FilteredIndices[m.SelectedIdx]]

	b.WriteString(headerStyle.Render("Details"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Path:  %s\n", truncate(root.Value, width-10))
	fmt.Fprintf(&b, "Kind:  %s\n", root.Kind)
	if root.FromOverride {
		b.WriteString("From:  override path (searched first)\n")
	}

	switch {
	case root.Missing:
		b.WriteString(adviceStyle.Render("Status: missing on disk — skipped at lookup time"))
		b.WriteString("\n")
	case root.Unreadable:
		b.WriteString(adviceStyle.Render("Status: not readable — skipped at lookup time"))
		b.WriteString("\n")
	default:
		fmt.Fprintf(&b, "Items: %d\n", root.EntryCount)
	}

	if root.IsDuplicate {
		b.WriteString("\n")
		b.WriteString(adviceStyle.Render(wrap(root.Remediation, width-4)))
		b.WriteString("\n")
	}

	if len(root.Shadows) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Already provided earlier:"))
		b.WriteString("\n")
		for i, s := range root.Shadows {
			if i >= 8 {
				fmt.Fprintf(&b, "  … and %d more\n", len(root.Shadows)-i)
				break
			}
			fmt.Fprintf(&b, "  %s %s\n", model.IconDuplicate, s)
		}
	}

	// Children sample via a single-root locator, so archives and
	// directories render identically here.
	if !root.Missing && !root.Unreadable {
		loc := classpath.NewLocator([]model.Root{root})
		names := loc.ChildNames("")
		sorted := make([]string, 0, len(names))
		for n := range names {
			sorted = append(sorted, n)
		}
		sort.Strings(sorted)

		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Contents:"))
		b.WriteString("\n")
		limit := height - 14
		if limit < 3 {
			limit = 3
		}
		for i, n := range sorted {
			if i >= limit {
				fmt.Fprintf(&b, "  … and %d more\n", len(sorted)-i)
				break
			}
			fmt.Fprintf(&b, "  %s\n", truncate(n, width-6))
		}
	}

	return b.String()
}

func (m AppModel) renderDiagnostics(width int) string {
	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	b.WriteString(headerStyle.Render("Diagnostics"))
	b.WriteString("\n\n")
	if len(m.Report.Diagnostics) == 0 {
		b.WriteString(dimStyle.Render("No classpath problems found."))
		return b.String()
	}
	for _, d := range m.Report.Diagnostics {
		b.WriteString(adviceStyle.Render("• "))
		b.WriteString(wrap(d, width-6))
		b.WriteString("\n")
	}
	return b.String()
}

func rootIcon(root model.Root) string {
	switch {
	case root.Missing:
		return model.IconMissing
	case root.IsDuplicate:
		return model.IconDuplicate
	case root.FromOverride:
		return model.IconOverride
	case root.Kind == model.KindArchive:
		return model.IconArchive
	default:
		return model.IconOK
	}
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}

func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(s) {
		if line > 0 && line+len(word)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
