package classpath

import (
	"fmt"
	"strings"

	"lscp/internal/model"
)

// GenerateReport renders a Report as a plain-text diagnostic report for
// the --report CLI mode.
func GenerateReport(report model.Report, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "lscp classpath report (v%s)\n", model.Version)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 40))

	fmt.Fprintf(&b, "Classpath entries (%d):\n", len(report.Roots))
	for i, root := range report.Roots {
		fmt.Fprintf(&b, "  %2d %s %s\n", i+1, statusIcon(root), root.Value)
		fmt.Fprintf(&b, "       %s\n", statusLine(root))
		if verbose {
			if len(root.Shadows) > 0 {
				fmt.Fprintf(&b, "       shadowed names: %s\n", strings.Join(root.Shadows, ", "))
			}
			if root.Remediation != "" {
				fmt.Fprintf(&b, "       advice: %s\n", root.Remediation)
			}
		}
	}

	if len(report.Diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, d := range report.Diagnostics {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}

	return b.String()
}

func statusIcon(root model.Root) string {
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

func statusLine(root model.Root) string {
	switch {
	case root.Missing:
		return "missing on disk"
	case root.Unreadable:
		return "exists but not readable"
	case root.IsDuplicate:
		return fmt.Sprintf("duplicate of entry %d", root.DuplicateOf+1)
	default:
		noun := "children"
		if root.Kind == model.KindArchive {
			noun = "entries"
		}
		origin := ""
		if root.FromOverride {
			origin = ", from override path"
		}
		return fmt.Sprintf("%s, %d %s%s", root.Kind, root.EntryCount, noun, origin)
	}
}
