package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconFirst     = "¹" //
	IconLast      = "¶" //
	IconDuplicate = "≈" // Almost equal (duplicate)
	IconArchive   = "▣" // Filled square (jar/zip archive)
	IconMissing   = "✗" // Thin X (missing)
	IconOK        = " " // Space (OK - no icon to reduce noise)
	IconOverride  = "◆" // Diamond for override-path roots
)
