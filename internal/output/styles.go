package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: file paths, resource names, namespaces.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "generated" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, resource names, namespaces).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Status constants for generated resources and processed files.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusGenerated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minResourceColumnWidth keeps status words aligned.
const minResourceColumnWidth = 48

// FormatResourceLine renders a resource identifier with a right-aligned,
// color-coded status suffix.
//
// Format: r:<Kind/namespace/name>  <status>
// For cluster-scoped resources (empty namespace): r:<Kind/name>
func FormatResourceLine(kind, namespace, name, status string) string {
	var path string
	if namespace != "" {
		path = fmt.Sprintf("%s/%s/%s", kind, namespace, name)
	} else {
		path = fmt.Sprintf("%s/%s", kind, name)
	}
	return formatStatusLine("r:", path, status)
}

// FormatFileLine renders an input file with its status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	return formatStatusLine("f:", path, status)
}

func formatStatusLine(prefix, noun, status string) string {
	padding := minResourceColumnWidth - len(noun)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render(prefix) +
		StyleNoun.Render(noun) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
