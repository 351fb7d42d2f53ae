package views

import (
	"fmt"
	"strings"
)

// RenderHelpContentPlain generates the plain text help shown in the
// pager.
func RenderHelpContentPlain() string {
	var b strings.Builder

	b.WriteString("roven Help\n")
	b.WriteString("==========\n\n")

	section := func(title string, entries [][2]string) {
		b.WriteString(title)
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", e[0], e[1]))
		}
		b.WriteString("\n")
	}

	section("Search", [][2]string{
		{"/", "Open the search overlay"},
		{"ctrl+k", "Open the search overlay"},
		{"enter", "Open the selected result"},
		{"esc", "Close the overlay"},
	})

	section("Browsing", [][2]string{
		{"esc", "Go back to the previous screen"},
		{"enter", "Page the full detail text"},
		{"?", "Show this help"},
		{"q", "Quit"},
	})

	b.WriteString("Press q to close\n")
	return b.String()
}
