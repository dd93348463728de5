package vellum

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"vellum/style"
)

// RenderFooter renders position, a status note, and the source name.
func RenderFooter(current, total int, name, status string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if status != "" {
		left += "  " + status
	}
	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
