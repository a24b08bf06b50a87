package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

func padLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		lineWidth := xansi.StringWidth(line)
		if lineWidth < width {
			line = line + strings.Repeat(" ", width-lineWidth)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func textWidth(text string) int {
	return xansi.StringWidth(text)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 || xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Truncate(text, width-1, "") + "…"
}

func blockLineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
