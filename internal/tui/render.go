package tui

import "unicode/utf8"

// Truncate shortens s to at most width characters, ending in "..." when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width >= 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}

// WrapList joins items with ", " and breaks lines between items so no line
// is wider than width. An item wider than width gets a line of its own.
func WrapList(items []string, width int) []string {
	if width <= 0 || len(items) == 0 {
		return nil
	}

	var lines []string
	var line string
	for i, item := range items {
		if i < len(items)-1 {
			item += ","
		}
		switch {
		case line == "":
			line = item
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(item) <= width:
			line += " " + item
		default:
			lines = append(lines, line)
			line = item
		}
	}
	return append(lines, line)
}
