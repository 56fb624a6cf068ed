// Package textutil formats text for terminal output.
package textutil

import "strings"

// Wrap splits text into lines no longer than width, breaking on whitespace. A word longer than
// width is kept whole on its own line. Runs of whitespace collapse into a single space.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Columns renders rows of two cells as an aligned table. The second cell is wrapped to fit in
// width; continuation lines are indented under it.
func Columns(rows [][2]string, indent, width int) string {
	nameWidth := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, len(row[0]))
	}
	pad := strings.Repeat(" ", indent)
	gutter := nameWidth + 4

	var b strings.Builder
	for _, row := range rows {
		lines := Wrap(row[1], width-indent-gutter)
		if len(lines) == 0 {
			b.WriteString(pad + row[0] + "\n")
			continue
		}
		b.WriteString(pad + row[0] + strings.Repeat(" ", gutter-len(row[0])) + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(pad + strings.Repeat(" ", gutter) + line + "\n")
		}
	}
	return b.String()
}
