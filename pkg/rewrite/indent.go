package rewrite

import "strings"

// Reindent places text so that its first line starts at the insertion point
// and every following line is indented with indent. The common indentation
// text carries is removed first; relative indentation is kept.
func Reindent(text, indent string) string {
	lines := strings.Split(text, "\n")
	base := commonIndent(lines)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		line = strings.TrimPrefix(line, base)
		if i == 0 {
			lines[i] = strings.TrimLeft(line, " \t")
			continue
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// LineIndent returns the leading whitespace of the line containing offset.
func LineIndent(text string, offset int) string {
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	prefix := text[lineStart:offset]
	return prefix[:len(prefix)-len(strings.TrimLeft(prefix, " \t"))]
}

func commonIndent(lines []string) string {
	var base string
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			base = ws
			first = false
			continue
		}
		for !strings.HasPrefix(ws, base) {
			base = base[:len(base)-1]
		}
	}
	return base
}
