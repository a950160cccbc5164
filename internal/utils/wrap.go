package utils

import "strings"

// WrapWords splits text into lines of at most width runes, breaking on
// spaces. A single word longer than width is split across lines.
func WrapWords(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if curLen > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curLen = 0
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		if len(w) == 0 {
			continue
		}
		if curLen > 0 && curLen+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(string(w))
		curLen += len(w)
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
