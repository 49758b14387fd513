package kss

import "strings"

// block is one comment as it appeared in the source, with comment markers removed.
type block struct {
	lines []string
}

func (b block) raw() string { return strings.Join(b.lines, "\n") }

// extractBlocks returns the comments of text in source order. Consecutive "//"
// lines form one block; each "/* */" comment is a block of its own.
func extractBlocks(text string) []block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var (
		blocks  []block
		current []string
		inLine  bool
		inMulti bool
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, block{lines: current})
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inMulti {
			if idx := strings.Index(trimmed, "*/"); idx >= 0 {
				current = append(current, cleanMultiLine(trimmed[:idx]))
				inMulti = false
				flush()
				continue
			}
			current = append(current, cleanMultiLine(trimmed))
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "//"):
			if !inLine {
				flush()
				inLine = true
			}
			current = append(current, cleanLineComment(trimmed))
		case strings.HasPrefix(trimmed, "/*"):
			if inLine {
				flush()
				inLine = false
			}
			rest := trimmed[2:]
			if idx := strings.Index(rest, "*/"); idx >= 0 {
				current = append(current, strings.TrimSpace(strings.Trim(rest[:idx], "*")))
				flush()
				continue
			}
			inMulti = true
			if s := strings.TrimSpace(strings.TrimLeft(rest, "*")); s != "" {
				current = append(current, s)
			}
		default:
			if inLine {
				flush()
				inLine = false
			}
		}
	}
	flush()
	return blocks
}

func cleanLineComment(trimmed string) string {
	s := strings.TrimPrefix(trimmed, "//")
	s = strings.TrimPrefix(s, " ")
	return strings.TrimRight(s, " \t")
}

func cleanMultiLine(trimmed string) string {
	s := strings.TrimPrefix(trimmed, "*")
	s = strings.TrimPrefix(s, " ")
	return strings.TrimRight(s, " \t")
}

// paragraphs splits block lines on blank lines, dropping empty paragraphs.
func paragraphs(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
