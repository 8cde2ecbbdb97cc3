package search

import (
	"bufio"
	"strings"
)

// PlainText flattens markdown into one fact per line for indexing. Table
// rows become space-joined cells, separator rows are dropped, and heading,
// list and emphasis markers are stripped.
func PlainText(md string) string {
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(md))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	writeFact := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// table row: "| ... |"
		if strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|") {
			cells := strings.Split(strings.Trim(line, "|"), "|")
			cleaned := make([]string, 0, len(cells))
			sep := true
			for _, c := range cells {
				cell := strings.TrimSpace(c)
				if strings.Trim(cell, ":- ") != "" {
					sep = false
				}
				if cell != "" {
					cleaned = append(cleaned, cell)
				}
			}
			if !sep {
				writeFact(stripInline(strings.Join(cleaned, " ")))
			}
			continue
		}

		line = strings.TrimLeft(line, "#>")
		line = strings.TrimSpace(line)
		for _, p := range []string{"- ", "* ", "+ "} {
			line = strings.TrimPrefix(line, p)
		}
		writeFact(stripInline(line))
	}
	return b.String()
}

var inlineMarkers = strings.NewReplacer("**", "", "__", "", "`", "", "*", "")

func stripInline(s string) string { return inlineMarkers.Replace(s) }
