package wordml

import "strings"

// Block is one block-level element of a markdown source.
type Block interface {
	block()
}

type Heading struct {
	Level int
	Text  string
}

type Table struct {
	Header []string
	Rows   [][]string
}

type Code struct {
	Text string
}

// Formula is a display formula. Source keeps the $$ delimiters, the equation
// parser strips them itself.
type Formula struct {
	Source string
}

type Paragraph struct {
	Text string
}

func (*Heading) block()   {}
func (*Table) block()     {}
func (*Code) block()      {}
func (*Formula) block()   {}
func (*Paragraph) block() {}

// Split breaks markdown source into block elements: three heading levels,
// pipe tables, fenced code, display formulas and plain paragraphs. Inline
// markup (bold markers, $ formulas) stays inside paragraph text and is
// resolved during assembly.
func Split(source string) []Block {
	lines := strings.Split(source, "\n")

	var blocks []Block

	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], " \t\r")
		stripped := strings.TrimSpace(line)

		switch {
		case stripped == "":
			i++

		case strings.HasPrefix(stripped, "### "):
			blocks = append(blocks, &Heading{Level: 3, Text: strings.TrimSpace(stripped[4:])})
			i++

		case strings.HasPrefix(stripped, "## "):
			blocks = append(blocks, &Heading{Level: 2, Text: strings.TrimSpace(stripped[3:])})
			i++

		case strings.HasPrefix(stripped, "# "):
			blocks = append(blocks, &Heading{Level: 1, Text: strings.TrimSpace(stripped[2:])})
			i++

		case strings.HasPrefix(stripped, "|"):
			var rows []string
			for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "|") {
				rows = append(rows, lines[i])
				i++
			}

			// a table needs at least a header and a separator line,
			// anything shorter is silently dropped
			if table := parseTable(rows); table != nil {
				blocks = append(blocks, table)
			}

		case strings.HasPrefix(stripped, "```"):
			i++

			var code []string
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				code = append(code, lines[i])
				i++
			}

			i++ // closing fence

			blocks = append(blocks, &Code{Text: strings.Join(code, "\n")})

		case strings.HasPrefix(stripped, "$$"):
			formula := []string{stripped}

			if !strings.HasSuffix(stripped, "$$") || stripped == "$$" {
				i++
				for i < len(lines) && !strings.HasSuffix(strings.TrimSpace(lines[i]), "$$") {
					formula = append(formula, lines[i])
					i++
				}

				if i < len(lines) {
					formula = append(formula, strings.TrimSpace(lines[i]))
					i++
				}
			} else {
				i++
			}

			blocks = append(blocks, &Formula{Source: strings.Join(formula, "\n")})

		default:
			para := []string{line}
			i++

			for i < len(lines) {
				next := strings.TrimRight(lines[i], " \t\r")
				trimmed := strings.TrimSpace(next)

				if trimmed == "" || isBlockStart(trimmed) {
					break
				}

				para = append(para, next)
				i++
			}

			blocks = append(blocks, &Paragraph{Text: strings.Join(para, "\n")})
		}
	}

	return blocks
}

func isBlockStart(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "|") ||
		strings.HasPrefix(line, "$$") ||
		strings.HasPrefix(line, "```")
}

func parseTable(lines []string) *Table {
	if len(lines) < 2 {
		return nil
	}

	header := cells(lines[0])
	if len(header) == 0 {
		return nil
	}

	var rows [][]string
	for _, line := range lines[2:] { // lines[1] is the separator
		if strings.TrimSpace(line) == "" {
			continue
		}

		if row := cells(line); len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return &Table{Header: header, Rows: rows}
}

// cells splits a pipe row, dropping the empty pieces outside the first and
// last pipe.
func cells(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return nil
	}

	parts = parts[1 : len(parts)-1]

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}

	return out
}
