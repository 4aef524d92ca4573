package wordml

// span is one inline piece of paragraph text. marked spans keep their
// delimiters ($...$ or **...**) so the caller can strip them.
type span struct {
	marked bool
	text   string
}

// mathSpans splits text into literal pieces and inline $...$ formulas. A
// formula span needs at least one character between the dollars; a dollar
// without a closer stays literal.
func mathSpans(text string) []span {
	var spans []span

	lit := 0
	pos := 0

	for pos < len(text) {
		open := indexByteFrom(text, '$', pos)
		if open < 0 {
			break
		}

		closing := indexByteFrom(text, '$', open+1)
		if closing < 0 {
			break
		}

		if closing == open+1 { // "$$" has no content, keep looking
			pos = open + 1
			continue
		}

		if open > lit {
			spans = append(spans, span{text: text[lit:open]})
		}

		spans = append(spans, span{marked: true, text: text[open : closing+1]})
		lit, pos = closing+1, closing+1
	}

	if lit < len(text) {
		spans = append(spans, span{text: text[lit:]})
	}

	return spans
}

// boldSpans splits text into literal pieces and **...** runs. The content of
// a bold span cannot contain an asterisk.
func boldSpans(text string) []span {
	var spans []span

	lit := 0
	pos := 0

	for pos+4 <= len(text) {
		if text[pos] != '*' || text[pos+1] != '*' {
			pos++
			continue
		}

		end := pos + 2
		for end < len(text) && text[end] != '*' {
			end++
		}

		if end == pos+2 || end+1 >= len(text) || text[end+1] != '*' {
			pos++
			continue
		}

		if pos > lit {
			spans = append(spans, span{text: text[lit:pos]})
		}

		spans = append(spans, span{marked: true, text: text[pos : end+2]})
		lit, pos = end+2, end+2
	}

	if lit < len(text) {
		spans = append(spans, span{text: text[lit:]})
	}

	return spans
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}

	return -1
}
