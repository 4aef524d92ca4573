package omml

import "strings"

// operand matches one script operand (a base, subscript or superscript
// value) at the start of s and returns the captured text.
type operand func(s string) (text string, size int, ok bool)

// The sub/superscript rules accept a fixed list of surface syntaxes, tried in
// order. The lists are not symmetric on purpose: a macro base never takes a
// macro subscript, a single-character subscript never pairs with a braced
// superscript, and so on. Do not "complete" them, inputs outside the lists
// degrade through the literal rules and that shape is relied upon.

var subSupForms = [][3]operand{
	{macroOperand, bracedOperand, bracedOperand}, // \omega_{e}^{*}
	{macroOperand, charOperand, starOperand},     // \omega_e^*
	{charOperand, macroOperand, bracedOperand},   // i_\alpha^{*}
	{charOperand, macroOperand, starOperand},     // i_\alpha^*
	{charOperand, bracedOperand, bracedOperand},  // u_{d}^{*}
	{charOperand, charOperand, starOperand},      // u_d^*
}

var subForms = [][2]operand{
	{macroOperand, bracedOperand}, // \omega_{e}
	{macroOperand, charOperand},   // \omega_e
	{charOperand, macroOperand},   // i_\alpha
	{charOperand, bracedOperand},  // u_{d}
	{charOperand, charOperand},    // u_d
}

var supForms = [][2]operand{
	{macroOperand, bracedOperand}, // \omega^{*}
	{macroOperand, starOperand},   // \omega^*
	{charOperand, bracedOperand},  // x^{n}
	{charOperand, starOperand},    // x^2
}

// scripted matches base_sub or base_sub^sup depending on whether sup is nil.
// Operands must be adjacent to their separators, no whitespace is allowed.
func scripted(expr string, base, sub, sup operand) (b, s, u string, size int, ok bool) {
	b, bsize, ok := base(expr)
	if !ok || bsize >= len(expr) || expr[bsize] != '_' {
		return "", "", "", 0, false
	}

	s, ssize, ok := sub(expr[bsize+1:])
	if !ok {
		return "", "", "", 0, false
	}

	size = bsize + 1 + ssize
	if sup == nil {
		return b, s, "", size, true
	}

	if size >= len(expr) || expr[size] != '^' {
		return "", "", "", 0, false
	}

	u, usize, ok := sup(expr[size+1:])
	if !ok {
		return "", "", "", 0, false
	}

	return b, s, u, size + 1 + usize, true
}

// scriptedSup matches base^sup.
func scriptedSup(expr string, base, sup operand) (b, u string, size int, ok bool) {
	b, bsize, ok := base(expr)
	if !ok || bsize >= len(expr) || expr[bsize] != '^' {
		return "", "", 0, false
	}

	u, usize, ok := sup(expr[bsize+1:])
	if !ok {
		return "", "", 0, false
	}

	return b, u, bsize + 1 + usize, true
}

// macro reads a backslash followed by one or more letters, returning the name
// without the backslash.
func macro(s string) (string, int, bool) {
	if len(s) < 2 || s[0] != '\\' {
		return "", 0, false
	}

	size := 1
	for size < len(s) && isLetter(s[size]) {
		size++
	}

	if size == 1 {
		return "", 0, false
	}

	return s[1:size], size, true
}

func macroOperand(s string) (string, int, bool) {
	return macro(s)
}

// bracedOperand reads {...} with non-empty content; the scan stops at the
// first closing brace, groups do not nest.
func bracedOperand(s string) (string, int, bool) {
	return braced(s)
}

func charOperand(s string) (string, int, bool) {
	if len(s) == 0 || !isAlnum(s[0]) {
		return "", 0, false
	}

	return s[:1], 1, true
}

// starOperand is charOperand plus the asterisk, used for superscripts
func starOperand(s string) (string, int, bool) {
	if len(s) == 0 || (!isAlnum(s[0]) && s[0] != '*') {
		return "", 0, false
	}

	return s[:1], 1, true
}

// braced reads a {...} group with at least one character of content, stopping
// at the first closing brace.
func braced(s string) (string, int, bool) {
	if len(s) == 0 || s[0] != '{' {
		return "", 0, false
	}

	end := strings.IndexByte(s, '}')
	if end < 2 {
		return "", 0, false
	}

	return s[1:end], end + 1, true
}

// parens reads a (...) group with at least one character of content, stopping
// at the first closing parenthesis.
func parens(s string) (string, int, bool) {
	if len(s) == 0 || s[0] != '(' {
		return "", 0, false
	}

	end := strings.IndexByte(s, ')')
	if end < 2 {
		return "", 0, false
	}

	return s[1:end], end + 1, true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isLetter(c) || '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
