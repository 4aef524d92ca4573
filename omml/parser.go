package omml

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDepth is the nesting cap used when Parser.MaxDepth is zero.
const DefaultMaxDepth = 200

// ErrTooDeep is reported when an expression nests deeper than the parser's
// depth cap.
var ErrTooDeep = errors.New("expression too deeply nested")

// Parser converts a LaTeX-like math string into an Equation. The zero value
// is ready to use.
type Parser struct {
	MaxDepth int // maximum sub-expression nesting, DefaultMaxDepth when zero
}

// Parse converts a formula using a parser with default settings.
func Parse(input string) (Equation, error) {
	return (&Parser{}).Parse(input)
}

// Parse strips one enclosing $...$ or $$...$$ pair and parses the remainder.
// Blank input yields a nil Equation. Parsing consumes every character: what
// no rule recognizes is dropped one character at a time, so the only error
// this can return is ErrTooDeep.
func (p *Parser) Parse(input string) (Equation, error) {
	expr := strings.TrimSpace(input)

	if strings.HasPrefix(expr, "$$") && strings.HasSuffix(expr, "$$") && len(expr) >= 4 {
		expr = strings.TrimSpace(expr[2 : len(expr)-2])
	} else if strings.HasPrefix(expr, "$") && strings.HasSuffix(expr, "$") && len(expr) >= 2 {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}

	if expr == "" {
		return nil, nil
	}

	return p.expression(expr, 0)
}

// recognizers in fixed priority order; the first one to match wins. The order
// is a contract, not an optimization: it is what disambiguates overlapping
// prefixes, e.g. "cos(" is a function call and never a "cos" literal followed
// by a bare parenthesis group. Populated in init: the recognizers call back
// into recognize through expression, so a composite literal here would form
// an initialization cycle.
var recognizers []func(*Parser, string, int) ([]Node, int, bool, error)

func init() {
	recognizers = []func(*Parser, string, int) ([]Node, int, bool, error){
		(*Parser).functionCall,
		(*Parser).parenthesized,
		(*Parser).bmatrix,
		(*Parser).cases,
		(*Parser).fraction,
		(*Parser).subSup,
		(*Parser).subscript,
		(*Parser).superscript,
		(*Parser).greekMacro,
		(*Parser).operator,
		(*Parser).literal,
	}
}

// expression drives recognizer dispatch over expr until it is fully consumed.
// Every recognizer consumes a strictly positive prefix and the fallback drops
// one character, so the loop always terminates. depth counts sub-expression
// nesting only, consuming the tail of the input does not grow it.
func (p *Parser) expression(expr string, depth int) (Equation, error) {
	limit := p.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}

	if depth > limit {
		return nil, ErrTooDeep
	}

	var eq Equation

	for {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			return eq, nil
		}

		nodes, size, ok, err := p.recognize(expr, depth)
		if err != nil {
			return nil, err
		}

		if !ok {
			// nothing matched: drop one character and continue
			_, size = utf8.DecodeRuneInString(expr)
			expr = expr[size:]
			continue
		}

		eq = append(eq, nodes...)
		expr = expr[size:]
	}
}

func (p *Parser) recognize(expr string, depth int) ([]Node, int, bool, error) {
	for _, recognize := range recognizers {
		nodes, size, ok, err := recognize(p, expr, depth)
		if ok || err != nil {
			return nodes, size, ok, err
		}
	}

	return nil, 0, false, nil
}

// functions recognized by the function-call rule, in match order ("log"
// before "ln" so the longer name gets a chance)
var functions = []string{"cos", "sin", "tan", "log", "ln", "exp"}

// functionCall reads a known function name, with or without a leading
// backslash, immediately followed by a parenthesized argument. The name stays
// a literal run, the argument becomes a real delimiter group.
func (p *Parser) functionCall(expr string, depth int) ([]Node, int, bool, error) {
	rest := expr
	size := 0

	if strings.HasPrefix(rest, "\\") {
		rest = rest[1:]
		size = 1
	}

	name := ""
	for _, fn := range functions {
		if strings.HasPrefix(rest, fn) {
			name = fn
			break
		}
	}

	if name == "" {
		return nil, 0, false, nil
	}

	rest = rest[len(name):]
	size += len(name)

	for len(rest) > 0 && isSpace(rest[0]) {
		rest = rest[1:]
		size++
	}

	inner, isize, ok := parens(rest)
	if !ok {
		return nil, 0, false, nil
	}

	arg, err := p.expression(inner, depth+1)
	if err != nil {
		return nil, 0, false, err
	}

	nodes := []Node{
		&Run{Text: name},
		&Delimited{Open: "(", Close: ")", Inner: arg},
	}

	return nodes, size + isize, true, nil
}

// parenthesized reads a bare (...) group. A group containing any backslash
// macro is wrapped in a real delimiter element; a group of plain content
// stays three literal pieces: "(", the flattened content, ")". The asymmetry
// mirrors the authoring tool output the downstream renderer was tuned
// against, keep it even though it looks accidental.
func (p *Parser) parenthesized(expr string, depth int) ([]Node, int, bool, error) {
	inner, size, ok := parens(expr)
	if !ok {
		return nil, 0, false, nil
	}

	content, err := p.expression(inner, depth+1)
	if err != nil {
		return nil, 0, false, err
	}

	if strings.Contains(inner, "\\") {
		return []Node{&Delimited{Open: "(", Close: ")", Inner: content}}, size, true, nil
	}

	nodes := append([]Node{&Run{Text: "("}}, content...)
	nodes = append(nodes, &Run{Text: ")"})

	return nodes, size, true, nil
}

const (
	beginMatrix = "\\begin{bmatrix}"
	endMatrix   = "\\end{bmatrix}"
	beginCases  = "\\begin{cases}"
	endCases    = "\\end{cases}"
	rowBreak    = "\\\\"
)

// bmatrix reads a bmatrix environment into a matrix wrapped in square
// bracket delimiters. Rows are split on \\, cells on &.
func (p *Parser) bmatrix(expr string, depth int) ([]Node, int, bool, error) {
	if !strings.HasPrefix(expr, beginMatrix) {
		return nil, 0, false, nil
	}

	end := strings.Index(expr, endMatrix)
	if end < 0 {
		return nil, 0, false, nil
	}

	content := strings.TrimSpace(expr[len(beginMatrix):end])
	matrix := &Matrix{}

	for _, row := range strings.Split(content, rowBreak) {
		if row = strings.TrimSpace(row); row == "" {
			continue
		}

		var cells []Equation
		for _, cell := range strings.Split(row, "&") {
			eq, err := p.expression(strings.TrimSpace(cell), depth+1)
			if err != nil {
				return nil, 0, false, err
			}

			cells = append(cells, eq)
		}

		matrix.Rows = append(matrix.Rows, cells)
	}

	node := &Delimited{Open: "[", Close: "]", Inner: Equation{matrix}}

	return []Node{node}, end + len(endMatrix), true, nil
}

// cases reads a cases environment into a single brace delimiter with an empty
// closing glyph. Rows after the first are separated by a space run. Only the
// part of a row left of & is kept, the condition column has no place in the
// output format and is dropped.
func (p *Parser) cases(expr string, depth int) ([]Node, int, bool, error) {
	if !strings.HasPrefix(expr, beginCases) {
		return nil, 0, false, nil
	}

	end := strings.Index(expr, endCases)
	if end < 0 {
		return nil, 0, false, nil
	}

	content := strings.TrimSpace(expr[len(beginCases):end])

	var rows []string
	for _, row := range strings.Split(content, rowBreak) {
		if row = strings.TrimSpace(row); row != "" {
			rows = append(rows, row)
		}
	}

	var inner Equation
	for i, row := range rows {
		if i > 0 {
			inner = append(inner, &Run{Text: " "})
		}

		if cut := strings.Index(row, "&"); cut >= 0 {
			row = strings.TrimSpace(row[:cut])
		}

		eq, err := p.expression(row, depth+1)
		if err != nil {
			return nil, 0, false, err
		}

		inner = append(inner, eq...)
	}

	node := &Delimited{Open: "{", Close: "", Inner: inner}

	return []Node{node}, end + len(endCases), true, nil
}

// fraction reads \frac{A}{B}. Brace groups do not nest, the scan stops at the
// first closing brace.
func (p *Parser) fraction(expr string, depth int) ([]Node, int, bool, error) {
	const prefix = "\\frac"

	if !strings.HasPrefix(expr, prefix) {
		return nil, 0, false, nil
	}

	num, nsize, ok := braced(expr[len(prefix):])
	if !ok {
		return nil, 0, false, nil
	}

	den, dsize, ok := braced(expr[len(prefix)+nsize:])
	if !ok {
		return nil, 0, false, nil
	}

	numerator, err := p.expression(num, depth+1)
	if err != nil {
		return nil, 0, false, err
	}

	denominator, err := p.expression(den, depth+1)
	if err != nil {
		return nil, 0, false, err
	}

	node := &Fraction{Num: numerator, Den: denominator}

	return []Node{node}, len(prefix) + nsize + dsize, true, nil
}

func (p *Parser) subSup(expr string, depth int) ([]Node, int, bool, error) {
	for _, form := range subSupForms {
		base, sub, sup, size, ok := scripted(expr, form[0], form[1], form[2])
		if !ok {
			continue
		}

		node := &SubSup{Base: glyphRun(base), Sub: glyphRun(sub), Sup: glyphRun(sup)}

		return []Node{node}, size, true, nil
	}

	return nil, 0, false, nil
}

func (p *Parser) subscript(expr string, depth int) ([]Node, int, bool, error) {
	for _, form := range subForms {
		base, sub, _, size, ok := scripted(expr, form[0], form[1], nil)
		if !ok {
			continue
		}

		node := &Sub{Base: glyphRun(base), Sub: glyphRun(sub)}

		return []Node{node}, size, true, nil
	}

	return nil, 0, false, nil
}

func (p *Parser) superscript(expr string, depth int) ([]Node, int, bool, error) {
	for _, form := range supForms {
		base, sup, size, ok := scriptedSup(expr, form[0], form[1])
		if !ok {
			continue
		}

		node := &Sup{Base: glyphRun(base), Sup: glyphRun(sup)}

		return []Node{node}, size, true, nil
	}

	return nil, 0, false, nil
}

// greekMacro reads a backslash macro whose name is in the symbol table. An
// unknown name is not an error and not a match either: the backslash falls
// to the one-character drop and the name becomes a literal run.
func (p *Parser) greekMacro(expr string, depth int) ([]Node, int, bool, error) {
	name, size, ok := macro(expr)
	if !ok {
		return nil, 0, false, nil
	}

	glyph, ok := greek[name]
	if !ok {
		return nil, 0, false, nil
	}

	return []Node{&Run{Text: glyph, Hint: HintEastAsian}}, size, true, nil
}

// operators which become single-character literal runs
const operators = "=+-*/()[]{},;: "

func (p *Parser) operator(expr string, depth int) ([]Node, int, bool, error) {
	if strings.IndexByte(operators, expr[0]) < 0 {
		return nil, 0, false, nil
	}

	return []Node{&Run{Text: expr[:1]}}, 1, true, nil
}

// literal reads a run of alphanumeric and period characters.
func (p *Parser) literal(expr string, depth int) ([]Node, int, bool, error) {
	size := 0
	for size < len(expr) && (isAlnum(expr[size]) || expr[size] == '.') {
		size++
	}

	if size == 0 {
		return nil, 0, false, nil
	}

	return []Node{&Run{Text: expr[:size]}}, size, true, nil
}
