package omml

// FontHint selects the glyph-shaping convention a downstream renderer applies
// to a literal run.
type FontHint int

const (
	HintDefault FontHint = iota
	HintEastAsian
)

func (h FontHint) String() string {
	if h == HintEastAsian {
		return "eastAsia"
	}

	return "default"
}

// Equation is a parsed formula: an ordered sequence of nodes. A nil Equation
// means the input contained no formula at all, which is different from a
// formula that parsed to nothing.
type Equation []Node

type Node interface {
	node()
}

// Run is a literal text leaf.
type Run struct {
	Text string
	Hint FontHint
}

type Fraction struct {
	Num Equation
	Den Equation
}

// Sub, Sup and SubSup are kept as three separate kinds because the output
// format serializes them as structurally different elements.
type Sub struct {
	Base Node
	Sub  Node
}

type Sup struct {
	Base Node
	Sup  Node
}

type SubSup struct {
	Base Node
	Sub  Node
	Sup  Node
}

// Delimited wraps a sub-expression in an open/close glyph pair. Either glyph
// may be empty, for example the cases environment opens with "{" and never
// closes.
type Delimited struct {
	Open  string
	Close string
	Inner Equation
}

// Matrix holds cells in row-major order. Rows may have uneven width, the
// serialized form always declares a single center-justified column anyway.
type Matrix struct {
	Rows [][]Equation
}

func (*Run) node()       {}
func (*Fraction) node()  {}
func (*Sub) node()       {}
func (*Sup) node()       {}
func (*SubSup) node()    {}
func (*Delimited) node() {}
func (*Matrix) node()    {}
