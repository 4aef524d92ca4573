package omml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ctrlPr is the control-properties marker. It carries no data but the target
// format requires it as the last child of every composite element and of
// every content slot, after content.
const ctrlPr = `<m:ctrlPr><w:rPr><w:rFonts w:hint="eastAsia" w:ascii="Cambria Math" w:hAnsi="Cambria Math"/></w:rPr></m:ctrlPr>`

// Render serializes an equation to Office Math markup wrapped in m:oMath.
// Namespace prefixes (m: and w:) are written literally, their declarations
// are expected on an enclosing document element.
func Render(w io.Writer, eq Equation) error {
	if _, err := fmt.Fprint(w, "<m:oMath>"); err != nil {
		return err
	}

	if err := renderNodes(w, eq); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</m:oMath>")
	return err
}

func renderNodes(w io.Writer, eq Equation) error {
	for _, node := range eq {
		if err := renderNode(w, node); err != nil {
			return err
		}
	}

	return nil
}

func renderNode(w io.Writer, node Node) error {
	switch n := node.(type) {
	case *Run:
		return renderRun(w, n)
	case *Fraction:
		return renderFraction(w, n)
	case *Sub:
		return renderScripts(w, "sSub", n.Base, n.Sub, nil)
	case *Sup:
		return renderScripts(w, "sSup", n.Base, nil, n.Sup)
	case *SubSup:
		return renderScripts(w, "sSubSup", n.Base, n.Sub, n.Sup)
	case *Delimited:
		return renderDelimited(w, n)
	case *Matrix:
		return renderMatrix(w, n)
	default:
		return fmt.Errorf("unexpected node %T", node)
	}
}

func renderRun(w io.Writer, r *Run) error {
	_, err := fmt.Fprintf(w, `<m:r><m:rPr><m:sty m:val="p"/></m:rPr><w:rPr><w:rFonts w:hint="%s" w:ascii="Cambria Math" w:hAnsi="Cambria Math"/></w:rPr><m:t>`, r.Hint)
	if err != nil {
		return err
	}

	if err := xml.EscapeText(w, []byte(r.Text)); err != nil {
		return err
	}

	_, err = fmt.Fprint(w, "</m:t></m:r>")
	return err
}

func renderFraction(w io.Writer, f *Fraction) error {
	if _, err := fmt.Fprint(w, "<m:f><m:fPr>", ctrlPr, "</m:fPr>"); err != nil {
		return err
	}

	if err := slot(w, "num", f.Num); err != nil {
		return err
	}

	if err := slot(w, "den", f.Den); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, ctrlPr, "</m:f>")
	return err
}

// renderScripts writes m:sSub, m:sSup or m:sSubSup: a property block, the
// base slot, then whichever of sub/sup the element kind has.
func renderScripts(w io.Writer, tag string, base, sub, sup Node) error {
	if _, err := fmt.Fprintf(w, "<m:%s><m:%sPr>%s</m:%sPr>", tag, tag, ctrlPr, tag); err != nil {
		return err
	}

	if err := slot(w, "e", Equation{base}); err != nil {
		return err
	}

	if sub != nil {
		if err := slot(w, "sub", Equation{sub}); err != nil {
			return err
		}
	}

	if sup != nil {
		if err := slot(w, "sup", Equation{sup}); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s</m:%s>", ctrlPr, tag)
	return err
}

func renderDelimited(w io.Writer, d *Delimited) error {
	// both glyph codes are always written, even when one is empty
	_, err := fmt.Fprintf(w, `<m:d><m:dPr><m:begChr m:val="%s"/><m:endChr m:val="%s"/>%s</m:dPr>`, escape(d.Open), escape(d.Close), ctrlPr)
	if err != nil {
		return err
	}

	if err := slot(w, "e", d.Inner); err != nil {
		return err
	}

	_, err = fmt.Fprint(w, ctrlPr, "</m:d>")
	return err
}

func renderMatrix(w io.Writer, m *Matrix) error {
	// one column definition, centered, no matter how wide the rows really are
	_, err := fmt.Fprint(w, `<m:m><m:mPr><m:mcs><m:mc><m:mcPr><m:count m:val="1"/><m:mcJc m:val="center"/></m:mcPr></m:mc></m:mcs><m:plcHide m:val="1"/>`, ctrlPr, `</m:mPr>`)
	if err != nil {
		return err
	}

	for _, row := range m.Rows {
		if _, err := fmt.Fprint(w, "<m:mr>"); err != nil {
			return err
		}

		for _, cell := range row {
			if err := slot(w, "e", cell); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, "</m:mr>"); err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(w, ctrlPr, "</m:m>")
	return err
}

// slot writes one content element (m:num, m:den, m:e, m:sub, m:sup): the
// children first, the control-properties marker last.
func slot(w io.Writer, tag string, eq Equation) error {
	if _, err := fmt.Fprintf(w, "<m:%s>", tag); err != nil {
		return err
	}

	if err := renderNodes(w, eq); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s</m:%s>", ctrlPr, tag)
	return err
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
