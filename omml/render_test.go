package omml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/typeset/docxmd/omml"
)

const (
	marker     = `<m:ctrlPr><w:rPr><w:rFonts w:hint="eastAsia" w:ascii="Cambria Math" w:hAnsi="Cambria Math"/></w:rPr></m:ctrlPr>`
	runOpen    = `<m:r><m:rPr><m:sty m:val="p"/></m:rPr><w:rPr><w:rFonts w:hint="default" w:ascii="Cambria Math" w:hAnsi="Cambria Math"/></w:rPr><m:t>`
	runClose   = `</m:t></m:r>`
	glyphOpen  = `<m:r><m:rPr><m:sty m:val="p"/></m:rPr><w:rPr><w:rFonts w:hint="eastAsia" w:ascii="Cambria Math" w:hAnsi="Cambria Math"/></w:rPr><m:t>`
	glyphClose = `</m:t></m:r>`
)

func TestRender(t *testing.T) {
	tt := []struct {
		name     string
		equation omml.Equation
		render   string
	}{
		{
			name:     "literal run",
			equation: omml.Equation{&omml.Run{Text: "x"}},
			render:   `<m:oMath>` + runOpen + `x` + runClose + `</m:oMath>`,
		},
		{
			name:     "east asian hint selects the other font convention",
			equation: omml.Equation{&omml.Run{Text: "ω", Hint: omml.HintEastAsian}},
			render:   `<m:oMath>` + glyphOpen + `ω` + glyphClose + `</m:oMath>`,
		},
		{
			name:     "text is escaped",
			equation: omml.Equation{&omml.Run{Text: "a<b"}},
			render:   `<m:oMath>` + runOpen + `a&lt;b` + runClose + `</m:oMath>`,
		},
		{
			name: "fraction puts the marker after content everywhere",
			equation: omml.Equation{&omml.Fraction{
				Num: omml.Equation{&omml.Run{Text: "1"}},
				Den: omml.Equation{&omml.Run{Text: "2"}},
			}},
			render: `<m:oMath><m:f><m:fPr>` + marker + `</m:fPr>` +
				`<m:num>` + runOpen + `1` + runClose + marker + `</m:num>` +
				`<m:den>` + runOpen + `2` + runClose + marker + `</m:den>` +
				marker + `</m:f></m:oMath>`,
		},
		{
			name: "subscript and superscript are distinct elements",
			equation: omml.Equation{
				&omml.Sub{Base: &omml.Run{Text: "x"}, Sub: &omml.Run{Text: "d"}},
				&omml.Sup{Base: &omml.Run{Text: "y"}, Sup: &omml.Run{Text: "2"}},
			},
			render: `<m:oMath>` +
				`<m:sSub><m:sSubPr>` + marker + `</m:sSubPr>` +
				`<m:e>` + runOpen + `x` + runClose + marker + `</m:e>` +
				`<m:sub>` + runOpen + `d` + runClose + marker + `</m:sub>` +
				marker + `</m:sSub>` +
				`<m:sSup><m:sSupPr>` + marker + `</m:sSupPr>` +
				`<m:e>` + runOpen + `y` + runClose + marker + `</m:e>` +
				`<m:sup>` + runOpen + `2` + runClose + marker + `</m:sup>` +
				marker + `</m:sSup>` +
				`</m:oMath>`,
		},
		{
			name: "combined script",
			equation: omml.Equation{&omml.SubSup{
				Base: &omml.Run{Text: "ω", Hint: omml.HintEastAsian},
				Sub:  &omml.Run{Text: "e"},
				Sup:  &omml.Run{Text: "*"},
			}},
			render: `<m:oMath><m:sSubSup><m:sSubSupPr>` + marker + `</m:sSubSupPr>` +
				`<m:e>` + glyphOpen + `ω` + glyphClose + marker + `</m:e>` +
				`<m:sub>` + runOpen + `e` + runClose + marker + `</m:sub>` +
				`<m:sup>` + runOpen + `*` + runClose + marker + `</m:sup>` +
				marker + `</m:sSubSup></m:oMath>`,
		},
		{
			name: "delimiter writes both glyphs even when one is empty",
			equation: omml.Equation{&omml.Delimited{
				Open:  "{",
				Close: "",
				Inner: omml.Equation{&omml.Run{Text: "x"}},
			}},
			render: `<m:oMath><m:d><m:dPr><m:begChr m:val="{"/><m:endChr m:val=""/>` + marker + `</m:dPr>` +
				`<m:e>` + runOpen + `x` + runClose + marker + `</m:e>` +
				marker + `</m:d></m:oMath>`,
		},
		{
			name: "matrix declares a single centered column no matter the width",
			equation: omml.Equation{&omml.Matrix{Rows: [][]omml.Equation{
				{{&omml.Run{Text: "a"}}, {&omml.Run{Text: "b"}}},
			}}},
			render: `<m:oMath><m:m><m:mPr><m:mcs><m:mc><m:mcPr><m:count m:val="1"/><m:mcJc m:val="center"/></m:mcPr></m:mc></m:mcs><m:plcHide m:val="1"/>` + marker + `</m:mPr>` +
				`<m:mr>` +
				`<m:e>` + runOpen + `a` + runClose + marker + `</m:e>` +
				`<m:e>` + runOpen + `b` + runClose + marker + `</m:e>` +
				`</m:mr>` +
				marker + `</m:m></m:oMath>`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			if err := omml.Render(buffer, tc.equation); err != nil {
				t.Fatal("unable to render:", err)
			}

			if diff := cmp.Diff(tc.render, buffer.String()); diff != "" {
				t.Errorf("Markup does not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAndRender(t *testing.T) {
	eq, err := omml.Parse("$\\frac{x_d^*}{2}$")
	if err != nil {
		t.Fatal("unable to parse:", err)
	}

	buffer := bytes.NewBuffer(nil)
	if err := omml.Render(buffer, eq); err != nil {
		t.Fatal("unable to render:", err)
	}

	out := buffer.String()

	for _, want := range []string{"<m:oMath>", "<m:f>", "<m:sSubSup>", "<m:num>", "<m:den>"} {
		if !strings.Contains(out, want) {
			t.Errorf("Markup is missing %s:\n%s", want, out)
		}
	}
}
