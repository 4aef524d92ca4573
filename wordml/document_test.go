package wordml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typeset/docxmd/wordml"
)

func TestDocumentXMLEnvelope(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	assert.Contains(t, out, `xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"`)
	assert.Contains(t, out, `mc:Ignorable="w14 w15 wp14"`)
	assert.Contains(t, out, `<w:pgSz w:w="11906" w:h="16838"/>`)
	assert.Contains(t, out, `<w:pgMar w:top="1474" w:right="1531" w:bottom="1474" w:left="1531" w:header="851" w:footer="992" w:gutter="0"/>`)
	assert.Contains(t, out, `<w:headerReference r:id="rId3" w:type="default"/>`)
	assert.Contains(t, out, `<w:footerReference r:id="rId4" w:type="default"/>`)
	assert.True(t, strings.HasSuffix(out, "</w:body></w:document>"))

	// the leading empty paragraph takes the first ID
	assert.Contains(t, out, `w14:paraId="10000000"`)
}

func TestDocumentXMLHeadings(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("# Intro\n## Detail\n### More")
	require.NoError(t, err)

	assert.Contains(t, out, `<w:pStyle w:val="2"/>`)
	assert.Contains(t, out, `<w:pStyle w:val="3"/>`)
	assert.Contains(t, out, `<w:pStyle w:val="4"/>`)
	assert.Contains(t, out, `<w:numPr><w:ilvl w:val="1"/><w:numId w:val="0"/></w:numPr>`)
	assert.Contains(t, out, `<w:t>Intro</w:t>`)
}

func TestDocumentXMLBodyParagraph(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("mass $m$ is **fixed** here")
	require.NoError(t, err)

	assert.Contains(t, out, `<w:pStyle w:val="29"/>`)
	assert.Contains(t, out, `<m:oMath>`)
	assert.Contains(t, out, `<m:t>m</m:t>`)
	assert.Contains(t, out, `<w:b/>`)
	assert.Contains(t, out, `<w:t>fixed</w:t>`)
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "$")
}

func TestDocumentXMLFormula(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("$$\\frac{a}{b}$$")
	require.NoError(t, err)

	assert.Contains(t, out, `<w:pStyle w:val="41"/>`)
	assert.Contains(t, out, `<m:f>`)

	// a tab run on each side of the math zone
	assert.Equal(t, 2, strings.Count(out, "<w:tab/>"))
	tab := strings.Index(out, "<w:tab/>")
	math := strings.Index(out, "<m:oMath>")
	assert.Less(t, tab, math)
	assert.Greater(t, strings.LastIndex(out, "<w:tab/>"), math)
}

func TestDocumentXMLCode(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("```\nfirst\n  second\n```")
	require.NoError(t, err)

	assert.Contains(t, out, `<w:pStyle w:val="58"/>`)
	assert.Contains(t, out, `w:ascii="Courier New"`)
	assert.Contains(t, out, `<w:r><w:br/></w:r>`)
	assert.Contains(t, out, `<w:t>first</w:t>`)
	assert.Contains(t, out, `<w:t xml:space="preserve">  second</w:t>`)
}

func TestDocumentXMLTable(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("| A | B |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, out, `<w:tblStyle w:val="46"/>`)
	assert.Contains(t, out, `<w:tblW w:w="5000" w:type="pct"/>`)
	assert.Contains(t, out, `<w:gridCol w:w="4500"/>`)
	assert.Contains(t, out, `<w:tcW w:w="4500" w:type="dxa"/>`)
	assert.Equal(t, 2, strings.Count(out, "<w:tr>"))
	assert.Equal(t, 2, strings.Count(out, "<w:b/>"), "only header cells are bold")
}

func TestDocumentXMLEscaping(t *testing.T) {
	out, err := wordml.NewSession().DocumentXML("a < b & c")
	require.NoError(t, err)

	assert.Contains(t, out, "a &lt; b &amp; c")
}
