package wordml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/typeset/docxmd/omml"
)

const documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
	`<w:document` +
	` xmlns:wpc="http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas"` +
	` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
	` xmlns:o="urn:schemas-microsoft-com:office:office"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"` +
	` xmlns:v="urn:schemas-microsoft-com:vml"` +
	` xmlns:wp14="http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"` +
	` xmlns:w10="urn:schemas-microsoft-com:office:word"` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
	` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml"` +
	` xmlns:wpg="http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"` +
	` xmlns:wpi="http://schemas.microsoft.com/office/word/2010/wordprocessingInk"` +
	` xmlns:wne="http://schemas.microsoft.com/office/word/2006/wordml"` +
	` xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"` +
	` xmlns:wpsCustomData="http://www.wps.cn/officeDocument/2013/wpsCustomData"` +
	` mc:Ignorable="w14 w15 wp14">`

// sectionProperties is the fixed page footer copied from the template: page
// size and margins, header/footer relationship references, page numbering
// and the line grid.
const sectionProperties = `<w:sectPr>` +
	`<w:headerReference r:id="rId3" w:type="default"/>` +
	`<w:footerReference r:id="rId4" w:type="default"/>` +
	`<w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1474" w:right="1531" w:bottom="1474" w:left="1531" w:header="851" w:footer="992" w:gutter="0"/>` +
	`<w:pgBorders>` +
	`<w:top w:val="none" w:sz="0" w:space="0"/>` +
	`<w:left w:val="none" w:sz="0" w:space="0"/>` +
	`<w:bottom w:val="none" w:sz="0" w:space="0"/>` +
	`<w:right w:val="none" w:sz="0" w:space="0"/>` +
	`</w:pgBorders>` +
	`<w:pgNumType w:start="1"/>` +
	`<w:cols w:space="720" w:num="1"/>` +
	`<w:docGrid w:type="lines" w:linePitch="312" w:charSpace="0"/>` +
	`</w:sectPr>`

// DocumentXML converts markdown source into a complete word/document.xml.
func (s *Session) DocumentXML(source string) (string, error) {
	var b strings.Builder

	b.WriteString(documentOpen)
	b.WriteString("<w:body>")

	s.emptyParagraph(&b)

	for _, block := range Split(source) {
		var err error

		switch blk := block.(type) {
		case *Heading:
			s.heading(&b, blk)
		case *Table:
			s.table(&b, blk)
		case *Code:
			s.codeParagraph(&b, blk.Text)
		case *Formula:
			err = s.formulaParagraph(&b, blk.Source)
		case *Paragraph:
			err = s.bodyParagraph(&b, blk.Text)
		}

		if err != nil {
			return "", err
		}
	}

	b.WriteString(sectionProperties)
	b.WriteString("</w:body></w:document>")

	return b.String(), nil
}

func (s *Session) emptyParagraph(b *strings.Builder) {
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `">`)
	b.WriteString(`<w:pPr><w:rPr><w:rFonts w:hint="eastAsia"/></w:rPr></w:pPr>`)
	b.WriteString(`</w:p>`)
}

func (s *Session) heading(b *strings.Builder, h *Heading) {
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `">`)

	switch h.Level {
	case 1:
		b.WriteString(`<w:pPr><w:pStyle w:val="` + styleHeading1 + `"/><w:rPr><w:rFonts w:hint="eastAsia"/></w:rPr></w:pPr>`)
	default:
		style := styleHeading2
		if h.Level == 3 {
			style = styleHeading3
		}

		// nested headings participate in the template's numbering
		b.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/>` +
			`<w:numPr><w:ilvl w:val="1"/><w:numId w:val="0"/></w:numPr>` +
			`<w:rPr><w:rFonts w:hint="default"/><w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr></w:pPr>`)
	}

	b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia"/></w:rPr><w:t>` + esc(h.Text) + `</w:t></w:r>`)
	b.WriteString(`</w:p>`)
}

// bodyParagraph writes a plain paragraph: inline $...$ spans become math,
// **...** spans become bold runs, the rest stays regular text.
func (s *Session) bodyParagraph(b *strings.Builder, text string) error {
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `">`)
	b.WriteString(`<w:pPr><w:pStyle w:val="` + styleBody + `"/>` +
		`<w:rPr><w:rFonts w:hint="eastAsia"/><w:lang w:eastAsia="zh-CN"/></w:rPr></w:pPr>`)

	for _, part := range mathSpans(text) {
		if part.marked {
			eq, err := s.Formulas.Parse(part.text)
			if err != nil {
				return err
			}

			if eq == nil {
				continue
			}

			if err := omml.Render(b, eq); err != nil {
				return err
			}

			continue
		}

		for _, piece := range boldSpans(part.text) {
			if piece.marked {
				b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia"/><w:b/>` +
					`<w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr>` +
					`<w:t>` + esc(piece.text[2:len(piece.text)-2]) + `</w:t></w:r>`)
				continue
			}

			if strings.TrimSpace(piece.text) == "" {
				continue
			}

			b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia"/></w:rPr><w:t>` + esc(piece.text) + `</w:t></w:r>`)
		}
	}

	b.WriteString(`</w:p>`)

	return nil
}

// formulaParagraph writes a display formula centered between two tab runs,
// the layout the formula style of the template expects.
func (s *Session) formulaParagraph(b *strings.Builder, source string) error {
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `">`)
	b.WriteString(`<w:pPr><w:pStyle w:val="` + styleFormula + `"/><w:bidi w:val="0"/>` +
		`<w:rPr><w:rFonts w:hint="default" w:eastAsia="宋体"/><w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr></w:pPr>`)

	b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia" w:hAnsi="Cambria Math"/>` +
		`<w:b w:val="0"/><w:i w:val="0"/><w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr><w:tab/></w:r>`)

	eq, err := s.Formulas.Parse(source)
	if err != nil {
		return err
	}

	if eq != nil {
		if err := omml.Render(b, eq); err != nil {
			return err
		}
	}

	b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia" w:hAnsi="Cambria Math"/>` +
		`<w:i w:val="0"/><w:lang w:val="en-US" w:eastAsia="zh-CN"/></w:rPr><w:tab/></w:r>`)

	b.WriteString(`</w:p>`)

	return nil
}

func (s *Session) codeParagraph(b *strings.Builder, text string) {
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `">`)
	b.WriteString(`<w:pPr><w:pStyle w:val="` + styleCode + `"/></w:pPr>`)

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(`<w:r><w:br/></w:r>`)
		}

		space := ""
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			space = ` xml:space="preserve"`
		}

		b.WriteString(`<w:r><w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/></w:rPr>` +
			`<w:t` + space + `>` + esc(line) + `</w:t></w:r>`)
	}

	b.WriteString(`</w:p>`)
}

func (s *Session) table(b *strings.Builder, t *Table) {
	width := 9000 / len(t.Header)

	b.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="` + styleTable + `"/>` +
		`<w:tblW w:w="5000" w:type="pct"/><w:jc w:val="center"/><w:tblLayout w:type="fixed"/></w:tblPr>`)

	b.WriteString(`<w:tblGrid>`)
	for range t.Header {
		b.WriteString(`<w:gridCol w:w="` + strconv.Itoa(width) + `"/>`)
	}
	b.WriteString(`</w:tblGrid>`)

	b.WriteString(`<w:tr>`)
	for _, cell := range t.Header {
		s.tableCell(b, cell, width, true)
	}
	b.WriteString(`</w:tr>`)

	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row {
			s.tableCell(b, cell, width, false)
		}
		b.WriteString(`</w:tr>`)
	}

	b.WriteString(`</w:tbl>`)
}

func (s *Session) tableCell(b *strings.Builder, text string, width int, header bool) {
	bold := ""
	if header {
		bold = `<w:b/>`
	}

	b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + strconv.Itoa(width) + `" w:type="dxa"/></w:tcPr>`)
	b.WriteString(`<w:p w14:paraId="` + s.nextParaID() + `"><w:pPr><w:jc w:val="center"/></w:pPr>`)
	b.WriteString(`<w:r><w:rPr><w:rFonts w:hint="eastAsia"/>` + bold + `</w:rPr><w:t>` + esc(text) + `</w:t></w:r>`)
	b.WriteString(`</w:p></w:tc>`)
}

func esc(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

