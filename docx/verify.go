package docx

import (
	"archive/zip"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Report is the outcome of a structure check. Errors fail the check,
// warnings do not.
type Report struct {
	Passed   bool
	Errors   []string
	Warnings []string
}

// criticalParts must be present in any usable output document.
var criticalParts = []string{
	"word/document.xml",
	"word/header1.xml",
	"word/footer1.xml",
	"word/styles.xml",
	"word/_rels/document.xml.rels",
	"[Content_Types].xml",
}

var (
	pgMarTag  = regexp.MustCompile(`<w:pgMar[^>]*>`)
	pgSzTag   = regexp.MustCompile(`<w:pgSz[^>]*>`)
	headerTag = regexp.MustCompile(`<w:headerReference[^>]*>`)
	footerTag = regexp.MustCompile(`<w:footerReference[^>]*>`)
)

// formatting captures the page-level markers compared between template and
// output: the first occurrence of each section tag and the line-spacing
// counts the thesis template uses for its three paragraph rhythms.
type formatting struct {
	pgMar      string
	pgSz       string
	header     string
	footer     string
	spacing520 int
	spacing500 int
	spacing400 int
}

func extractFormatting(doc string) formatting {
	return formatting{
		pgMar:      pgMarTag.FindString(doc),
		pgSz:       pgSzTag.FindString(doc),
		header:     headerTag.FindString(doc),
		footer:     footerTag.FindString(doc),
		spacing520: strings.Count(doc, `w:line="520"`),
		spacing500: strings.Count(doc, `w:line="500"`),
		spacing400: strings.Count(doc, `w:line="400"`),
	}
}

// Verify checks that output preserves the structure and page formatting of
// template. Missing template parts and formatting drift are errors, extra
// parts in the output only warn.
func Verify(template, output string) (*Report, error) {
	tmpl, err := zip.OpenReader(template)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", template, err)
	}

	defer tmpl.Close()

	out, err := zip.OpenReader(output)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", output, err)
	}

	defer out.Close()

	report := &Report{Passed: true}

	tmplFiles := fileSet(tmpl)
	outFiles := fileSet(out)

	for _, name := range sortedKeys(tmplFiles) {
		if !outFiles[name] {
			report.fail("Missing file: " + name)
		}
	}

	for _, name := range sortedKeys(outFiles) {
		if !tmplFiles[name] {
			report.Warnings = append(report.Warnings, "Extra file: "+name)
		}
	}

	for _, name := range criticalParts {
		if !outFiles[name] {
			report.fail("Critical file missing: " + name)
		}
	}

	if outFiles["word/document.xml"] {
		tmplDoc, err := readPart(tmpl, "word/document.xml")
		if err != nil {
			return nil, err
		}

		outDoc, err := readPart(out, "word/document.xml")
		if err != nil {
			return nil, err
		}

		want := extractFormatting(string(tmplDoc))
		got := extractFormatting(string(outDoc))

		check := func(name string, ok bool) {
			if !ok {
				report.fail("Formatting mismatch: " + name)
			}
		}

		check("page margins (w:pgMar)", want.pgMar == got.pgMar)
		check("page size (w:pgSz)", want.pgSz == got.pgSz)
		check("header reference", want.header == got.header)
		check("footer reference", want.footer == got.footer)
		check(`line spacing 520`, want.spacing520 == got.spacing520)
		check(`line spacing 500`, want.spacing500 == got.spacing500)
		check(`line spacing 400`, want.spacing400 == got.spacing400)
	}

	for _, part := range []string{"word/header1.xml", "word/footer1.xml"} {
		if !tmplFiles[part] || !outFiles[part] {
			continue
		}

		a, err := readPart(tmpl, part)
		if err != nil {
			return nil, err
		}

		b, err := readPart(out, part)
		if err != nil {
			return nil, err
		}

		if string(a) != string(b) {
			report.fail("Changed content: " + part)
		}
	}

	return report, nil
}

func (r *Report) fail(message string) {
	r.Passed = false
	r.Errors = append(r.Errors, message)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
