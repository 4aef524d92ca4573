package docx

import (
	"archive/zip"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

const documentPart = "word/document.xml"

// Replacement is one text substitution applied to the document part.
type Replacement struct {
	Old string
	New string
}

// Replace copies template to output with the replacements applied to
// word/document.xml. The part is entity-decoded before matching, so a
// search string written as plain text finds occurrences the original
// stored as character references. It returns how many replacements
// matched.
func Replace(template, output string, replacements []Replacement) (int, error) {
	count := 0

	err := rewrite(template, output, func(name string, content []byte) []byte {
		if name != documentPart {
			return content
		}

		decoded := html.UnescapeString(string(content))

		for _, r := range replacements {
			if strings.Contains(decoded, r.Old) {
				decoded = strings.ReplaceAll(decoded, r.Old, r.New)
				count++
			}
		}

		return []byte(decoded)
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateFromTemplate copies template to output, swapping word/document.xml
// for documentXML. Every other part is carried over unchanged.
func CreateFromTemplate(template, output, documentXML string) error {
	return rewrite(template, output, func(name string, content []byte) []byte {
		if name == documentPart {
			return []byte(documentXML)
		}

		return content
	})
}

func rewrite(template, output string, transform func(name string, content []byte) []byte) error {
	r, err := zip.OpenReader(template)
	if err != nil {
		return fmt.Errorf("open %q: %w", template, err)
	}

	defer r.Close()

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %q: %w", output, err)
	}

	w := zip.NewWriter(out)

	for _, file := range r.File {
		if strings.HasSuffix(file.Name, "/") {
			continue
		}

		in, err := file.Open()
		if err != nil {
			w.Close()
			out.Close()
			return fmt.Errorf("read %q: %w", file.Name, err)
		}

		content, err := io.ReadAll(in)
		in.Close()

		if err != nil {
			w.Close()
			out.Close()
			return fmt.Errorf("read %q: %w", file.Name, err)
		}

		dst, err := w.Create(file.Name)
		if err == nil {
			_, err = dst.Write(transform(file.Name, content))
		}

		if err != nil {
			w.Close()
			out.Close()
			return fmt.Errorf("write %q: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
