package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Compare lists the differences between two documents part by part. With
// showContent set, text parts that differ also get the first 200 bytes of
// each side appended to the listing.
func Compare(a, b string, showContent bool) ([]string, error) {
	za, err := zip.OpenReader(a)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", a, err)
	}

	defer za.Close()

	zb, err := zip.OpenReader(b)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", b, err)
	}

	defer zb.Close()

	filesA := fileSet(za)
	filesB := fileSet(zb)

	var diffs []string

	for _, name := range sortedKeys(filesA) {
		if !filesB[name] {
			diffs = append(diffs, "Only in template: "+name)
		}
	}

	for _, name := range sortedKeys(filesB) {
		if !filesA[name] {
			diffs = append(diffs, "Only in output: "+name)
		}
	}

	for _, name := range sortedKeys(filesA) {
		if !filesB[name] {
			continue
		}

		contentA, err := readPart(za, name)
		if err != nil {
			return nil, err
		}

		contentB, err := readPart(zb, name)
		if err != nil {
			return nil, err
		}

		if bytes.Equal(contentA, contentB) {
			continue
		}

		diffs = append(diffs, "Different content: "+name)

		if showContent {
			if utf8.Valid(contentA) && utf8.Valid(contentB) {
				diffs = append(diffs, "  Template: "+clip(contentA)+"...")
				diffs = append(diffs, "  Output:   "+clip(contentB)+"...")
			} else {
				diffs = append(diffs, "  (binary part)")
			}
		}
	}

	return diffs, nil
}

func clip(content []byte) string {
	if len(content) > 200 {
		content = content[:200]
	}

	return string(content)
}
