// Package docx reads and writes Word documents as zip containers. It never
// interprets document content beyond what verification needs, so a repacked
// file keeps every part of the original byte for byte unless it was replaced
// on purpose.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Unpack extracts a document into dir. An existing dir is removed first.
func Unpack(path, dir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}

	defer r.Close()

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clean %q: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, file := range r.File {
		if err := extract(file, dir); err != nil {
			return fmt.Errorf("extract %q: %w", file.Name, err)
		}
	}

	return nil
}

func extract(file *zip.File, dir string) error {
	name := filepath.Join(dir, filepath.FromSlash(file.Name))
	if !strings.HasPrefix(name, filepath.Clean(dir)+string(os.PathSeparator)) {
		return fmt.Errorf("entry escapes target directory")
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(name, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}

	in, err := file.Open()
	if err != nil {
		return err
	}

	defer in.Close()

	out, err := os.Create(name)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// Pack archives the contents of dir into a document at path, keeping every
// subdirectory. Entry names always use forward slashes.
func Pack(dir, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	w := zip.NewWriter(out)

	err = filepath.WalkDir(dir, func(name string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		rel, err := filepath.Rel(dir, name)
		if err != nil {
			return err
		}

		dst, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(name)
		if err != nil {
			return err
		}

		defer src.Close()

		_, err = io.Copy(dst, src)
		return err
	})

	if err != nil {
		w.Close()
		out.Close()
		return fmt.Errorf("pack %q: %w", dir, err)
	}

	if err := w.Close(); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// readPart returns the named entry of a document, or nil when missing.
func readPart(r *zip.ReadCloser, name string) ([]byte, error) {
	for _, file := range r.File {
		if file.Name != name {
			continue
		}

		in, err := file.Open()
		if err != nil {
			return nil, err
		}

		defer in.Close()

		return io.ReadAll(in)
	}

	return nil, nil
}

// fileSet lists the regular entries of a document, directories excluded.
func fileSet(r *zip.ReadCloser) map[string]bool {
	set := make(map[string]bool)
	for _, file := range r.File {
		if !strings.HasSuffix(file.Name, "/") {
			set[file.Name] = true
		}
	}

	return set
}
