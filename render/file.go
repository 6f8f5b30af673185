package render

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/treemark/treemark/doc"
)

// RenderToFile renders nodes in the given format and writes the result to
// fname as UTF-8, creating parent directories and overwriting any existing
// file. Render errors and I/O errors propagate; there is no retry and no
// partial output on a failed render.
func (r *Renderer) RenderToFile(nodes []*doc.Node, fname string, format Format) error {
	out, err := r.Render(nodes, format)
	if err != nil {
		return err
	}
	return WriteFile(fname, out)
}

// WriteFile writes content to fname, creating parent directories as
// needed.
func WriteFile(fname string, content string) error {
	f, err := CreateFile(fname)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// CreateFile creates fname for writing, making any missing parent
// directories first.
func CreateFile(fname string) (*os.File, error) {
	path := filepath.Dir(fname)

	if err := os.MkdirAll(path, 0o777); err != nil {
		return nil, fmt.Errorf("create path: %w", err)
	}

	f, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	return f, nil
}
