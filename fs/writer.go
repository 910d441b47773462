// Package fs provides file-based storage for outlines.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/outline"
)

// SourceToPath converts a source to a relative file path.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.txt
func SourceToPath(source string) (string, error) {
	if source == "-" {
		return "stdin.txt", nil
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return "", outline.Errorf(outline.EINVALID, "invalid source URL %q: %v", source, err)
		}

		path := strings.TrimPrefix(u.Path, "/")

		// Root or trailing slash → index.txt
		if path == "" || strings.HasSuffix(path, "/") {
			path += "index"
		}

		return filepath.Join(u.Host, filepath.FromSlash(path)) + ".txt", nil
	}

	base := filepath.Base(strings.TrimPrefix(source, "file://"))
	if base == "." || base == string(filepath.Separator) {
		return "", outline.Errorf(outline.EINVALID, "cannot derive file name from %q", source)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt", nil
}

// FormatOutline formats an outline with a source header line.
func FormatOutline(o *outline.Outline) string {
	var b strings.Builder
	b.WriteString("# source: ")
	b.WriteString(o.Source)
	b.WriteString("\n\n")
	b.WriteString(o.Text)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements outline.OutlineWriter at compile time.
var _ outline.OutlineWriter = (*Writer)(nil)

// Writer writes outlines as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteOutline writes an outline to disk as a text file.
func (w *Writer) WriteOutline(ctx context.Context, o *outline.Outline) error {
	if err := o.Validate(); err != nil {
		return err
	}

	relPath, err := SourceToPath(o.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatOutline(o)), 0644)
}
