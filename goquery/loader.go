package goquery

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/outline"
)

// Ensure Loader implements outline.Loader at compile time.
var _ outline.Loader = (*Loader)(nil)

// Loader loads static documents. http(s) targets go through Fetcher,
// "-" reads Stdin, and anything else is read from the filesystem
// (a file:// prefix is accepted).
type Loader struct {
	Fetcher outline.Fetcher
	Stdin   io.Reader
	Options []Option
}

// NewLoader creates a Loader reading URLs through fetcher and stdin from
// os.Stdin.
func NewLoader(fetcher outline.Fetcher, opts ...Option) *Loader {
	return &Loader{
		Fetcher: fetcher,
		Stdin:   os.Stdin,
		Options: opts,
	}
}

// Load reads and parses the target.
func (l *Loader) Load(ctx context.Context, target string) (outline.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case target == "":
		return nil, outline.Errorf(outline.EINVALID, "target required")
	case target == "-":
		if l.Stdin == nil {
			return nil, outline.Errorf(outline.EINVALID, "stdin not available")
		}
		return Parse(l.Stdin, l.Options...)
	case strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://"):
		if l.Fetcher == nil {
			return nil, outline.Errorf(outline.EINVALID, "no fetcher configured for %s", target)
		}
		markup, err := l.Fetcher.Fetch(ctx, target)
		if err != nil {
			return nil, err
		}
		return ParseString(markup, l.Options...)
	}

	path := strings.TrimPrefix(target, "file://")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, outline.Errorf(outline.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, l.Options...)
}

// Close releases the fetcher.
func (l *Loader) Close() error {
	if l.Fetcher == nil {
		return nil
	}
	return l.Fetcher.Close()
}
