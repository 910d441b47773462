package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/outline"
	"golang.org/x/sync/errgroup"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader    outline.Loader
	Converter outline.Converter

	// Writer, if set, receives outlines instead of Stdout.
	Writer outline.OutlineWriter
}

// ConvertCmd loads each source and prints its outline.
type ConvertCmd struct {
	Sources     []string
	Concurrency int
	Digest      bool
}

// Run converts all sources with bounded concurrency. Failed sources are
// reported on stderr; the remaining outlines are still printed, or written,
// in source order.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	outlines := make([]*outline.Outline, len(c.Sources))
	errs := make([]error, len(c.Sources))

	var g errgroup.Group
	g.SetLimit(max(c.Concurrency, 1))
	for i, source := range c.Sources {
		g.Go(func() error {
			doc, err := deps.Loader.Load(deps.Ctx, source)
			if err != nil {
				errs[i] = err
				return nil
			}
			outlines[i] = &outline.Outline{
				Source: source,
				Text:   deps.Converter.Convert(doc),
			}
			return nil
		})
	}
	_ = g.Wait()

	var done []*outline.Outline
	failed := 0
	for i, o := range outlines {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Sources[i], errorText(errs[i]))
			continue
		}
		if c.Digest {
			o.Text = withDigest(o.Text)
		}
		if deps.Writer != nil {
			if err := deps.Writer.WriteOutline(deps.Ctx, o); err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Sources[i], errorText(err))
				continue
			}
			fmt.Fprintf(deps.Stderr, "wrote %s\n", c.Sources[i])
			continue
		}
		done = append(done, o)
	}

	switch {
	case len(c.Sources) == 1 && len(done) == 1:
		fmt.Fprintln(deps.Stdout, done[0].Text)
	case len(done) > 0:
		fmt.Fprintln(deps.Stdout, outline.FormatOutlines(done))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(c.Sources))
	}
	return nil
}

// withDigest appends a digest line so consumers can detect changes
// between runs without diffing the outline.
func withDigest(text string) string {
	line := fmt.Sprintf("# xxhash64 %016x", xxhash.Sum64String(text))
	if text == "" {
		return line
	}
	return text + "\n" + line
}

// errorText prefers the message of application errors.
func errorText(err error) string {
	if outline.ErrorCode(err) != outline.EINTERNAL {
		return outline.ErrorMessage(err)
	}
	return err.Error()
}
