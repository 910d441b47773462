// Package rod provides a live outline.Document captured from pages rendered
// by Chrome through browser automation.
package rod

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/outline"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout is the default per-load timeout.
const DefaultTimeout = 10 * time.Second

// DefaultViewport is the window size pages are rendered at.
var DefaultViewport = outline.Viewport{Width: 1280, Height: 720}

// Ensure Loader implements outline.Loader at compile time.
var _ outline.Loader = (*Loader)(nil)

// Loader renders targets in Chrome and snapshots them.
// Loader is safe for concurrent use by multiple goroutines.
type Loader struct {
	manager        *BrowserManager
	managerOptions []ManagerOption
	timeout        time.Duration
	renderDelay    time.Duration
	viewport       outline.Viewport
	focus          string
	stealth        bool
	closed         atomic.Bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout bounds navigation, rendering and snapshotting of one target.
// Defaults to DefaultTimeout (10s).
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithRenderDelay waits after the load event before snapshotting, giving
// client-side rendering time to settle.
func WithRenderDelay(d time.Duration) Option {
	return func(l *Loader) {
		l.renderDelay = d
	}
}

// WithViewport sets the window size pages are rendered at.
func WithViewport(v outline.Viewport) Option {
	return func(l *Loader) {
		l.viewport = v
	}
}

// WithFocus focuses the first element matching the CSS selector before
// the snapshot is taken.
func WithFocus(selector string) Option {
	return func(l *Loader) {
		l.focus = selector
	}
}

// WithStealth opens pages with anti bot-detection patches applied.
func WithStealth() Option {
	return func(l *Loader) {
		l.stealth = true
	}
}

// WithManagerOptions passes options to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(l *Loader) {
		l.managerOptions = append(l.managerOptions, opts...)
	}
}

// NewLoader launches Chrome and returns a Loader.
// Close must be called when the Loader is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewLoader(opts ...Option) (*Loader, error) {
	l := &Loader{
		timeout:  DefaultTimeout,
		viewport: DefaultViewport,
	}
	for _, opt := range opts {
		opt(l)
	}

	manager, err := NewBrowserManager(l.managerOptions...)
	if err != nil {
		return nil, err
	}
	l.manager = manager

	return l, nil
}

// Load navigates to target, waits for it to render and returns a snapshot.
// Targets without a URL scheme are treated as local file paths.
func (l *Loader) Load(ctx context.Context, target string) (outline.Document, error) {
	if l.closed.Load() {
		return nil, outline.Errorf(outline.EINVALID, "loader is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := targetURL(target)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	page, err := l.manager.Page(l.stealth)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             int(l.viewport.Width),
		Height:            int(l.viewport.Height),
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if err := page.Navigate(u); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", u, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	if l.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.renderDelay):
		}
	}

	if l.focus != "" {
		has, el, err := page.Has(l.focus)
		if err != nil {
			return nil, fmt.Errorf("finding focus target: %w", err)
		}
		if !has {
			return nil, outline.Errorf(outline.ENOTFOUND, "no element matches focus selector %q", l.focus)
		}
		if err := el.Focus(); err != nil {
			return nil, fmt.Errorf("focusing %q: %w", l.focus, err)
		}
	}

	res, err := page.Eval(snapshotJS)
	if err != nil {
		return nil, fmt.Errorf("capturing snapshot: %w", err)
	}

	return DecodeSnapshot([]byte(res.Value.Str()))
}

// Close releases browser resources. Close is safe to call multiple times.
func (l *Loader) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	return l.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (l *Loader) LauncherPID() int {
	return l.manager.LauncherPID()
}

// targetURL turns a target into a navigable URL.
func targetURL(target string) (string, error) {
	if target == "" {
		return "", outline.Errorf(outline.EINVALID, "target required")
	}
	if strings.Contains(target, "://") || strings.HasPrefix(target, "about:") {
		return target, nil
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", outline.Errorf(outline.EINVALID, "invalid file path %q: %v", target, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}
