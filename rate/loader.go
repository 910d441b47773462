package rate

import (
	"context"
	"net/url"

	"github.com/fwojciec/outline"
)

var _ outline.Loader = (*Loader)(nil)

// Loader waits on a DomainLimiter before delegating network targets.
// Targets without a host (files, stdin) are never limited.
type Loader struct {
	next    outline.Loader
	limiter outline.DomainLimiter
}

// NewLoader wraps next with per-host rate limiting.
func NewLoader(next outline.Loader, limiter outline.DomainLimiter) *Loader {
	return &Loader{next: next, limiter: limiter}
}

// Load waits for the target's host and then loads it.
func (l *Loader) Load(ctx context.Context, target string) (outline.Document, error) {
	if host := hostOf(target); host != "" {
		if err := l.limiter.Wait(ctx, host); err != nil {
			return nil, err
		}
	}
	return l.next.Load(ctx, target)
}

// Close delegates to the wrapped loader.
func (l *Loader) Close() error {
	return l.next.Close()
}

func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.Hostname()
}
