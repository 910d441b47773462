package rate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/outline"
	"github.com/fwojciec/outline/mock"
	"github.com/fwojciec/outline/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLimiter records the domains it was asked to wait on.
type recordingLimiter struct {
	domains []string
	err     error
}

func (l *recordingLimiter) Wait(ctx context.Context, domain string) error {
	l.domains = append(l.domains, domain)
	return l.err
}

func passthrough() *mock.Loader {
	return &mock.Loader{
		LoadFn: func(ctx context.Context, target string) (outline.Document, error) {
			return mock.NewDocument(&mock.Element{Tag: "body"}), nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("waits on the target host", func(t *testing.T) {
		t.Parallel()

		limiter := &recordingLimiter{}
		loader := rate.NewLoader(passthrough(), limiter)

		_, err := loader.Load(context.Background(), "https://docs.example.com:8443/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"docs.example.com"}, limiter.domains)
	})

	t.Run("does not limit local targets", func(t *testing.T) {
		t.Parallel()

		limiter := &recordingLimiter{}
		loader := rate.NewLoader(passthrough(), limiter)

		for _, target := range []string{"page.html", "-", "file:///tmp/page.html"} {
			_, err := loader.Load(context.Background(), target)
			require.NoError(t, err)
		}

		assert.Empty(t, limiter.domains)
	})

	t.Run("returns limiter error without loading", func(t *testing.T) {
		t.Parallel()

		loaded := false
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, target string) (outline.Document, error) {
				loaded = true
				return nil, nil
			},
		}
		loader := rate.NewLoader(inner, &recordingLimiter{err: context.DeadlineExceeded})

		_, err := loader.Load(context.Background(), "http://example.com")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, loaded)
	})
}

func TestLoader_Close(t *testing.T) {
	t.Parallel()

	inner := &mock.Loader{CloseFn: func() error { return errors.New("close failed") }}

	err := rate.NewLoader(inner, rate.NewDomainLimiter(1)).Close()

	assert.EqualError(t, err, "close failed")
}
