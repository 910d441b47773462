package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/outline"
	"github.com/fwojciec/outline/mock"
	outslog "github.com/fwojciec/outline/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs line and byte counts at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Converter{
			ConvertFn: func(doc outline.Document) string {
				return "nav\n  a Home"
			},
		}

		text := outslog.NewLoggingConverter(inner, logger).Convert(nil)

		assert.Equal(t, "nav\n  a Home", text)
		output := buf.String()
		assert.Contains(t, output, "msg=convert")
		assert.Contains(t, output, "lines=2")
		assert.Contains(t, output, "bytes=12")
	})

	t.Run("reports zero lines for empty outline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Converter{
			ConvertFn: func(doc outline.Document) string { return "" },
		}

		outslog.NewLoggingConverter(inner, logger).Convert(nil)

		assert.Contains(t, buf.String(), "lines=0")
	})
}
