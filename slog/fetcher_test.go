package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/tldr/mock"
	tldrslog "github.com/fwojciec/tldr/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveFetcher{
			FetchFn: func(ctx context.Context, url string, w io.Writer) (int64, error) {
				n, err := w.Write([]byte("PK archive"))
				return int64(n), err
			},
		}

		fetcher := tldrslog.NewLoggingFetcher(inner, logger)
		var out bytes.Buffer
		n, err := fetcher.Fetch(context.Background(), "https://example.com/tldr.zip", &out)

		require.NoError(t, err)
		assert.Equal(t, int64(10), n)
		assert.Equal(t, "PK archive", out.String())
		output := buf.String()
		assert.Contains(t, output, "archive fetch")
		assert.Contains(t, output, "url=https://example.com/tldr.zip")
		assert.Contains(t, output, "bytes=10")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveFetcher{
			FetchFn: func(ctx context.Context, url string, w io.Writer) (int64, error) {
				return 0, errors.New("connection refused")
			},
		}

		fetcher := tldrslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/tldr.zip", io.Discard)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection refused\"")
	})
}
