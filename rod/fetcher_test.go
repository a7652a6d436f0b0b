//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
	"github.com/pranavarora99/pagesum/goquery"
	"github.com/pranavarora99/pagesum/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_AnnotatesComputedStyle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Rendered page</title>
<style>.promo { display: none } header { background: #224466 } img { width: 400px; height: 300px }</style>
</head>
<body>
<header>Example</header>
<main>
<h2 class="promo">Hidden by stylesheet rules</h2>
<h2 id="late"></h2>
<img src="/photo.jpg">
</main>
<script>document.getElementById('late').textContent = 'Rendered by JavaScript here';</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	doc, err := goquery.NewParser().Parse(html, srv.URL)
	require.NoError(t, err)
	got := extract.NewExtractor().Summarize(doc)

	assert.Equal(t, []string{"Rendered by JavaScript here"}, got.KeyPoints)
	assert.Equal(t, []string{srv.URL + "/photo.jpg"}, got.Images)
	assert.Equal(t, pagesum.HexColor("#224466"), got.BrandColors.Primary)
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Fetch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	assert.Contains(t, pagesum.ErrorMessage(err), "closed")
}

func TestFetcher_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)))

	require.NoError(t, fetcher.Close())
	time.Sleep(100 * time.Millisecond)

	assert.Error(t, syscall.Kill(pid, syscall.Signal(0)))
}
