package http_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/pranavarora99/pagesum"
	pagesumhttp "github.com/pranavarora99/pagesum/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(locs ...string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, l := range locs {
		sb.WriteString("<url><loc>{{BASE}}" + l + "</loc></url>")
	}
	sb.WriteString("</urlset>")
	return sb.String()
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps declared in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nSITEMAP: {{BASE}}/one.xml\nSitemap: {{BASE}}/two.xml\n",
			"/one.xml":    urlset("/a", "/b"),
			"/two.xml":    urlset("/b", "/c"),
		})

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("/page1"),
		})

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("descends into sitemap indexes once", func(t *testing.T) {
		t.Parallel()

		index := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/posts.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/pages.xml</loc></sitemap>
</sitemapindex>`
		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": index,
			"/posts.xml":   urlset("/blog/first"),
			"/pages.xml":   urlset("/about"),
		})

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog/first", srv.URL + "/about"}, urls)
	})

	t.Run("keeps URLs under the site path", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("/blog", "/blog/post", "/blogroll", "/about"),
		})

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/blog", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog", srv.URL + "/blog/post"}, urls)
	})

	t.Run("applies include and exclude filters", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("/docs/intro", "/blog/post1", "/docs/internal/debug", "/docs/guide"),
		})
		filter := &pagesum.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/internal/`)},
		}

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/guide"}, urls)
	})

	t.Run("caps the number of URLs", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("/1", "/2", "/3", "/4"),
		})

		svc := pagesumhttp.NewSitemapService(srv.Client(), pagesumhttp.WithMaxURLs(2))
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/1", srv.URL + "/2"}, urls)
	})

	t.Run("reads gzip sitemaps", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				_, _ = w.Write([]byte("Sitemap: " + srv.URL + "/sitemap.xml.gz\n"))
			case "/sitemap.xml.gz":
				_, _ = w.Write(gzipBytes(t, replaceBaseURL(urlset("/zipped"), srv.URL)))
			default:
				http.NotFound(w, r)
			}
		}))
		t.Cleanup(srv.Close)

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/zipped"}, urls)
	})

	t.Run("returns empty list when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})

		urls, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("returns EINVALID for a URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := pagesumhttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "/relative", nil)

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": urlset("/page1"),
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pagesumhttp.NewSitemapService(srv.Client()).DiscoverURLs(ctx, srv.URL, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

// newTestServer serves content by path. {{BASE}} in a body is replaced
// with the server URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(replaceBaseURL(body, srv.URL)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func replaceBaseURL(content, baseURL string) string {
	return strings.ReplaceAll(content, "{{BASE}}", baseURL)
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
