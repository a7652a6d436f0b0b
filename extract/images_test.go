package extract_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/pranavarora99/pagesum/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImages(t *testing.T) {
	t.Parallel()

	t.Run("filters by size and decorative names", func(t *testing.T) {
		t.Parallel()

		b := traverse(t, `<html><body><main>
<img src="/images/photo-one.jpg" width="800" height="600">
<img src="https://cdn.example.com/photo-two.png" style="width: 400px; height: 300px">
<img src="/img/site-LOGO.png" width="800" height="600">
<img src="/img/user-avatar.png" width="800" height="600">
<img src="/img/small.png" width="100" height="100">
<img src="/img/exact.png" width="150" height="300">
<img src="/img/unknown-size.png">
</main></body></html>`)

		got := extract.ExtractImages(b, testPageURL)

		assert.Equal(t, []string{
			"https://example.com/images/photo-one.jpg",
			"https://cdn.example.com/photo-two.png",
		}, got)
	})

	t.Run("social preview image comes first regardless of size", func(t *testing.T) {
		t.Parallel()

		b := traverse(t, `<html><head><meta property="og:image" content="/share/card-icon.png"></head><body>
<img src="/big.jpg" data-pagesum-width="1200" data-pagesum-height="800">
</body></html>`)

		got := extract.ExtractImages(b, testPageURL)

		assert.Equal(t, []string{
			"https://example.com/share/card-icon.png",
			"https://example.com/big.jpg",
		}, got)
	})

	t.Run("resolves against base href", func(t *testing.T) {
		t.Parallel()

		b := traverse(t, `<html><head><base href="https://static.example.org/assets/"></head><body>
<img src="pic.jpg" width="200" height="200">
</body></html>`)

		assert.Equal(t, []string{"https://static.example.org/assets/pic.jpg"}, extract.ExtractImages(b, testPageURL))
	})

	t.Run("drops unresolvable candidates", func(t *testing.T) {
		t.Parallel()

		b := traverse(t, `<html><body>
<img src="data:image/png;base64,AAAA" width="200" height="200">
<img src="javascript:void(0)" width="200" height="200">
<img src="/relative.jpg" width="200" height="200">
</body></html>`)

		assert.Empty(t, extract.ExtractImages(b, "not a url"))
	})

	t.Run("deduplicates and caps at five", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString(`<html><body>`)
		sb.WriteString(`<img src="/p0.jpg" width="200" height="200">`)
		for i := range 7 {
			fmt.Fprintf(&sb, `<img src="/p%d.jpg" width="200" height="200">`, i)
		}
		sb.WriteString(`</body></html>`)

		got := extract.ExtractImages(traverse(t, sb.String()), testPageURL)

		require.Len(t, got, 5)
		assert.Equal(t, "https://example.com/p0.jpg", got[0])
		assert.Equal(t, "https://example.com/p4.jpg", got[4])
	})
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/docs/page")
	require.NoError(t, err)

	tests := []struct {
		ref    string
		want   string
		wantOK bool
	}{
		{"img.png", "https://example.com/docs/img.png", true},
		{"//cdn.example.com/a.png", "https://cdn.example.com/a.png", true},
		{"http://other.example/b.png", "http://other.example/b.png", true},
		{"mailto:someone@example.com", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			got, ok := extract.AbsoluteURL(base, tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil base accepts only absolute references", func(t *testing.T) {
		t.Parallel()

		_, ok := extract.AbsoluteURL(nil, "/a.png")
		assert.False(t, ok)

		got, ok := extract.AbsoluteURL(nil, "https://example.com/a.png")
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/a.png", got)
	})
}
