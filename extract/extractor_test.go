package extract_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
	"github.com/pranavarora99/pagesum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
)

const richPage = `<!DOCTYPE html>
<html>
<head>
<title>Something else | Example Site</title>
<meta property="og:title" content="Test Article">
<meta name="theme-color" content="#112233">
</head>
<body>
<nav><ul><li>Home</li><li>Documentation for every release</li></ul></nav>
<main>
<h1>Test Article Heading Text</h1>
<p>This article walks through the build pipeline configuration in detail.</p>
<h2>Background on the storage engine design</h2>
<img src="/images/photo-one.jpg" width="800" height="600">
<h2>Release 2 changes for operators</h2>
<img src="https://cdn.example.com/photo-two.png" style="width: 400px; height: 300px">
<h2>How to configure the build pipeline</h2>
<img src="/img/site-logo.png" width="800" height="600">
</main>
<footer><p>Copyright notice for the example site and its many contributors.</p></footer>
</body>
</html>`

func TestExtractor_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("rich page", func(t *testing.T) {
		t.Parallel()

		got := extract.NewExtractor().Summarize(parse(t, richPage))

		assert.Equal(t, testPageURL, got.URL)
		assert.Equal(t, "Test Article", got.Title)
		assert.Equal(t, "This article walks through the build pipeline configuration in detail.", got.Description)
		assert.Equal(t, []string{
			"How to configure the build pipeline",
			"Release 2 changes for operators",
			"Background on the storage engine design",
		}, got.KeyPoints)
		assert.Equal(t, []string{
			"https://example.com/images/photo-one.jpg",
			"https://cdn.example.com/photo-two.png",
		}, got.Images)
		assert.Equal(t, pagesum.BrandColors{Primary: "#112233", Secondary: "#2f365b"}, got.BrandColors)
		assert.Positive(t, got.Metrics.WordCount)
		assert.False(t, got.Degraded)
	})

	t.Run("hidden and script text stays out of key points and description", func(t *testing.T) {
		t.Parallel()

		got := extract.NewExtractor().Summarize(parse(t, `<main><h2>How to cache builds<span style="display:none"> tracking pixel junk</span></h2><p>This paragraph explains build caching in enough detail to be chosen.<script>window.ads = "inject";</script></p></main>`))

		assert.Equal(t, []string{"How to cache builds"}, got.KeyPoints)
		assert.Equal(t, "This paragraph explains build caching in enough detail to be chosen.", got.Description)
	})

	t.Run("degenerate page", func(t *testing.T) {
		t.Parallel()

		got := extract.NewExtractor().Summarize(parse(t, `<html><body><h1>Skip to content</h1></body></html>`))

		assert.Equal(t, pagesum.PageSummary{
			URL:         testPageURL,
			Title:       pagesum.DefaultTitle,
			Description: pagesum.DefaultDescription,
			KeyPoints:   []string{},
			Images:      []string{},
			BrandColors: pagesum.DefaultBrandColors,
			Metrics:     got.Metrics,
		}, got)
	})

	t.Run("malformed theme color uses default pair", func(t *testing.T) {
		t.Parallel()

		got := extract.NewExtractor().Summarize(parse(t, `<html><head><meta name="theme-color" content="rgb(abc)"></head><body></body></html>`))

		assert.Equal(t, pagesum.DefaultBrandColors, got.BrandColors)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, richPage)
		e := extract.NewExtractor()

		assert.Equal(t, e.Summarize(doc), e.Summarize(doc))
	})

	t.Run("parallel stages match sequential", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, richPage)

		seq := extract.NewExtractor().Summarize(doc)
		par := extract.NewExtractor(extract.WithParallelStages()).Summarize(doc)

		assert.Equal(t, seq, par)
	})

	t.Run("reports success transitions", func(t *testing.T) {
		t.Parallel()

		var states []extract.State
		e := extract.NewExtractor(extract.WithStateFunc(func(s extract.State, err error) {
			assert.NoError(t, err)
			states = append(states, s)
		}))

		e.Summarize(parse(t, richPage))

		assert.Equal(t, []extract.State{
			extract.StateIdle,
			extract.StateTraversing,
			extract.StateResolving,
			extract.StateAssembled,
		}, states)
	})
}

func TestExtractor_Summarize_Fallback(t *testing.T) {
	t.Parallel()

	t.Run("root error yields fallback with raw title", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			URLFn:   func() string { return testPageURL },
			TitleFn: func() string { return "  Raw   document title " },
			RootFn: func() (pagesum.Node, error) {
				return nil, errors.New("detached tree")
			},
		}

		var states []extract.State
		var failErr error
		e := extract.NewExtractor(extract.WithStateFunc(func(s extract.State, err error) {
			states = append(states, s)
			if s == extract.StateFailed {
				failErr = err
			}
		}))

		got := e.Summarize(doc)

		assert.Equal(t, pagesum.PageSummary{
			URL:         testPageURL,
			Title:       "Raw document title",
			Description: pagesum.DefaultDescription,
			KeyPoints:   []string{},
			Images:      []string{},
			BrandColors: pagesum.DefaultBrandColors,
			Degraded:    true,
		}, got)
		assert.Equal(t, []extract.State{
			extract.StateIdle,
			extract.StateTraversing,
			extract.StateFailed,
			extract.StateFallbackAssembled,
		}, states)
		require.Error(t, failErr)
		assert.Contains(t, failErr.Error(), "detached tree")
	})

	t.Run("panicking node yields fallback", func(t *testing.T) {
		t.Parallel()

		node := &mock.Node{
			TypeFn: func() pagesum.NodeType { panic("node access denied") },
		}
		doc := &mock.Document{
			URLFn:   func() string { return testPageURL },
			TitleFn: func() string { panic("title access denied") },
			RootFn:  func() (pagesum.Node, error) { return node, nil },
		}

		got := extract.NewExtractor().Summarize(doc)

		assert.True(t, got.Degraded)
		assert.Equal(t, testPageURL, got.URL)
		assert.Equal(t, pagesum.DefaultTitle, got.Title)
		assert.Equal(t, pagesum.DefaultBrandColors, got.BrandColors)
	})

	t.Run("nil document yields fallback", func(t *testing.T) {
		t.Parallel()

		got := extract.NewExtractor().Summarize(nil)

		assert.True(t, got.Degraded)
		assert.Equal(t, pagesum.DefaultTitle, got.Title)
		assert.NotNil(t, got.KeyPoints)
		assert.NotNil(t, got.Images)
	})
}

func TestExtractor_Summarize_Invariants(t *testing.T) {
	t.Parallel()

	hexRe := regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	pages := map[string]string{
		"rich":       richPage,
		"empty":      `<html></html>`,
		"text only":  `just some text without any markup at all`,
		"duplicates": `<main>` + strings.Repeat(`<h2>Repeated heading about caches</h2><h3>REPEATED HEADING ABOUT CACHES</h3>`, 20) + `</main>`,
		"images":     strings.Repeat(`<img src="/same.png" width="400" height="400"><img src="/SAME.png" width="400" height="400">`, 10),
		"hidden":     `<body style="display:none"><h1>Invisible body heading</h1></body>`,
	}

	for name, html := range pages {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := extract.NewExtractor().Summarize(parse(t, html))

			assert.NotEmpty(t, got.Title)
			assert.NotEmpty(t, got.Description)
			assert.LessOrEqual(t, len(got.KeyPoints), pagesum.MaxKeyPoints)
			assert.LessOrEqual(t, len(got.Images), pagesum.MaxImages)
			assertNoFoldedDuplicates(t, got.KeyPoints)
			assertNoFoldedDuplicates(t, got.Images)
			assert.Regexp(t, hexRe, string(got.BrandColors.Primary))
			assert.Regexp(t, hexRe, string(got.BrandColors.Secondary))
		})
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "traversing", extract.StateTraversing.String())
	assert.Equal(t, "fallback_assembled", extract.StateFallbackAssembled.String())
	assert.Equal(t, "State(42)", extract.State(42).String())
}

func assertNoFoldedDuplicates(t *testing.T, values []string) {
	t.Helper()

	fold := cases.Fold()
	seen := make(map[string]bool)
	for _, v := range values {
		k := fold.String(v)
		assert.False(t, seen[k], "duplicate %q", v)
		seen[k] = true
	}
}
