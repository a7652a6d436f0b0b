package extract_test

import (
	"testing"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
	"github.com/pranavarora99/pagesum/goquery"
	"github.com/stretchr/testify/require"
)

const testPageURL = "https://example.com/blog/post"

func parse(t *testing.T, html string) pagesum.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(html, testPageURL)
	require.NoError(t, err)
	return doc
}

func traverse(t *testing.T, html string) *extract.Buckets {
	t.Helper()

	root, err := parse(t, html).Root()
	require.NoError(t, err)
	b, err := extract.Traverse(root)
	require.NoError(t, err)
	return b
}

// findElement returns the first element in document order with the given
// id attribute.
func findElement(t *testing.T, doc pagesum.Document, id string) pagesum.Node {
	t.Helper()

	root, err := doc.Root()
	require.NoError(t, err)

	var found pagesum.Node
	var walk func(n pagesum.Node)
	walk = func(n pagesum.Node) {
		if found != nil {
			return
		}
		if v, ok := n.Attr("id"); ok && v == id {
			found = n
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	require.NotNil(t, found, "no element with id %q", id)
	return found
}
