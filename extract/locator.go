package extract

import (
	"strings"

	"github.com/pranavarora99/pagesum"
)

var contentTags = map[string]bool{"main": true, "article": true}

var contentRoles = map[string]bool{"main": true, "article": true}

var contentTokens = map[string]bool{
	"content": true, "main": true, "main-content": true, "post": true,
	"post-content": true, "post-body": true, "entry": true, "entry-content": true,
	"article": true, "article-body": true, "story": true,
}

var chromeTags = map[string]bool{"nav": true, "header": true, "footer": true, "aside": true}

var chromeRoles = map[string]bool{
	"navigation": true, "banner": true, "contentinfo": true,
	"complementary": true, "menu": true, "menubar": true,
}

var chromeTokens = map[string]bool{
	"nav": true, "navbar": true, "navigation": true, "menu": true,
	"header": true, "site-header": true, "footer": true, "site-footer": true,
	"sidebar": true, "breadcrumb": true, "breadcrumbs": true,
}

// region records what kinds of containers enclose a node.
type region struct {
	content bool
	chrome  bool
}

// enter returns the region of n given the region of its parent.
func (r region) enter(n pagesum.Node) region {
	if n.Type() != pagesum.ElementNode {
		return r
	}
	return region{
		content: r.content || isContentContainer(n),
		chrome:  r.chrome || isChromeContainer(n),
	}
}

// mainContent applies the locator rule: inside a content container, or
// outside every chrome container.
func (r region) mainContent() bool {
	return r.content || !r.chrome
}

// IsMainContent reports whether n lies in a content region. It is true when
// n or one of its ancestors is a recognized content container, or when none
// of them is a recognized chrome container. A page without any landmarks is
// therefore main content everywhere.
func IsMainContent(n pagesum.Node) bool {
	var r region
	for cur := n; cur != nil; cur = cur.Parent() {
		r = r.enter(cur)
	}
	return r.mainContent()
}

func isContentContainer(n pagesum.Node) bool {
	if contentTags[n.Tag()] {
		return true
	}
	if role, ok := n.Attr("role"); ok && contentRoles[strings.ToLower(strings.TrimSpace(role))] {
		return true
	}
	return hasToken(n, contentTokens)
}

func isChromeContainer(n pagesum.Node) bool {
	if chromeTags[n.Tag()] {
		return true
	}
	if role, ok := n.Attr("role"); ok && chromeRoles[strings.ToLower(strings.TrimSpace(role))] {
		return true
	}
	return hasToken(n, chromeTokens)
}

// hasToken reports whether the element's id or any class matches tokens.
func hasToken(n pagesum.Node, tokens map[string]bool) bool {
	if id, ok := n.Attr("id"); ok && tokens[strings.ToLower(strings.TrimSpace(id))] {
		return true
	}
	return hasClass(n, tokens)
}

func hasClass(n pagesum.Node, classes map[string]bool) bool {
	class, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(class) {
		if classes[strings.ToLower(c)] {
			return true
		}
	}
	return false
}
