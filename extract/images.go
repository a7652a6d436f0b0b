package extract

import (
	"net/url"
	"strings"

	"github.com/pranavarora99/pagesum"
)

// minImageSize is the exclusive lower bound on rendered width and height.
const minImageSize = 150

// imageMetaKeys are the social-preview image fields, in priority order.
var imageMetaKeys = []string{"og:image", "og:image:url", "twitter:image"}

var decorativeImageTerms = []string{"icon", "logo", "avatar"}

// ExtractImages returns up to five absolute image URLs. The social-preview
// image comes first regardless of size; other images must render larger
// than 150x150 and must not look like icons, logos or avatars. Candidates
// that cannot be resolved to an absolute http(s) URL are dropped.
func ExtractImages(b *Buckets, pageURL string) []string {
	base := resolveBase(pageURL, b.BaseHref)
	set := newFoldedSet()

	for _, key := range imageMetaKeys {
		if u, ok := AbsoluteURL(base, b.Meta[key]); ok {
			set.add(u)
			break
		}
	}

	for _, img := range b.Images {
		if set.len() >= pagesum.MaxImages {
			break
		}
		if img.Width <= minImageSize || img.Height <= minImageSize {
			continue
		}
		if isDecorativeImage(img.Src) {
			continue
		}
		if u, ok := AbsoluteURL(base, img.Src); ok {
			set.add(u)
		}
	}

	images := set.values()
	if len(images) > pagesum.MaxImages {
		images = images[:pagesum.MaxImages]
	}
	return images
}

// AbsoluteURL resolves ref against base and reports whether the result is
// an absolute http(s) URL. A nil base only accepts absolute references.
func AbsoluteURL(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.String(), true
}

// resolveBase combines the page URL with an optional <base href>.
func resolveBase(pageURL, baseHref string) *url.URL {
	base, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || !base.IsAbs() {
		base = nil
	}
	if baseHref == "" {
		return base
	}
	href, err := url.Parse(baseHref)
	if err != nil {
		return base
	}
	if base != nil {
		return base.ResolveReference(href)
	}
	if href.IsAbs() {
		return href
	}
	return nil
}

func isDecorativeImage(src string) bool {
	lower := strings.ToLower(src)
	for _, term := range decorativeImageTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
