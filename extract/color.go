package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pranavarora99/pagesum"
)

// Channel shift deriving the secondary color from the primary.
const (
	redShift   = 30
	greenShift = 20
	blueShift  = 40
)

var (
	shortHexRe = regexp.MustCompile(`^#([0-9a-f])([0-9a-f])([0-9a-f])$`)
	longHexRe  = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rgbRe      = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*(?:[,/]\s*([0-9.]+%?)\s*)?\)$`)
)

// ResolveBrandColors infers the brand color pair. A valid theme-color wins;
// otherwise the first background color among header, nav, .navbar/.header
// and button/.btn elements that is neither transparent, black nor white;
// otherwise DefaultBrandColors.
func ResolveBrandColors(b *Buckets) pagesum.BrandColors {
	if primary, ok := ParseColor(b.Meta["theme-color"]); ok {
		return brandPair(primary)
	}

	for _, group := range b.ColorSamples {
		for _, raw := range group {
			c, ok := ParseColor(raw)
			if !ok || c == "#000000" || c == "#ffffff" {
				continue
			}
			return brandPair(c)
		}
	}

	return pagesum.DefaultBrandColors
}

func brandPair(primary pagesum.HexColor) pagesum.BrandColors {
	return pagesum.BrandColors{Primary: primary, Secondary: SecondaryColor(primary)}
}

// SecondaryColor shifts each channel of primary (R+30, G+20, B+40, clamped
// to 255). An invalid primary yields the default secondary.
func SecondaryColor(primary pagesum.HexColor) pagesum.HexColor {
	if !primary.Valid() {
		return pagesum.DefaultBrandColors.Secondary
	}
	v, _ := strconv.ParseUint(string(primary[1:]), 16, 32)
	r := shiftChannel(int(v>>16&0xff), redShift)
	g := shiftChannel(int(v>>8&0xff), greenShift)
	bl := shiftChannel(int(v&0xff), blueShift)
	return toHex(r, g, bl)
}

// ParseColor converts a CSS hex (#rgb, #rrggbb) or rgb()/rgba() value to a
// lowercase 6-digit hex color. Malformed and fully transparent values are
// reported as absent.
func ParseColor(s string) (pagesum.HexColor, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" {
		return "", false
	}

	if longHexRe.MatchString(s) {
		return pagesum.HexColor(s), true
	}
	if m := shortHexRe.FindStringSubmatch(s); m != nil {
		return pagesum.HexColor("#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]), true
	}

	m := rgbRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return "", false
		}
		ch[i] = v
	}
	if alpha := m[4]; alpha != "" && isZeroAlpha(alpha) {
		return "", false
	}
	return toHex(ch[0], ch[1], ch[2]), true
}

func isZeroAlpha(alpha string) bool {
	v, err := strconv.ParseFloat(strings.TrimSuffix(alpha, "%"), 64)
	return err == nil && v == 0
}

func shiftChannel(v, delta int) int {
	return min(max(v+delta, 0), 255)
}

func toHex(r, g, b int) pagesum.HexColor {
	return pagesum.HexColor(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
