package extract

import "github.com/pranavarora99/pagesum"

// Kind is the structural role of an element.
type Kind int

// Kind constants.
const (
	KindOther Kind = iota
	KindHeading
	KindListItem
	KindEmphasis
	KindImage
	KindParagraph
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindEmphasis:
		return "emphasis"
	case KindImage:
		return "image"
	case KindParagraph:
		return "paragraph"
	default:
		return "other"
	}
}

// Category is the classification of one element. Level is 1-6 for
// headings and 0 otherwise.
type Category struct {
	Kind  Kind
	Level int
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

var emphasisTags = map[string]bool{
	"strong": true, "b": true, "em": true, "mark": true,
}

// Classify buckets an element by structural role. Non-elements are KindOther.
func Classify(n pagesum.Node) Category {
	if n == nil || n.Type() != pagesum.ElementNode {
		return Category{Kind: KindOther}
	}
	tag := n.Tag()
	if level, ok := headingLevels[tag]; ok {
		return Category{Kind: KindHeading, Level: level}
	}
	switch {
	case tag == "li":
		return Category{Kind: KindListItem}
	case emphasisTags[tag]:
		return Category{Kind: KindEmphasis}
	case tag == "img":
		return Category{Kind: KindImage}
	case tag == "p":
		return Category{Kind: KindParagraph}
	}
	return Category{Kind: KindOther}
}
