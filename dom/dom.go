// Package dom defines the minimal element interface the style engine
// matches selectors against, plus adapters for HTML and XML document
// trees.
package dom

// Element is one element node of a document tree. Implementations
// return nil for absent relatives.
type Element interface {
	Parent() Element
	FirstChild() Element
	NextSibling() Element
	PreviousSibling() Element

	NamespaceURI() string
	TagName() string

	ID() string
	ClassNames() []string

	// FindAttribute looks an attribute up by name; caseInsensitive
	// selects case-insensitive name comparison (HTML documents).
	FindAttribute(name string, caseInsensitive bool) (string, bool)

	// Lang is the effective language of the element, inherited from
	// ancestors when not set locally.
	Lang() string

	// Empty reports whether the element has no child nodes at all,
	// including text.
	Empty() bool

	// IsCaseSensitive is false for HTML elements, true elsewhere.
	IsCaseSensitive() bool

	// IsSVG enables unitless length parsing for attribute and inline
	// styles.
	IsSVG() bool

	// InlineStyle returns the element's style attribute text, or "".
	InlineStyle() string

	// PresentationStyle returns a declaration list derived from the
	// element's presentational attributes, or "".
	PresentationStyle() string
}

// Root walks to the tree root of el.
func Root(el Element) Element {
	for {
		p := el.Parent()
		if p == nil {
			return el
		}
		el = p
	}
}

// IndexAmongSiblings returns the 1-based position of el among its
// element siblings; ofType restricts counting to siblings with the same
// tag and namespace.
func IndexAmongSiblings(el Element, ofType bool) int {
	n := 1
	for sib := el.PreviousSibling(); sib != nil; sib = sib.PreviousSibling() {
		if !ofType || sameType(el, sib) {
			n++
		}
	}
	return n
}

// IndexAmongSiblingsFromEnd mirrors IndexAmongSiblings counting from
// the last sibling.
func IndexAmongSiblingsFromEnd(el Element, ofType bool) int {
	n := 1
	for sib := el.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if !ofType || sameType(el, sib) {
			n++
		}
	}
	return n
}

func sameType(a, b Element) bool {
	return a.TagName() == b.TagName() && a.NamespaceURI() == b.NamespaceURI()
}
