package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Namespace URIs assigned by the HTML parser.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// HTMLElement adapts a node from golang.org/x/net/html.
type HTMLElement struct {
	node *html.Node
}

// WrapHTML wraps an element node; passing a document node returns its
// root element.
func WrapHTML(n *html.Node) Element {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return HTMLElement{node: n}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return HTMLElement{node: c}
		}
	}
	return nil
}

// Node returns the wrapped parser node.
func (e HTMLElement) Node() *html.Node { return e.node }

func wrapOrNil(n *html.Node) Element {
	if n == nil {
		return nil
	}
	return HTMLElement{node: n}
}

func (e HTMLElement) Parent() Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return wrapOrNil(p)
		}
	}
	return nil
}

func (e HTMLElement) FirstChild() Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return wrapOrNil(c)
		}
	}
	return nil
}

func (e HTMLElement) NextSibling() Element {
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return wrapOrNil(s)
		}
	}
	return nil
}

func (e HTMLElement) PreviousSibling() Element {
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return wrapOrNil(s)
		}
	}
	return nil
}

func (e HTMLElement) NamespaceURI() string {
	switch e.node.Namespace {
	case "", "html":
		return NamespaceHTML
	case "svg":
		return NamespaceSVG
	case "math":
		return NamespaceMathML
	}
	return e.node.Namespace
}

func (e HTMLElement) TagName() string { return e.node.Data }

func (e HTMLElement) ID() string {
	v, _ := e.FindAttribute("id", true)
	return v
}

func (e HTMLElement) ClassNames() []string {
	v, ok := e.FindAttribute("class", true)
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

func (e HTMLElement) FindAttribute(name string, caseInsensitive bool) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace != "" {
			continue
		}
		if a.Key == name || (caseInsensitive && strings.EqualFold(a.Key, name)) {
			return a.Val, true
		}
	}
	return "", false
}

func (e HTMLElement) Lang() string {
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		for _, a := range n.Attr {
			if a.Key == "lang" && a.Namespace == "" {
				return a.Val
			}
		}
	}
	return ""
}

func (e HTMLElement) Empty() bool { return e.node.FirstChild == nil }

func (e HTMLElement) IsCaseSensitive() bool {
	return e.node.Namespace != "" && e.node.Namespace != "html"
}

func (e HTMLElement) IsSVG() bool { return e.node.Namespace == "svg" }

func (e HTMLElement) InlineStyle() string {
	v, _ := e.FindAttribute("style", true)
	return v
}

// PresentationStyle maps the legacy presentational attributes onto
// declarations: dimensions, cell alignment, colors and the hidden
// attribute.
func (e HTMLElement) PresentationStyle() string {
	var b strings.Builder
	appendDecl := func(prop, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s; ", prop, value)
	}
	if v, ok := e.FindAttribute("width", true); ok {
		appendDecl("width", dimensionText(v))
	}
	if v, ok := e.FindAttribute("height", true); ok {
		appendDecl("height", dimensionText(v))
	}
	if v, ok := e.FindAttribute("bgcolor", true); ok {
		appendDecl("background-color", strings.TrimSpace(v))
	}
	if v, ok := e.FindAttribute("align", true); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "left", "right", "center", "justify":
			appendDecl("text-align", strings.ToLower(strings.TrimSpace(v)))
		}
	}
	if v, ok := e.FindAttribute("valign", true); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "top", "middle", "bottom", "baseline":
			appendDecl("vertical-align", strings.ToLower(strings.TrimSpace(v)))
		}
	}
	if _, ok := e.FindAttribute("hidden", true); ok {
		appendDecl("display", "none")
	}
	return strings.TrimSpace(b.String())
}

// dimensionText turns a legacy width/height attribute into a length: a
// bare number means pixels, a trailing percent passes through.
func dimensionText(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if strings.HasSuffix(v, "%") {
		if _, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			return v
		}
		return ""
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v + "px"
	}
	return ""
}
