package dom

import (
	"strings"

	"github.com/beevik/etree"
)

// XMLElement adapts an etree element, for styling standalone XML and
// SVG documents. Names stay case-sensitive and SVG elements get
// unitless length parsing.
type XMLElement struct {
	el *etree.Element
}

// WrapXML wraps an etree element.
func WrapXML(el *etree.Element) Element {
	if el == nil {
		return nil
	}
	return XMLElement{el: el}
}

func wrapXMLOrNil(el *etree.Element) Element {
	if el == nil {
		return nil
	}
	return XMLElement{el: el}
}

func (e XMLElement) Parent() Element {
	return wrapXMLOrNil(e.el.Parent())
}

func (e XMLElement) FirstChild() Element {
	for _, tok := range e.el.Child {
		if child, ok := tok.(*etree.Element); ok {
			return wrapXMLOrNil(child)
		}
	}
	return nil
}

// elementSiblings returns the element-only child list of the parent and
// the receiver's index within it.
func (e XMLElement) elementSiblings() ([]*etree.Element, int) {
	parent := e.el.Parent()
	if parent == nil {
		return nil, -1
	}
	children := parent.ChildElements()
	for i, c := range children {
		if c == e.el {
			return children, i
		}
	}
	return children, -1
}

func (e XMLElement) NextSibling() Element {
	sibs, i := e.elementSiblings()
	if i < 0 || i+1 >= len(sibs) {
		return nil
	}
	return wrapXMLOrNil(sibs[i+1])
}

func (e XMLElement) PreviousSibling() Element {
	sibs, i := e.elementSiblings()
	if i <= 0 {
		return nil
	}
	return wrapXMLOrNil(sibs[i-1])
}

// NamespaceURI resolves the element's prefix against the xmlns
// declarations in scope.
func (e XMLElement) NamespaceURI() string {
	prefix := e.el.Space
	for el := e.el; el != nil; el = el.Parent() {
		for _, a := range el.Attr {
			if prefix == "" {
				if a.Space == "" && a.Key == "xmlns" {
					return a.Value
				}
			} else if a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

func (e XMLElement) TagName() string { return e.el.Tag }

func (e XMLElement) ID() string {
	return e.el.SelectAttrValue("id", "")
}

func (e XMLElement) ClassNames() []string {
	v := e.el.SelectAttrValue("class", "")
	if v == "" {
		return nil
	}
	return strings.Fields(v)
}

func (e XMLElement) FindAttribute(name string, caseInsensitive bool) (string, bool) {
	for _, a := range e.el.Attr {
		if a.Space != "" && a.Space != "xmlns" {
			if a.Space+":"+a.Key == name {
				return a.Value, true
			}
			continue
		}
		if a.Space != "" {
			continue
		}
		if a.Key == name || (caseInsensitive && strings.EqualFold(a.Key, name)) {
			return a.Value, true
		}
	}
	return "", false
}

func (e XMLElement) Lang() string {
	for el := e.el; el != nil; el = el.Parent() {
		for _, a := range el.Attr {
			if a.Space == "xml" && a.Key == "lang" {
				return a.Value
			}
			if a.Space == "" && a.Key == "lang" {
				return a.Value
			}
		}
	}
	return ""
}

func (e XMLElement) Empty() bool { return len(e.el.Child) == 0 }

func (e XMLElement) IsCaseSensitive() bool { return true }

func (e XMLElement) IsSVG() bool {
	return e.NamespaceURI() == NamespaceSVG || rootTag(e.el) == "svg"
}

func rootTag(el *etree.Element) string {
	for el.Parent() != nil {
		el = el.Parent()
	}
	return el.Tag
}

func (e XMLElement) InlineStyle() string {
	return e.el.SelectAttrValue("style", "")
}

// PresentationStyle maps the SVG geometry and paint attributes that
// this engine models onto declarations.
func (e XMLElement) PresentationStyle() string {
	var parts []string
	if v := e.el.SelectAttrValue("width", ""); v != "" {
		if d := dimensionText(v); d != "" {
			parts = append(parts, "width: "+d)
		}
	}
	if v := e.el.SelectAttrValue("height", ""); v != "" {
		if d := dimensionText(v); d != "" {
			parts = append(parts, "height: "+d)
		}
	}
	if v := e.el.SelectAttrValue("color", ""); v != "" {
		parts = append(parts, "color: "+strings.TrimSpace(v))
	}
	if v := e.el.SelectAttrValue("font-size", ""); v != "" {
		parts = append(parts, "font-size: "+strings.TrimSpace(v))
	}
	return strings.Join(parts, "; ")
}
