// Package style resolves document styles: it indexes stylesheets,
// matches selectors against elements, runs the cascade and resolves
// lengths, variables and fonts.
package style

import (
	"strings"

	"pcss/css"
	"pcss/dom"
)

// MatchSelector evaluates a complex selector against an element with
// the given pseudo-element query.
func MatchSelector(el dom.Element, pt css.PseudoType, sel css.Selector) bool {
	if len(sel) == 0 {
		return false
	}
	last := len(sel) - 1
	if !matchCompound(el, pt, sel[last].Compound) {
		return false
	}
	return matchLeftward(el, sel, last, nil)
}

// matchLeftward walks the selector right to left from unit i, which
// already matched at el. anchor constrains where the leftmost compound
// may land (used by :has sub-selectors); nil means unconstrained.
func matchLeftward(el dom.Element, sel css.Selector, i int, anchor dom.Element) bool {
	if i == 0 {
		return anchorSatisfied(el, sel[0].Combinator, anchor)
	}
	switch sel[i].Combinator {
	case css.CombinatorChild:
		p := el.Parent()
		if p == nil {
			return false
		}
		return matchCompound(p, css.PseudoNone, sel[i-1].Compound) &&
			matchLeftward(p, sel, i-1, anchor)
	case css.CombinatorDescendant, css.CombinatorNone:
		for p := el.Parent(); p != nil; p = p.Parent() {
			if matchCompound(p, css.PseudoNone, sel[i-1].Compound) &&
				matchLeftward(p, sel, i-1, anchor) {
				return true
			}
		}
		return false
	case css.CombinatorDirectAdjacent:
		s := el.PreviousSibling()
		if s == nil {
			return false
		}
		return matchCompound(s, css.PseudoNone, sel[i-1].Compound) &&
			matchLeftward(s, sel, i-1, anchor)
	case css.CombinatorIndirectAdjacent:
		for s := el.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			if matchCompound(s, css.PseudoNone, sel[i-1].Compound) &&
				matchLeftward(s, sel, i-1, anchor) {
				return true
			}
		}
		return false
	}
	return false
}

// anchorSatisfied checks the relation between the leftmost matched
// element and the :has anchor. A missing combinator behaves as
// descendant.
func anchorSatisfied(el dom.Element, comb css.Combinator, anchor dom.Element) bool {
	if anchor == nil {
		return true
	}
	switch comb {
	case css.CombinatorChild:
		return el.Parent() == anchor
	case css.CombinatorDirectAdjacent:
		return anchor.NextSibling() == el
	case css.CombinatorIndirectAdjacent:
		for s := anchor.NextSibling(); s != nil; s = s.NextSibling() {
			if s == el {
				return true
			}
		}
		return false
	default:
		for p := el.Parent(); p != nil; p = p.Parent() {
			if p == anchor {
				return true
			}
		}
		return false
	}
}

// matchCompound matches every simple selector of a compound. A
// pseudo-element head must agree with the queried pseudo type, and a
// pseudo query requires a matching head.
func matchCompound(el dom.Element, pt css.PseudoType, compound css.CompoundSelector) bool {
	matchedPseudo := css.PseudoNone
	for i := range compound {
		ss := &compound[i]
		if pe := ss.PseudoElement(); pe != css.PseudoNone {
			if pe != pt {
				return false
			}
			matchedPseudo = pe
			continue
		}
		if !matchSimple(el, ss) {
			return false
		}
	}
	return matchedPseudo == pt
}

func matchSimple(el dom.Element, ss *css.SimpleSelector) bool {
	switch ss.Match {
	case css.MatchUniversal:
		return true
	case css.MatchTag:
		if el.IsCaseSensitive() {
			return el.TagName() == ss.Name
		}
		return strings.EqualFold(el.TagName(), ss.Name)
	case css.MatchNamespace:
		return el.NamespaceURI() == ss.Name
	case css.MatchID:
		return el.ID() == ss.Value
	case css.MatchClass:
		for _, c := range el.ClassNames() {
			if c == ss.Value {
				return true
			}
		}
		return false
	case css.MatchAttributeHas, css.MatchAttributeEquals, css.MatchAttributeIncludes,
		css.MatchAttributeDashEquals, css.MatchAttributeStartsWith,
		css.MatchAttributeEndsWith, css.MatchAttributeContains:
		return matchAttribute(el, ss)
	case css.MatchPseudoClassRoot, css.MatchPseudoClassScope:
		return el.Parent() == nil
	case css.MatchPseudoClassEmpty:
		return el.Empty()
	case css.MatchPseudoClassFirstChild:
		return el.PreviousSibling() == nil
	case css.MatchPseudoClassLastChild:
		return el.NextSibling() == nil
	case css.MatchPseudoClassOnlyChild:
		return el.PreviousSibling() == nil && el.NextSibling() == nil
	case css.MatchPseudoClassFirstOfType:
		return dom.IndexAmongSiblings(el, true) == 1
	case css.MatchPseudoClassLastOfType:
		return dom.IndexAmongSiblingsFromEnd(el, true) == 1
	case css.MatchPseudoClassOnlyOfType:
		return dom.IndexAmongSiblings(el, true) == 1 && dom.IndexAmongSiblingsFromEnd(el, true) == 1
	case css.MatchPseudoClassNthChild:
		return ss.MatchesNth(dom.IndexAmongSiblings(el, false))
	case css.MatchPseudoClassNthLastChild:
		return ss.MatchesNth(dom.IndexAmongSiblingsFromEnd(el, false))
	case css.MatchPseudoClassNthOfType:
		return ss.MatchesNth(dom.IndexAmongSiblings(el, true))
	case css.MatchPseudoClassNthLastOfType:
		return ss.MatchesNth(dom.IndexAmongSiblingsFromEnd(el, true))
	case css.MatchPseudoClassLink, css.MatchPseudoClassAnyLink, css.MatchPseudoClassLocalLink:
		if !strings.EqualFold(el.TagName(), "a") {
			return false
		}
		_, ok := el.FindAttribute("href", !el.IsCaseSensitive())
		return ok
	case css.MatchPseudoClassLang:
		return dashEquals(el.Lang(), ss.Value)
	case css.MatchPseudoClassIs, css.MatchPseudoClassWhere:
		for _, sub := range ss.Sub {
			if MatchSelector(el, css.PseudoNone, sub) {
				return true
			}
		}
		return false
	case css.MatchPseudoClassNot:
		for _, sub := range ss.Sub {
			if MatchSelector(el, css.PseudoNone, sub) {
				return false
			}
		}
		return true
	case css.MatchPseudoClassHas:
		for _, sub := range ss.Sub {
			if matchHasSelector(el, sub) {
				return true
			}
		}
		return false
	}
	// Interactive states never hold in a static document build.
	return false
}

func matchAttribute(el dom.Element, ss *css.SimpleSelector) bool {
	val, ok := el.FindAttribute(ss.Name, !el.IsCaseSensitive())
	if !ok {
		return false
	}
	if ss.Match == css.MatchAttributeHas {
		return true
	}
	want := ss.Value
	if ss.CaseInsensitive {
		val = strings.ToLower(val)
		want = strings.ToLower(want)
	}
	switch ss.Match {
	case css.MatchAttributeEquals:
		return val == want
	case css.MatchAttributeIncludes:
		for _, part := range strings.Fields(val) {
			if part == want {
				return true
			}
		}
		return false
	case css.MatchAttributeDashEquals:
		return val == want || strings.HasPrefix(val, want+"-")
	case css.MatchAttributeStartsWith:
		return want != "" && strings.HasPrefix(val, want)
	case css.MatchAttributeEndsWith:
		return want != "" && strings.HasSuffix(val, want)
	case css.MatchAttributeContains:
		return want != "" && strings.Contains(val, want)
	}
	return false
}

// dashEquals implements the :lang comparison: exact match or hyphen
// prefix, case-insensitively.
func dashEquals(value, want string) bool {
	if want == "" || value == "" {
		return false
	}
	value = strings.ToLower(value)
	want = strings.ToLower(want)
	return value == want || strings.HasPrefix(value, want+"-")
}

// matchHasSelector searches the anchor's scope for an element matching
// the sub-selector. The scope comes from the sub-selector's leading
// combinator: descendants for the descendant and child forms (a
// missing combinator behaves as descendant), following siblings for
// the adjacent forms.
func matchHasSelector(anchor dom.Element, sub css.Selector) bool {
	lead := sub[0].Combinator
	last := len(sub) - 1
	try := func(candidate dom.Element) bool {
		return matchCompound(candidate, css.PseudoNone, sub[last].Compound) &&
			matchLeftward(candidate, sub, last, anchor)
	}
	switch lead {
	case css.CombinatorDirectAdjacent:
		if s := anchor.NextSibling(); s != nil {
			if len(sub) == 1 {
				return try(s)
			}
			// With several compounds the rightmost match can sit
			// further right; search every following sibling subtree.
			for c := s; c != nil; c = c.NextSibling() {
				if try(c) || searchSubtree(c, try) {
					return true
				}
			}
		}
		return false
	case css.CombinatorIndirectAdjacent:
		for s := anchor.NextSibling(); s != nil; s = s.NextSibling() {
			if try(s) || (len(sub) > 1 && searchSubtree(s, try)) {
				return true
			}
		}
		return false
	default:
		return searchSubtree(anchor, try)
	}
}

// searchSubtree runs try over every descendant of root in document
// order.
func searchSubtree(root dom.Element, try func(dom.Element) bool) bool {
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if try(c) || searchSubtree(c, try) {
			return true
		}
	}
	return false
}
