package css

// Combinator relates a compound selector to the compound on its left.
type Combinator uint8

const (
	CombinatorNone Combinator = iota
	CombinatorDescendant
	CombinatorChild
	CombinatorDirectAdjacent
	CombinatorIndirectAdjacent
)

func (c Combinator) String() string {
	switch c {
	case CombinatorDescendant:
		return " "
	case CombinatorChild:
		return ">"
	case CombinatorDirectAdjacent:
		return "+"
	case CombinatorIndirectAdjacent:
		return "~"
	}
	return ""
}

// MatchType tags a simple selector.
type MatchType uint8

const (
	MatchTag MatchType = iota
	MatchUniversal
	MatchNamespace
	MatchID
	MatchClass
	MatchAttributeHas
	MatchAttributeEquals
	MatchAttributeIncludes
	MatchAttributeDashEquals
	MatchAttributeStartsWith
	MatchAttributeEndsWith
	MatchAttributeContains

	MatchPseudoClassRoot
	MatchPseudoClassScope
	MatchPseudoClassEmpty
	MatchPseudoClassFirstChild
	MatchPseudoClassLastChild
	MatchPseudoClassOnlyChild
	MatchPseudoClassFirstOfType
	MatchPseudoClassLastOfType
	MatchPseudoClassOnlyOfType
	MatchPseudoClassNthChild
	MatchPseudoClassNthLastChild
	MatchPseudoClassNthOfType
	MatchPseudoClassNthLastOfType
	MatchPseudoClassLink
	MatchPseudoClassAnyLink
	MatchPseudoClassLocalLink
	MatchPseudoClassLang
	MatchPseudoClassIs
	MatchPseudoClassNot
	MatchPseudoClassWhere
	MatchPseudoClassHas

	// Interactive states never match during a static document build but
	// still parse and contribute specificity.
	MatchPseudoClassActive
	MatchPseudoClassChecked
	MatchPseudoClassDisabled
	MatchPseudoClassEnabled
	MatchPseudoClassFocus
	MatchPseudoClassFocusVisible
	MatchPseudoClassFocusWithin
	MatchPseudoClassHover
	MatchPseudoClassTarget
	MatchPseudoClassTargetWithin
	MatchPseudoClassVisited

	MatchPseudoElementBefore
	MatchPseudoElementAfter
	MatchPseudoElementMarker
	MatchPseudoElementFirstLetter
	MatchPseudoElementFirstLine
)

// PseudoType identifies pseudo elements and page pseudo classes for
// style queries.
type PseudoType uint8

const (
	PseudoNone PseudoType = iota
	PseudoBefore
	PseudoAfter
	PseudoMarker
	PseudoFirstLetter
	PseudoFirstLine
	PseudoFirstPage
	PseudoLeftPage
	PseudoRightPage
	PseudoBlankPage
)

// SimpleSelector is one constraint inside a compound selector.
type SimpleSelector struct {
	Match MatchType

	// Name holds the tag or attribute name, or the resolved namespace
	// URI for MatchNamespace; Value holds the id, class, attribute
	// value or language tag.
	Name  string
	Value string

	CaseInsensitive bool

	// An+B pattern for the nth pseudo classes.
	A, B int

	// Sub-selector lists for :is/:not/:where/:has.
	Sub []Selector
}

// MatchesNth evaluates the An+B pattern against a 1-based index.
func (ss *SimpleSelector) MatchesNth(count int) bool {
	a, b := ss.A, ss.B
	if a > 0 {
		return count >= b && (count-b)%a == 0
	}
	if a < 0 {
		return count <= b && (b-count)%-a == 0
	}
	return count == b
}

// PseudoElement maps a pseudo-element selector head to its pseudo
// type.
func (ss *SimpleSelector) PseudoElement() PseudoType {
	switch ss.Match {
	case MatchPseudoElementBefore:
		return PseudoBefore
	case MatchPseudoElementAfter:
		return PseudoAfter
	case MatchPseudoElementMarker:
		return PseudoMarker
	case MatchPseudoElementFirstLetter:
		return PseudoFirstLetter
	case MatchPseudoElementFirstLine:
		return PseudoFirstLine
	}
	return PseudoNone
}

// Specificity of one simple selector, in the packed 24-bit form: ids
// weigh 0x10000, classes/attributes/pseudo-classes 0x100, types and
// pseudo-elements 0x1. The forgiving pseudo classes take the maximum of
// their sub-selectors; :where adds nothing.
func (ss *SimpleSelector) Specificity() uint32 {
	switch ss.Match {
	case MatchID:
		return 0x10000
	case MatchClass,
		MatchAttributeHas, MatchAttributeEquals, MatchAttributeIncludes,
		MatchAttributeDashEquals, MatchAttributeStartsWith,
		MatchAttributeEndsWith, MatchAttributeContains,
		MatchPseudoClassRoot, MatchPseudoClassScope, MatchPseudoClassEmpty,
		MatchPseudoClassFirstChild, MatchPseudoClassLastChild, MatchPseudoClassOnlyChild,
		MatchPseudoClassFirstOfType, MatchPseudoClassLastOfType, MatchPseudoClassOnlyOfType,
		MatchPseudoClassNthChild, MatchPseudoClassNthLastChild,
		MatchPseudoClassNthOfType, MatchPseudoClassNthLastOfType,
		MatchPseudoClassLink, MatchPseudoClassAnyLink, MatchPseudoClassLocalLink,
		MatchPseudoClassLang,
		MatchPseudoClassActive, MatchPseudoClassChecked, MatchPseudoClassDisabled,
		MatchPseudoClassEnabled, MatchPseudoClassFocus, MatchPseudoClassFocusVisible,
		MatchPseudoClassFocusWithin, MatchPseudoClassHover, MatchPseudoClassTarget,
		MatchPseudoClassTargetWithin, MatchPseudoClassVisited:
		return 0x100
	case MatchTag,
		MatchPseudoElementBefore, MatchPseudoElementAfter, MatchPseudoElementMarker,
		MatchPseudoElementFirstLetter, MatchPseudoElementFirstLine:
		return 0x1
	case MatchPseudoClassIs, MatchPseudoClassNot, MatchPseudoClassHas:
		var max uint32
		for _, sub := range ss.Sub {
			if s := sub.Specificity(); s > max {
				max = s
			}
		}
		return max
	}
	return 0
}

// CompoundSelector is a non-empty run of simple selectors with no
// combinators between them.
type CompoundSelector []SimpleSelector

// PseudoElement returns the compound's pseudo-element head, if any.
func (cs CompoundSelector) PseudoElement() PseudoType {
	for i := range cs {
		if pt := cs[i].PseudoElement(); pt != PseudoNone {
			return pt
		}
	}
	return PseudoNone
}

// ComplexUnit pairs a compound selector with the combinator connecting
// it to the compound on its left; the leftmost unit carries
// CombinatorNone (a sub-selector of :has may carry its leading
// combinator there instead).
type ComplexUnit struct {
	Combinator Combinator
	Compound   CompoundSelector
}

// Selector is a complex selector: compound selectors joined by
// combinators, stored left to right.
type Selector []ComplexUnit

// Rightmost returns the subject compound of the selector.
func (sel Selector) Rightmost() CompoundSelector {
	return sel[len(sel)-1].Compound
}

// Specificity sums the simple selector contributions.
func (sel Selector) Specificity() uint32 {
	var spec uint32
	for _, unit := range sel {
		for i := range unit.Compound {
			spec += unit.Compound[i].Specificity()
		}
	}
	return spec
}

// PseudoElement returns the pseudo-element of the subject compound.
func (sel Selector) PseudoElement() PseudoType {
	return sel.Rightmost().PseudoElement()
}
