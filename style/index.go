package style

import (
	"go.uber.org/zap"

	"pcss/css"
)

// maxImportDepth bounds @import recursion.
const maxImportDepth = 256

// RuleData is one (rule, selector) pair placed in an index bucket.
type RuleData struct {
	Rule        *css.StyleRule
	Selector    css.Selector
	Specificity uint32
	Position    uint32
}

// PageRuleData is one (page rule, page selector) pair.
type PageRuleData struct {
	Rule        *css.PageRule
	Selector    css.PageSelector
	Specificity uint32
	Position    uint32
}

// Loader fetches the content of an imported stylesheet; nil disables
// imports.
type Loader func(href string) ([]byte, error)

// ruleIndex buckets style rules by the rightmost compound of each
// selector: id first, then class, attribute name, tag name, universal.
// Selectors with a pseudo-element head go to their own bucket. The
// position counter runs across imports and media blocks so declaration
// order is globally defined.
type ruleIndex struct {
	log *zap.Logger

	id        map[string][]RuleData
	class     map[string][]RuleData
	attribute map[string][]RuleData
	tag       map[string][]RuleData
	universal []RuleData
	pseudo    []RuleData

	pages         []PageRuleData
	fontFaces     []*css.FontFaceRule
	counterStyles []*css.CounterStyleRule

	position uint32
}

func newRuleIndex(log *zap.Logger) *ruleIndex {
	if log == nil {
		log = zap.NewNop()
	}
	return &ruleIndex{
		log:       log.Named("css-index"),
		id:        make(map[string][]RuleData),
		class:     make(map[string][]RuleData),
		attribute: make(map[string][]RuleData),
		tag:       make(map[string][]RuleData),
	}
}

// addSheet indexes a parsed rule list. Media rules are gated against
// the viewport now; imports are resolved through the loader with the
// shared position counter.
func (ix *ruleIndex) addSheet(rules []css.Rule, vp css.Viewport, loader Loader, parse func(data []byte, origin css.Origin) []css.Rule, depth int) {
	for _, r := range rules {
		switch {
		case r.Style != nil:
			ix.addStyleRule(r.Style)
		case r.Media != nil:
			if r.Media.Queries.Matches(vp) {
				ix.addSheet(r.Media.Rules, vp, loader, parse, depth)
			}
		case r.Import != nil:
			ix.addImport(r.Import, vp, loader, parse, depth)
		case r.FontFace != nil:
			ix.fontFaces = append(ix.fontFaces, r.FontFace)
		case r.CounterStyle != nil:
			ix.counterStyles = append(ix.counterStyles, r.CounterStyle)
		case r.Page != nil:
			ix.addPageRule(r.Page)
		}
	}
}

func (ix *ruleIndex) addImport(imp *css.ImportRule, vp css.Viewport, loader Loader, parse func(data []byte, origin css.Origin) []css.Rule, depth int) {
	if depth >= maxImportDepth {
		ix.log.Debug("Ignoring import beyond depth limit", zap.String("href", imp.Href))
		return
	}
	if loader == nil {
		return
	}
	if !imp.Media.Matches(vp) {
		return
	}
	data, err := loader(imp.Href)
	if err != nil {
		ix.log.Debug("Unable to load import", zap.String("href", imp.Href), zap.Error(err))
		return
	}
	ix.addSheet(parse(data, imp.Origin), vp, loader, parse, depth+1)
}

func (ix *ruleIndex) addStyleRule(rule *css.StyleRule) {
	position := ix.position
	ix.position++
	for _, sel := range rule.Selectors {
		data := RuleData{
			Rule:        rule,
			Selector:    sel,
			Specificity: sel.Specificity(),
			Position:    position,
		}
		if sel.PseudoElement() != css.PseudoNone {
			ix.pseudo = append(ix.pseudo, data)
			continue
		}
		key, bucket := bucketFor(sel.Rightmost())
		switch bucket {
		case bucketID:
			ix.id[key] = append(ix.id[key], data)
		case bucketClass:
			ix.class[key] = append(ix.class[key], data)
		case bucketAttribute:
			ix.attribute[key] = append(ix.attribute[key], data)
		case bucketTag:
			ix.tag[key] = append(ix.tag[key], data)
		default:
			ix.universal = append(ix.universal, data)
		}
	}
}

func (ix *ruleIndex) addPageRule(rule *css.PageRule) {
	position := ix.position
	ix.position++
	for _, sel := range rule.Selectors {
		ix.pages = append(ix.pages, PageRuleData{
			Rule:        rule,
			Selector:    sel,
			Specificity: sel.Specificity(),
			Position:    position,
		})
	}
}

type bucketKind uint8

const (
	bucketID bucketKind = iota
	bucketClass
	bucketAttribute
	bucketTag
	bucketUniversal
)

// bucketFor picks the most selective bucket available in the rightmost
// compound.
func bucketFor(compound css.CompoundSelector) (string, bucketKind) {
	for i := range compound {
		if compound[i].Match == css.MatchID {
			return compound[i].Value, bucketID
		}
	}
	for i := range compound {
		if compound[i].Match == css.MatchClass {
			return compound[i].Value, bucketClass
		}
	}
	for i := range compound {
		switch compound[i].Match {
		case css.MatchAttributeHas, css.MatchAttributeEquals, css.MatchAttributeIncludes,
			css.MatchAttributeDashEquals, css.MatchAttributeStartsWith,
			css.MatchAttributeEndsWith, css.MatchAttributeContains:
			return compound[i].Name, bucketAttribute
		}
	}
	for i := range compound {
		if compound[i].Match == css.MatchTag {
			return compound[i].Name, bucketTag
		}
	}
	return "", bucketUniversal
}
