// Package counters implements the counter style machine: the symbolic,
// numeric, alphabetic, additive, cyclic and fixed systems, extends
// chains with cycle breaking, and transitive fallback.
package counters

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"pcss/css"
)

// Style is one resolved counter style.
type Style struct {
	name string

	system  string // cyclic, symbolic, alphabetic, numeric, additive, fixed, extends
	fixed   int    // first symbol value for the fixed system
	extends string

	symbols  []string
	additive []additivePair

	negative    *negativePair
	prefix      *string
	suffix      *string
	ranges      [][2]int
	pad         *padSpec
	fallbackRef string

	fallback *Style
}

type additivePair struct {
	weight int
	symbol string
}

type negativePair struct {
	prefix string
	suffix string
}

type padSpec struct {
	length int
	symbol string
}

// Name returns the style's @counter-style name.
func (st *Style) Name() string { return st.name }

// System returns the effective counter system.
func (st *Style) System() string {
	if st.system == "" {
		return "symbolic"
	}
	return st.system
}

// Prefix returns the symbol prepended by marker text.
func (st *Style) Prefix() string {
	if st.prefix != nil {
		return *st.prefix
	}
	return ""
}

// Suffix returns the symbol appended by marker text.
func (st *Style) Suffix() string {
	if st.suffix != nil {
		return *st.suffix
	}
	return ". "
}

func (st *Style) fallbackName() string {
	if st.fallbackRef != "" {
		return st.fallbackRef
	}
	return "decimal"
}

func symbolText(v *css.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case css.ValueString, css.ValueCustomIdent:
		return v.Text
	}
	return ""
}

// newStyle builds a style from an @counter-style rule's descriptors.
func newStyle(rule *css.CounterStyleRule) *Style {
	st := &Style{name: rule.Name}
	for _, prop := range rule.Properties {
		v := prop.Value
		switch prop.ID {
		case css.PropSystem:
			if v.Kind == css.ValueIdent {
				st.system = v.Ident
			} else if v.Kind == css.ValuePair {
				st.system = v.First.Ident
				if st.system == "fixed" {
					st.fixed = v.Second.Int
				} else {
					st.extends = v.Second.Text
				}
			}
		case css.PropSymbols:
			st.symbols = nil
			for _, item := range v.Items {
				st.symbols = append(st.symbols, symbolText(item))
			}
		case css.PropAdditiveSymbols:
			st.additive = nil
			for _, item := range v.Items {
				st.additive = append(st.additive, additivePair{
					weight: item.First.Int,
					symbol: symbolText(item.Second),
				})
			}
		case css.PropNegative:
			if v.Kind == css.ValuePair {
				st.negative = &negativePair{prefix: symbolText(v.First), suffix: symbolText(v.Second)}
			} else {
				st.negative = &negativePair{prefix: symbolText(v)}
			}
		case css.PropPrefix:
			s := symbolText(v)
			st.prefix = &s
		case css.PropSuffix:
			s := symbolText(v)
			st.suffix = &s
		case css.PropRange:
			if v.IsIdent("auto") {
				st.ranges = nil
				continue
			}
			st.ranges = nil
			for _, bounds := range v.Items {
				lo, hi := math.MinInt, math.MaxInt
				if bounds.First.Kind == css.ValueInteger {
					lo = bounds.First.Int
				}
				if bounds.Second.Kind == css.ValueInteger {
					hi = bounds.Second.Int
				}
				st.ranges = append(st.ranges, [2]int{lo, hi})
			}
		case css.PropPad:
			st.pad = &padSpec{length: v.First.Int, symbol: symbolText(v.Second)}
		case css.PropFallback:
			st.fallbackRef = v.Text
		}
	}
	if st.system == "" {
		st.system = "symbolic"
	}
	return st
}

// extend copies the algorithm of the target into the extender: the
// system group always, the remaining descriptors only when unset.
func (st *Style) extend(target *Style) {
	st.system = target.system
	st.fixed = target.fixed
	st.symbols = target.symbols
	st.additive = target.additive
	if st.negative == nil {
		st.negative = target.negative
	}
	if st.prefix == nil {
		st.prefix = target.prefix
	}
	if st.suffix == nil {
		st.suffix = target.suffix
	}
	if st.ranges == nil {
		st.ranges = target.ranges
	}
	if st.pad == nil {
		st.pad = target.pad
	}
	if st.fallbackRef == "" {
		st.fallbackRef = target.fallbackRef
	}
}

func (st *Style) rangeContains(value int) bool {
	if st.ranges == nil {
		switch st.system {
		case "cyclic", "numeric", "fixed":
			return true
		case "symbolic", "alphabetic":
			return value >= 1
		case "additive":
			return value >= 0
		}
		return false
	}
	for _, r := range st.ranges {
		if value >= r[0] && value <= r[1] {
			return true
		}
	}
	return false
}

func (st *Style) needsNegativeSign(value int) bool {
	if value >= 0 {
		return false
	}
	switch st.system {
	case "symbolic", "alphabetic", "numeric", "additive":
		return true
	}
	return false
}

// initialRepresentation runs the system algorithm on the magnitude,
// returning "" when the system cannot represent it.
func (st *Style) initialRepresentation(value int) string {
	if st.system == "additive" {
		return st.additiveRepresentation(value)
	}
	n := len(st.symbols)
	if n == 0 {
		return ""
	}
	var indexes []int
	switch st.system {
	case "cyclic":
		idx := ((value-1)%n + n) % n
		indexes = append(indexes, idx)
	case "fixed":
		if value < st.fixed || value-st.fixed >= n {
			return ""
		}
		indexes = append(indexes, value-st.fixed)
	case "numeric":
		if n == 1 {
			return ""
		}
		if value == 0 {
			indexes = append(indexes, 0)
		} else {
			for v := value; v > 0; v /= n {
				indexes = append(indexes, v%n)
			}
			reverse(indexes)
		}
	case "symbolic":
		if value == 0 {
			return ""
		}
		idx := (value - 1) % n
		repetitions := (value + n - 1) / n
		for i := 0; i < repetitions; i++ {
			indexes = append(indexes, idx)
		}
	case "alphabetic":
		if value == 0 || n == 1 {
			return ""
		}
		for v := value; v > 0; {
			v--
			indexes = append(indexes, v%n)
			v /= n
		}
		reverse(indexes)
	default:
		return ""
	}
	var b strings.Builder
	for _, idx := range indexes {
		b.WriteString(st.symbols[idx])
	}
	return b.String()
}

// additiveRepresentation is greedy over the declared weight order; a
// zero value uses the zero-weight symbol when one exists.
func (st *Style) additiveRepresentation(value int) string {
	if len(st.additive) == 0 {
		return ""
	}
	var b strings.Builder
	if value == 0 {
		for _, pair := range st.additive {
			if pair.weight == 0 {
				return pair.symbol
			}
		}
		return ""
	}
	for _, pair := range st.additive {
		if pair.weight == 0 {
			continue
		}
		repetitions := value / pair.weight
		for i := 0; i < repetitions; i++ {
			b.WriteString(pair.symbol)
		}
		value -= repetitions * pair.weight
		if value == 0 {
			break
		}
	}
	if value > 0 {
		return ""
	}
	return b.String()
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// fallbackRepresentation recurses into the fallback style with a
// one-shot guard: the pointer is taken out for the duration of the
// recursion so a fallback cycle terminates at the default style.
func (st *Style) fallbackRepresentation(value int, deflt *Style) string {
	if st.fallback == nil {
		return deflt.Representation(value, deflt)
	}
	fb := st.fallback
	st.fallback = nil
	out := fb.Representation(value, deflt)
	st.fallback = fb
	return out
}

// Representation produces the counter text for value, composing the
// negative sign, padding and the system output, falling back when the
// value is out of range or unrepresentable. Pad lengths count Unicode
// code points.
func (st *Style) Representation(value int, deflt *Style) string {
	if !st.rangeContains(value) {
		return st.fallbackRepresentation(value, deflt)
	}
	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	initial := st.initialRepresentation(magnitude)
	if initial == "" {
		return st.fallbackRepresentation(value, deflt)
	}

	negativePrefix := "-"
	negativeSuffix := ""
	if st.negative != nil && st.needsNegativeSign(value) {
		negativePrefix = st.negative.prefix
		negativeSuffix = st.negative.suffix
	}

	length := utf8.RuneCountInString(initial)
	if st.needsNegativeSign(value) {
		length += utf8.RuneCountInString(negativePrefix)
		length += utf8.RuneCountInString(negativeSuffix)
	}
	padRepetitions := 0
	padSymbol := ""
	if st.pad != nil {
		padSymbol = st.pad.symbol
		if st.pad.length > length {
			padRepetitions = st.pad.length - length
		}
	}

	var b strings.Builder
	if st.needsNegativeSign(value) {
		b.WriteString(negativePrefix)
	}
	for i := 0; i < padRepetitions; i++ {
		b.WriteString(padSymbol)
	}
	b.WriteString(initial)
	if st.needsNegativeSign(value) {
		b.WriteString(negativeSuffix)
	}
	return b.String()
}

// Map resolves counter style names, chaining to a parent scope. The
// user agent map is the root of every chain.
type Map struct {
	styles map[string]*Style
	parent *Map
}

// NewMap builds a scope from @counter-style rules, resolving extends
// chains and fallbacks. Extends cycles redirect every participant to
// the default decimal style.
func NewMap(rules []*css.CounterStyleRule, parent *Map, log *zap.Logger) *Map {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("counter-styles")
	m := &Map{styles: make(map[string]*Style), parent: parent}
	for _, rule := range rules {
		st := newStyle(rule)
		m.styles[st.name] = st
	}

	deflt := UserAgentMap().Find("decimal")
	for _, st := range m.styles {
		if st.system != "extends" {
			continue
		}
		// Walk the extends chain collecting members until it leaves the
		// extends system, dead-ends, or bites itself.
		visited := map[*Style]bool{}
		chain := []*Style{st}
		current := st
		for {
			visited[current] = true
			next := m.Find(current.extends)
			chain = append(chain, next)
			current = next
			if current == nil || current.system != "extends" || visited[current] {
				break
			}
		}

		if current != nil && current.system == "extends" {
			// Cycle: unwind the tail onto the default style until the
			// repeated node is at the head of what remains. The repeated
			// node itself is shared with its earlier occurrence, so the
			// whole cycle ends up on the default algorithm.
			log.Debug("Breaking counter style extends cycle", zap.String("style", st.name))
			for {
				chain[len(chain)-1].extend(deflt)
				chain = chain[:len(chain)-1]
				if chain[len(chain)-1] == current {
					break
				}
			}
		}

		for len(chain) > 1 {
			chain = chain[:len(chain)-1]
			last := chain[len(chain)-1]
			if current == nil {
				last.extend(deflt)
			} else if last != current {
				last.extend(current)
			}
			current = last
		}
	}

	for _, st := range m.styles {
		if fb := m.Find(st.fallbackName()); fb != nil {
			st.fallback = fb
		} else {
			st.fallback = deflt
		}
	}
	return m
}

// Find resolves a style name in this scope or any parent.
func (m *Map) Find(name string) *Style {
	if st, ok := m.styles[name]; ok {
		return st
	}
	if m.parent == nil {
		return nil
	}
	return m.parent.Find(name)
}

func (m *Map) defaultStyle() *Style {
	if st := m.Find("decimal"); st != nil {
		return st
	}
	return UserAgentMap().Find("decimal")
}

// CounterText renders the counter value in the named list style.
func (m *Map) CounterText(value int, listType string) string {
	if listType == "none" || listType == "" {
		return ""
	}
	st := m.Find(listType)
	if st == nil {
		st = m.defaultStyle()
	}
	return st.Representation(value, m.defaultStyle())
}

// MarkerText renders the counter value as a list marker: prefix,
// representation, suffix.
func (m *Map) MarkerText(value int, listType string) string {
	if listType == "none" || listType == "" {
		return ""
	}
	st := m.Find(listType)
	if st == nil {
		st = m.defaultStyle()
	}
	return st.Prefix() + st.Representation(value, m.defaultStyle()) + st.Suffix()
}

// userAgentSheet declares the predefined counter styles.
const userAgentSheet = `
@counter-style decimal { system: numeric; symbols: '0' '1' '2' '3' '4' '5' '6' '7' '8' '9'; }
@counter-style decimal-leading-zero { system: extends decimal; pad: 2 '0'; }
@counter-style lower-alpha { system: alphabetic; symbols: 'a' 'b' 'c' 'd' 'e' 'f' 'g' 'h' 'i' 'j' 'k' 'l' 'm' 'n' 'o' 'p' 'q' 'r' 's' 't' 'u' 'v' 'w' 'x' 'y' 'z'; }
@counter-style lower-latin { system: extends lower-alpha; }
@counter-style upper-alpha { system: alphabetic; symbols: 'A' 'B' 'C' 'D' 'E' 'F' 'G' 'H' 'I' 'J' 'K' 'L' 'M' 'N' 'O' 'P' 'Q' 'R' 'S' 'T' 'U' 'V' 'W' 'X' 'Y' 'Z'; }
@counter-style upper-latin { system: extends upper-alpha; }
@counter-style lower-roman { system: additive; range: 1 3999; additive-symbols: 1000 'm', 900 'cm', 500 'd', 400 'cd', 100 'c', 90 'xc', 50 'l', 40 'xl', 10 'x', 9 'ix', 5 'v', 4 'iv', 1 'i'; }
@counter-style upper-roman { system: additive; range: 1 3999; additive-symbols: 1000 'M', 900 'CM', 500 'D', 400 'CD', 100 'C', 90 'XC', 50 'L', 40 'XL', 10 'X', 9 'IX', 5 'V', 4 'IV', 1 'I'; }
@counter-style lower-greek { system: alphabetic; symbols: '\3b1' '\3b2' '\3b3' '\3b4' '\3b5' '\3b6' '\3b7' '\3b8' '\3b9' '\3ba' '\3bb' '\3bc' '\3bd' '\3be' '\3bf' '\3c0' '\3c1' '\3c3' '\3c4' '\3c5' '\3c6' '\3c7' '\3c8' '\3c9'; }
@counter-style disc { system: cyclic; symbols: '\2022'; suffix: ' '; }
@counter-style circle { system: cyclic; symbols: '\25e6'; suffix: ' '; }
@counter-style square { system: cyclic; symbols: '\25aa'; suffix: ' '; }
`

var (
	uaMapOnce sync.Once
	uaMap     *Map
)

// UserAgentMap returns the process-wide predefined style scope.
func UserAgentMap() *Map {
	uaMapOnce.Do(func() {
		parser := css.NewParser(css.ParserContext{Origin: css.OriginUserAgent}, nil)
		var rules []*css.CounterStyleRule
		for _, r := range parser.ParseSheet([]byte(userAgentSheet)) {
			if r.CounterStyle != nil {
				rules = append(rules, r.CounterStyle)
			}
		}
		uaMap = &Map{styles: make(map[string]*Style)}
		for _, rule := range rules {
			uaMap.styles[rule.Name] = newStyle(rule)
		}
		// The predefined sheet only extends styles that are not themselves
		// extends, resolved here directly to keep bootstrap free of the
		// general pass.
		for _, st := range uaMap.styles {
			if st.system == "extends" {
				if target := uaMap.styles[st.extends]; target != nil && target.system != "extends" {
					st.extend(target)
				}
			}
			st.fallback = uaMap.styles["decimal"]
		}
	})
	return uaMap
}
