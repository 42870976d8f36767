package css

// Media query parsing and evaluation against a fixed viewport.

// MediaRestrictor is the optional not/only prefix of a query.
type MediaRestrictor uint8

const (
	MediaRestrictorNone MediaRestrictor = iota
	MediaRestrictorNot
	MediaRestrictorOnly
)

// MediaType is the query's media type.
type MediaType uint8

const (
	MediaTypeNone MediaType = iota
	MediaTypeAll
	MediaTypePrint
	MediaTypeScreen
)

// MediaFeatureID names a supported feature.
type MediaFeatureID uint8

const (
	MediaFeatureWidth MediaFeatureID = iota
	MediaFeatureMinWidth
	MediaFeatureMaxWidth
	MediaFeatureHeight
	MediaFeatureMinHeight
	MediaFeatureMaxHeight
	MediaFeatureOrientation
)

var mediaFeatureNames = map[string]MediaFeatureID{
	"width":       MediaFeatureWidth,
	"min-width":   MediaFeatureMinWidth,
	"max-width":   MediaFeatureMaxWidth,
	"height":      MediaFeatureHeight,
	"min-height":  MediaFeatureMinHeight,
	"max-height":  MediaFeatureMaxHeight,
	"orientation": MediaFeatureOrientation,
}

// MediaFeature is one parenthesized feature test.
type MediaFeature struct {
	ID    MediaFeatureID
	Value *Value // length for the dimension features, ident for orientation
}

// MediaQuery is a restrictor, a type and an and-joined feature list.
type MediaQuery struct {
	Restrictor MediaRestrictor
	Type       MediaType
	Features   []MediaFeature
}

// MediaQueryList is a comma-separated list; it matches when any query
// matches, and an empty list matches unconditionally.
type MediaQueryList []MediaQuery

// Viewport is the evaluation context for media queries. Width and
// Height are in pixels; Media is the host medium.
type Viewport struct {
	Width  float64
	Height float64
	Media  MediaType
}

// parseMediaQueryList parses the whole stream as a media query list.
// A malformed query poisons only itself: it is replaced by a never-
// matching "not all" entry.
func parseMediaQueryList(s *TokenStream) MediaQueryList {
	var list MediaQueryList
	s.ConsumeWhitespace()
	if s.Empty() {
		return nil
	}
	for {
		q, ok := parseMediaQuery(s)
		if !ok {
			// Skip to the next comma.
			for !s.Empty() && s.Peek().Kind != TokenComma {
				s.ConsumeComponent()
			}
			q = MediaQuery{Restrictor: MediaRestrictorNot, Type: MediaTypeAll}
		}
		list = append(list, q)
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return list
}

func parseMediaQuery(s *TokenStream) (MediaQuery, bool) {
	q := MediaQuery{Type: MediaTypeNone}
	s.ConsumeWhitespace()

	if t := s.Peek(); t.Kind == TokenIdent {
		switch lowerASCII(t.Data) {
		case "not":
			q.Restrictor = MediaRestrictorNot
			s.ConsumeIncludingWhitespace()
		case "only":
			q.Restrictor = MediaRestrictorOnly
			s.ConsumeIncludingWhitespace()
		}
	}

	sawType := false
	if t := s.Peek(); t.Kind == TokenIdent {
		switch lowerASCII(t.Data) {
		case "all":
			q.Type = MediaTypeAll
		case "print":
			q.Type = MediaTypePrint
		case "screen":
			q.Type = MediaTypeScreen
		default:
			return q, false
		}
		s.ConsumeIncludingWhitespace()
		sawType = true
	} else if q.Restrictor != MediaRestrictorNone {
		// not/only require a media type.
		return q, false
	}

	for {
		s.ConsumeWhitespace()
		if s.Empty() || s.Peek().Kind == TokenComma {
			return q, true
		}
		if sawType || len(q.Features) > 0 {
			and := s.Peek()
			if !and.MatchesIdent("and") {
				return q, false
			}
			s.ConsumeIncludingWhitespace()
		}
		f, ok := parseMediaFeature(s)
		if !ok {
			return q, false
		}
		q.Features = append(q.Features, f)
		sawType = true
	}
}

func parseMediaFeature(s *TokenStream) (MediaFeature, bool) {
	if s.Peek().Kind != TokenLeftParen {
		return MediaFeature{}, false
	}
	block := s.ConsumeBlock()
	block.ConsumeWhitespace()
	name := block.Peek()
	if name.Kind != TokenIdent {
		return MediaFeature{}, false
	}
	id, ok := mediaFeatureNames[lowerASCII(name.Data)]
	if !ok {
		return MediaFeature{}, false
	}
	block.ConsumeIncludingWhitespace()
	f := MediaFeature{ID: id}
	if block.Peek().Kind == TokenColon {
		block.ConsumeIncludingWhitespace()
		if id == MediaFeatureOrientation {
			v := consumeIdentAmong(block, "portrait", "landscape")
			if v == nil {
				return MediaFeature{}, false
			}
			f.Value = v
		} else {
			vp := &valueParser{}
			v := vp.consumeLength(block, false)
			if v == nil {
				return MediaFeature{}, false
			}
			f.Value = v
		}
	}
	if !block.EmptyAfterWhitespace() {
		return MediaFeature{}, false
	}
	return f, true
}

// absoluteLengthPx converts a non-font-relative length to pixels for
// media evaluation; font-relative units use the 16px default.
func absoluteLengthPx(v *Value) float64 {
	const dpi = 96.0
	switch v.Unit {
	case UnitNone, UnitPx:
		return v.Number
	case UnitIn:
		return v.Number * dpi
	case UnitCm:
		return v.Number * dpi / 2.54
	case UnitMm:
		return v.Number * dpi / 25.4
	case UnitPt:
		return v.Number * dpi / 72
	case UnitPc:
		return v.Number * dpi / 6
	case UnitEm, UnitRem:
		return v.Number * 16
	case UnitEx, UnitCh:
		return v.Number * 8
	}
	return v.Number
}

// Matches evaluates a single query against the viewport.
func (q MediaQuery) Matches(vp Viewport) bool {
	switch q.Type {
	case MediaTypePrint:
		if vp.Media != MediaTypePrint {
			return q.Restrictor == MediaRestrictorNot
		}
	case MediaTypeScreen:
		if vp.Media != MediaTypeScreen {
			return q.Restrictor == MediaRestrictorNot
		}
	}
	matched := true
	for _, f := range q.Features {
		if !f.matches(vp) {
			matched = false
			break
		}
	}
	return matched != (q.Restrictor == MediaRestrictorNot)
}

func (f MediaFeature) matches(vp Viewport) bool {
	switch f.ID {
	case MediaFeatureOrientation:
		if f.Value == nil {
			return true
		}
		if f.Value.IsIdent("portrait") {
			return vp.Height >= vp.Width
		}
		return vp.Width > vp.Height
	}
	if f.Value == nil {
		return vp.Width > 0 || vp.Height > 0
	}
	want := absoluteLengthPx(f.Value)
	switch f.ID {
	case MediaFeatureWidth:
		return vp.Width == want
	case MediaFeatureMinWidth:
		return vp.Width >= want
	case MediaFeatureMaxWidth:
		return vp.Width <= want
	case MediaFeatureHeight:
		return vp.Height == want
	case MediaFeatureMinHeight:
		return vp.Height >= want
	case MediaFeatureMaxHeight:
		return vp.Height <= want
	}
	return false
}

// Matches reports whether any query in the list matches; an empty list
// always does.
func (list MediaQueryList) Matches(vp Viewport) bool {
	if len(list) == 0 {
		return true
	}
	for _, q := range list {
		if q.Matches(vp) {
			return true
		}
	}
	return false
}

// ParseMediaQueryList parses standalone media query text, for media
// attributes on style/link elements.
func ParseMediaQueryList(text string) MediaQueryList {
	return parseMediaQueryList(NewTokenStream(Tokenize([]byte(text))))
}
