package css

import "sync"

// ValueKind discriminates the value sum type.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueInitial
	ValueInherit
	ValueUnset
	ValueIdent
	ValueInteger
	ValueNumber
	ValuePercent
	ValueLength
	ValueAngle
	ValueString
	ValueCustomIdent
	ValueURL
	ValueLocalURL
	ValueImage
	ValueColor
	ValuePair
	ValueList
	ValueRect
	ValueFunction
	ValueUnaryFunction
	ValueFontFeature
	ValueFontVariation
	ValueUnicodeRange
	ValueCalc
	ValueVariableReference
	ValueCustomProperty
)

// Unit is a dimension unit for lengths and angles. UnitNone marks a
// bare number used where the grammar permits one.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitPx
	UnitPt
	UnitPc
	UnitCm
	UnitMm
	UnitIn
	UnitEm
	UnitEx
	UnitCh
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitDeg
	UnitRad
	UnitGrad
	UnitTurn
)

var lengthUnits = map[string]Unit{
	"px": UnitPx, "pt": UnitPt, "pc": UnitPc, "cm": UnitCm, "mm": UnitMm,
	"in": UnitIn, "em": UnitEm, "ex": UnitEx, "ch": UnitCh, "rem": UnitRem,
	"vw": UnitVw, "vh": UnitVh, "vmin": UnitVmin, "vmax": UnitVmax,
}

var angleUnits = map[string]Unit{
	"deg": UnitDeg, "rad": UnitRad, "grad": UnitGrad, "turn": UnitTurn,
}

// RGBA is a resolved color, non-premultiplied.
type RGBA struct {
	R, G, B, A uint8
}

// CalcOpKind tags entries of a calc postfix sequence.
type CalcOpKind uint8

const (
	CalcOperand CalcOpKind = iota
	CalcAdd
	CalcSub
	CalcMul
	CalcDiv
	CalcMin
	CalcMax
)

// CalcOp is one postfix entry: an operand with its unit, or an operator
// consuming exactly two operands.
type CalcOp struct {
	Kind  CalcOpKind
	Value float64
	Unit  Unit
}

// Calc is a parsed calc()/min()/max()/clamp() expression in postfix
// form, plus the range and unit flags captured from the invocation
// context.
type Calc struct {
	Negative bool
	Unitless bool
	Ops      []CalcOp
}

// VariableReference is a declaration whose raw tokens contain var();
// parsing is deferred until the custom property environment is known.
type VariableReference struct {
	Property  PropertyID
	Important bool
	Tokens    []Token
}

// Value is an immutable, shared CSS value. Values must not be mutated
// after construction; common keywords are interned singletons.
type Value struct {
	Kind   ValueKind
	Ident  string // lower-case keyword for ValueIdent
	Text   string // string body, custom-ident, url, function name, feature tag
	Number float64
	Int    int
	Unit   Unit

	First  *Value
	Second *Value
	Items  []*Value

	RangeFrom uint32
	RangeTo   uint32

	Calc   *Calc
	VarRef *VariableReference
	Tokens []Token // custom property raw tokens
}

var (
	initialValue = &Value{Kind: ValueInitial}
	inheritValue = &Value{Kind: ValueInherit}
	unsetValue   = &Value{Kind: ValueUnset}

	identMu     sync.Mutex
	identValues = map[string]*Value{}
)

// Initial returns the shared initial keyword value.
func Initial() *Value { return initialValue }

// Inherit returns the shared inherit keyword value.
func Inherit() *Value { return inheritValue }

// Unset returns the shared unset keyword value.
func Unset() *Value { return unsetValue }

// Ident returns the shared value for a keyword identifier. The name is
// folded to lower case; identical keywords share one allocation across
// the process.
func Ident(name string) *Value {
	name = lowerASCII(name)
	identMu.Lock()
	defer identMu.Unlock()
	if v, ok := identValues[name]; ok {
		return v
	}
	v := &Value{Kind: ValueIdent, Ident: name}
	identValues[name] = v
	return v
}

// Integer builds an integer value.
func Integer(i int) *Value {
	return &Value{Kind: ValueInteger, Int: i, Number: float64(i)}
}

// Number builds a numeric value.
func Number(f float64) *Value {
	return &Value{Kind: ValueNumber, Number: f}
}

// Percent builds a percentage value.
func Percent(f float64) *Value {
	return &Value{Kind: ValuePercent, Number: f}
}

// Length builds a length with the given unit.
func Length(f float64, unit Unit) *Value {
	return &Value{Kind: ValueLength, Number: f, Unit: unit}
}

// Angle builds an angle with the given unit.
func Angle(f float64, unit Unit) *Value {
	return &Value{Kind: ValueAngle, Number: f, Unit: unit}
}

// String builds a quoted-string value.
func String(s string) *Value {
	return &Value{Kind: ValueString, Text: s}
}

// CustomIdent builds an author-defined identifier value, preserving
// case.
func CustomIdent(s string) *Value {
	return &Value{Kind: ValueCustomIdent, Text: s}
}

// URL builds an external resource reference.
func URL(u string) *Value {
	return &Value{Kind: ValueURL, Text: u}
}

// LocalURL builds a same-document reference (local()).
func LocalURL(u string) *Value {
	return &Value{Kind: ValueLocalURL, Text: u}
}

// Image builds an image reference; decoding is the renderer's concern.
func Image(u string) *Value {
	return &Value{Kind: ValueImage, Text: u}
}

// Color builds a resolved color value.
func Color(c RGBA) *Value {
	return &Value{Kind: ValueColor, Int: int(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))}
}

// ColorOf unpacks a color value.
func (v *Value) ColorOf() RGBA {
	u := uint32(v.Int)
	return RGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}
}

// Pair builds a two-value composite.
func Pair(first, second *Value) *Value {
	return &Value{Kind: ValuePair, First: first, Second: second}
}

// List builds an ordered value list.
func List(items []*Value) *Value {
	return &Value{Kind: ValueList, Items: items}
}

// Rect builds a four-side composite in top, right, bottom, left order.
func Rect(top, right, bottom, left *Value) *Value {
	return &Value{Kind: ValueRect, Items: []*Value{top, right, bottom, left}}
}

// Function builds a generic function value.
func Function(name string, args []*Value) *Value {
	return &Value{Kind: ValueFunction, Text: name, Items: args}
}

// UnaryFunction builds a single-argument function value.
func UnaryFunction(name string, arg *Value) *Value {
	return &Value{Kind: ValueUnaryFunction, Text: name, First: arg}
}

// FontFeature builds an OpenType feature tag setting.
func FontFeature(tag string, value int) *Value {
	return &Value{Kind: ValueFontFeature, Text: tag, Int: value}
}

// FontVariation builds a variable-font axis setting.
func FontVariation(tag string, value float64) *Value {
	return &Value{Kind: ValueFontVariation, Text: tag, Number: value}
}

// UnicodeRange builds a code point range value.
func UnicodeRange(from, to uint32) *Value {
	return &Value{Kind: ValueUnicodeRange, RangeFrom: from, RangeTo: to}
}

// IsIdent reports whether v is the given keyword.
func (v *Value) IsIdent(name string) bool {
	return v != nil && v.Kind == ValueIdent && v.Ident == name
}

// IsZero reports whether v is a zero number, length or percentage.
func (v *Value) IsZero() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case ValueInteger, ValueNumber, ValuePercent, ValueLength:
		return v.Number == 0
	}
	return false
}
