package style

import "pcss/css"

const (
	dpi            = 96.0
	mediumFontSize = 16.0
)

// LengthResolver converts lengths to pixels for one element context:
// its font, the document root font size and the viewport.
type LengthResolver struct {
	Font         *FontDescription
	RootFontSize float64
	Viewport     css.Viewport
}

func (r LengthResolver) emSize() float64 {
	if r.Font == nil {
		return mediumFontSize
	}
	return r.Font.Size
}

// exSize approximates the x-height as half the font size; font metrics
// are not available at this layer.
func (r LengthResolver) exSize() float64 {
	return r.emSize() / 2
}

func (r LengthResolver) chSize() float64 {
	return r.emSize() / 2
}

func (r LengthResolver) remSize() float64 {
	if r.RootFontSize > 0 {
		return r.RootFontSize
	}
	return mediumFontSize
}

// Pixels converts a value in the given unit to pixels at 96 dpi.
func (r LengthResolver) Pixels(value float64, unit css.Unit) float64 {
	switch unit {
	case css.UnitNone, css.UnitPx:
		return value
	case css.UnitIn:
		return value * dpi
	case css.UnitCm:
		return value * dpi / 2.54
	case css.UnitMm:
		return value * dpi / 25.4
	case css.UnitPt:
		return value * dpi / 72
	case css.UnitPc:
		return value * dpi / 6
	case css.UnitEm:
		return value * r.emSize()
	case css.UnitEx:
		return value * r.exSize()
	case css.UnitCh:
		return value * r.chSize()
	case css.UnitRem:
		return value * r.remSize()
	case css.UnitVw:
		return value * r.Viewport.Width / 100
	case css.UnitVh:
		return value * r.Viewport.Height / 100
	case css.UnitVmin:
		return value * min(r.Viewport.Width, r.Viewport.Height) / 100
	case css.UnitVmax:
		return value * max(r.Viewport.Width, r.Viewport.Height) / 100
	}
	return 0
}

// ResolveLength returns the pixel value of a length or calc value.
func (r LengthResolver) ResolveLength(v *css.Value) float64 {
	switch v.Kind {
	case css.ValueLength:
		return r.Pixels(v.Number, v.Unit)
	case css.ValueCalc:
		return r.EvaluateCalc(v.Calc)
	}
	return 0
}

// ResolveValue replaces a length or calc value with its resolved pixel
// length; other values pass through.
func (r LengthResolver) ResolveValue(v *css.Value) *css.Value {
	switch v.Kind {
	case css.ValueLength:
		if v.Unit == css.UnitPx {
			return v
		}
		return css.Length(r.Pixels(v.Number, v.Unit), css.UnitPx)
	case css.ValueCalc:
		return css.Length(r.EvaluateCalc(v.Calc), css.UnitPx)
	}
	return v
}

type calcKind uint8

const (
	calcNone calcKind = iota
	calcPixels
)

type calcOperand struct {
	value float64
	kind  calcKind
}

// EvaluateCalc walks the postfix sequence with a small operand stack.
// Unit violations collapse the whole expression to zero; a non-unitless
// context requires a pixel result, and non-negative contexts clamp at
// zero.
func (r LengthResolver) EvaluateCalc(c *css.Calc) float64 {
	var stack []calcOperand
	pop2 := func() (calcOperand, calcOperand, bool) {
		if len(stack) < 2 {
			return calcOperand{}, calcOperand{}, false
		}
		rhs := stack[len(stack)-1]
		lhs := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return lhs, rhs, true
	}
	for _, op := range c.Ops {
		switch op.Kind {
		case css.CalcOperand:
			if op.Unit == css.UnitNone {
				stack = append(stack, calcOperand{value: op.Value, kind: calcNone})
			} else {
				stack = append(stack, calcOperand{value: r.Pixels(op.Value, op.Unit), kind: calcPixels})
			}
		case css.CalcAdd, css.CalcSub:
			lhs, rhs, ok := pop2()
			if !ok || lhs.kind != rhs.kind {
				return 0
			}
			if op.Kind == css.CalcAdd {
				stack = append(stack, calcOperand{value: lhs.value + rhs.value, kind: lhs.kind})
			} else {
				stack = append(stack, calcOperand{value: lhs.value - rhs.value, kind: lhs.kind})
			}
		case css.CalcMul:
			lhs, rhs, ok := pop2()
			if !ok || (lhs.kind != calcNone && rhs.kind != calcNone) {
				return 0
			}
			kind := lhs.kind
			if kind == calcNone {
				kind = rhs.kind
			}
			stack = append(stack, calcOperand{value: lhs.value * rhs.value, kind: kind})
		case css.CalcDiv:
			lhs, rhs, ok := pop2()
			if !ok || rhs.kind != calcNone || rhs.value == 0 {
				return 0
			}
			stack = append(stack, calcOperand{value: lhs.value / rhs.value, kind: lhs.kind})
		case css.CalcMin, css.CalcMax:
			lhs, rhs, ok := pop2()
			if !ok || lhs.kind != rhs.kind {
				return 0
			}
			v := min(lhs.value, rhs.value)
			if op.Kind == css.CalcMax {
				v = max(lhs.value, rhs.value)
			}
			stack = append(stack, calcOperand{value: v, kind: lhs.kind})
		}
	}
	if len(stack) != 1 {
		return 0
	}
	result := stack[0]
	if !c.Unitless && result.kind != calcPixels {
		return 0
	}
	if !c.Negative && result.value < 0 {
		return 0
	}
	return result.value
}
