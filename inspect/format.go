// Package inspect implements the command line actions: parsing
// documents and stylesheets and dumping tokens, rules, computed styles
// and counter text.
package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"pcss/css"
)

var unitNames = map[css.Unit]string{
	css.UnitPx: "px", css.UnitPt: "pt", css.UnitPc: "pc", css.UnitCm: "cm",
	css.UnitMm: "mm", css.UnitIn: "in", css.UnitEm: "em", css.UnitEx: "ex",
	css.UnitCh: "ch", css.UnitRem: "rem", css.UnitVw: "vw", css.UnitVh: "vh",
	css.UnitVmin: "vmin", css.UnitVmax: "vmax", css.UnitDeg: "deg",
	css.UnitRad: "rad", css.UnitGrad: "grad", css.UnitTurn: "turn",
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatValue renders a parsed value for debug output.
func FormatValue(v *css.Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case css.ValueInitial:
		return "initial"
	case css.ValueInherit:
		return "inherit"
	case css.ValueUnset:
		return "unset"
	case css.ValueIdent:
		return v.Ident
	case css.ValueInteger:
		return strconv.Itoa(v.Int)
	case css.ValueNumber:
		return formatFloat(v.Number)
	case css.ValuePercent:
		return formatFloat(v.Number) + "%"
	case css.ValueLength, css.ValueAngle:
		return formatFloat(v.Number) + unitNames[v.Unit]
	case css.ValueString:
		return strconv.Quote(v.Text)
	case css.ValueCustomIdent:
		return v.Text
	case css.ValueURL:
		return fmt.Sprintf("url(%q)", v.Text)
	case css.ValueLocalURL:
		return fmt.Sprintf("local(%q)", v.Text)
	case css.ValueImage:
		return fmt.Sprintf("image(%q)", v.Text)
	case css.ValueColor:
		c := v.ColorOf()
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
	case css.ValuePair:
		return FormatValue(v.First) + " " + FormatValue(v.Second)
	case css.ValueList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, " ")
	case css.ValueRect:
		parts := make([]string, 0, 4)
		for _, item := range v.Items {
			parts = append(parts, FormatValue(item))
		}
		return "rect(" + strings.Join(parts, " ") + ")"
	case css.ValueFunction:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, FormatValue(item))
		}
		return v.Text + "(" + strings.Join(parts, ", ") + ")"
	case css.ValueUnaryFunction:
		return v.Text + "(" + FormatValue(v.First) + ")"
	case css.ValueFontFeature:
		return fmt.Sprintf("%q %d", v.Text, v.Int)
	case css.ValueFontVariation:
		return fmt.Sprintf("%q %s", v.Text, formatFloat(v.Number))
	case css.ValueUnicodeRange:
		return fmt.Sprintf("u+%x-%x", v.RangeFrom, v.RangeTo)
	case css.ValueCalc:
		return "calc(...)"
	case css.ValueVariableReference:
		return "var(...)"
	case css.ValueCustomProperty:
		return "custom(" + v.Text + ")"
	}
	return "<unknown>"
}
