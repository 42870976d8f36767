package css

import "testing"

func parseCalcValue(t *testing.T, text string) *Calc {
	t.Helper()
	vp := &valueParser{}
	s := stream(text)
	v := vp.parseCalcFunction(s, true)
	if v == nil {
		t.Fatalf("%q: expected calc to parse", text)
	}
	if v.Kind != ValueCalc {
		t.Fatalf("%q: expected calc value", text)
	}
	return v.Calc
}

func opKinds(c *Calc) []CalcOpKind {
	out := make([]CalcOpKind, 0, len(c.Ops))
	for _, op := range c.Ops {
		out = append(out, op.Kind)
	}
	return out
}

func TestCalcPostfixShape(t *testing.T) {
	tests := []struct {
		input string
		want  []CalcOpKind
	}{
		{"calc(1px + 2px)", []CalcOpKind{CalcOperand, CalcOperand, CalcAdd}},
		{"calc(1px + 2 * 3px)", []CalcOpKind{CalcOperand, CalcOperand, CalcOperand, CalcMul, CalcAdd}},
		{"calc((1px + 2px) * 3)", []CalcOpKind{CalcOperand, CalcOperand, CalcAdd, CalcOperand, CalcMul}},
		{"min(1px, 2px, 3px)", []CalcOpKind{CalcOperand, CalcOperand, CalcOperand, CalcMin, CalcMin}},
		{"max(1px, 2px)", []CalcOpKind{CalcOperand, CalcOperand, CalcMax}},
		{"clamp(1px, 2px, 3px)", []CalcOpKind{CalcOperand, CalcOperand, CalcMin, CalcOperand, CalcMax}},
		{"calc(calc(1px) / 4)", []CalcOpKind{CalcOperand, CalcOperand, CalcDiv}},
	}
	for _, tc := range tests {
		c := parseCalcValue(t, tc.input)
		got := opKinds(c)
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.input, tc.want, got)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: op %d: expected %v, got %v", tc.input, i, tc.want[i], got[i])
			}
		}
	}
}

// Every operator consumes exactly two operands, so a well-formed
// postfix sequence always leaves exactly one stack entry.
func TestCalcPostfixBalance(t *testing.T) {
	inputs := []string{
		"calc(1px + 2px - 3px)",
		"calc(2 * 3px / 4)",
		"min(1px, 2px, 3px, 4px)",
		"clamp(10px, 5vw, 20px)",
	}
	for _, input := range inputs {
		c := parseCalcValue(t, input)
		depth := 0
		for _, op := range c.Ops {
			if op.Kind == CalcOperand {
				depth++
			} else {
				if depth < 2 {
					t.Fatalf("%s: operator with %d operands", input, depth)
				}
				depth--
			}
		}
		if depth != 1 {
			t.Errorf("%s: final stack depth %d", input, depth)
		}
	}
}

func TestCalcMalformedRejected(t *testing.T) {
	vp := &valueParser{}
	for _, bad := range []string{
		"calc()",
		"calc(1px +)",
		"calc(1px 2px)",
		"calc(1px & 2px)",
		"calc(1deg)",
		"clamp(1px, 2px)",
	} {
		s := stream(bad)
		if v := vp.parseCalcFunction(s, true); v != nil {
			t.Errorf("%q: expected rejection", bad)
		}
	}
}

func TestCalcRejectionRestoresStream(t *testing.T) {
	vp := &valueParser{}
	s := stream("calc(1px +) tail")
	if v := vp.parseCalcFunction(s, true); v != nil {
		t.Fatal("expected rejection")
	}
	if !s.Peek().MatchesFunction("calc") {
		t.Errorf("stream must rewind to the function token, got %s", s.Peek().Kind)
	}
}
