package css

// Calc expression parsing. calc(), min(), max() and clamp() are turned
// into a postfix operand/operator sequence; evaluation happens at style
// resolution time when lengths can be converted to pixels.
//
// Operands are numbers and lengths. Sums require whitespace-separated
// + and - (a signed dimension token directly after an operand is a
// grammar violation and rejects the whole expression).

// parseCalcFunction consumes a calc-family function token and its block
// from s. Returns nil without consuming anything on malformed input.
func (vp *valueParser) parseCalcFunction(s *TokenStream, negative bool) *Value {
	fn := s.Peek()
	if fn.Kind != TokenFunction {
		return nil
	}
	name := lowerASCII(fn.Data)
	switch name {
	case "calc", "min", "max", "clamp":
	default:
		return nil
	}
	m := s.Mark()
	defer m.Restore()
	block := s.ConsumeBlock()
	c := &Calc{Negative: negative, Unitless: vp.unitless}
	if !vp.parseCalcArguments(block, name, c) {
		return nil
	}
	block.ConsumeWhitespace()
	if !block.Empty() {
		return nil
	}
	m.Release()
	return &Value{Kind: ValueCalc, Calc: c}
}

func (vp *valueParser) parseCalcArguments(s *TokenStream, name string, c *Calc) bool {
	switch name {
	case "calc":
		return vp.calcSum(s, c)
	case "min", "max":
		op := CalcMin
		if name == "max" {
			op = CalcMax
		}
		if !vp.calcSum(s, c) {
			return false
		}
		count := 0
		for s.ConsumeCommaIncludingWhitespace() {
			if !vp.calcSum(s, c) {
				return false
			}
			count++
		}
		for i := 0; i < count; i++ {
			c.Ops = append(c.Ops, CalcOp{Kind: op})
		}
		return true
	case "clamp":
		// clamp(a, b, c) lowers to: a b min, c max.
		if !vp.calcSum(s, c) || !s.ConsumeCommaIncludingWhitespace() {
			return false
		}
		if !vp.calcSum(s, c) {
			return false
		}
		c.Ops = append(c.Ops, CalcOp{Kind: CalcMin})
		if !s.ConsumeCommaIncludingWhitespace() {
			return false
		}
		if !vp.calcSum(s, c) {
			return false
		}
		c.Ops = append(c.Ops, CalcOp{Kind: CalcMax})
		return true
	}
	return false
}

// calcSum parses term (('+'|'-') term)* appending postfix entries.
func (vp *valueParser) calcSum(s *TokenStream, c *Calc) bool {
	if !vp.calcProduct(s, c) {
		return false
	}
	for {
		s.ConsumeWhitespace()
		t := s.Peek()
		var op CalcOpKind
		switch {
		case t.MatchesDelim('+'):
			op = CalcAdd
		case t.MatchesDelim('-'):
			op = CalcSub
		default:
			return true
		}
		s.ConsumeIncludingWhitespace()
		if !vp.calcProduct(s, c) {
			return false
		}
		c.Ops = append(c.Ops, CalcOp{Kind: op})
	}
}

// calcProduct parses value (('*'|'/') value)*.
func (vp *valueParser) calcProduct(s *TokenStream, c *Calc) bool {
	if !vp.calcValue(s, c) {
		return false
	}
	for {
		s.ConsumeWhitespace()
		t := s.Peek()
		var op CalcOpKind
		switch {
		case t.MatchesDelim('*'):
			op = CalcMul
		case t.MatchesDelim('/'):
			op = CalcDiv
		default:
			return true
		}
		s.ConsumeIncludingWhitespace()
		if !vp.calcValue(s, c) {
			return false
		}
		c.Ops = append(c.Ops, CalcOp{Kind: op})
	}
}

func (vp *valueParser) calcValue(s *TokenStream, c *Calc) bool {
	s.ConsumeWhitespace()
	t := s.Peek()
	switch t.Kind {
	case TokenNumber:
		c.Ops = append(c.Ops, CalcOp{Kind: CalcOperand, Value: t.Value, Unit: UnitNone})
		s.Consume()
		return true
	case TokenDimension:
		unit, ok := lengthUnits[t.Unit]
		if !ok {
			return false
		}
		c.Ops = append(c.Ops, CalcOp{Kind: CalcOperand, Value: t.Value, Unit: unit})
		s.Consume()
		return true
	case TokenLeftParen:
		block := s.ConsumeBlock()
		if !vp.calcSum(block, c) {
			return false
		}
		block.ConsumeWhitespace()
		return block.Empty()
	case TokenFunction:
		name := lowerASCII(t.Data)
		switch name {
		case "calc":
			block := s.ConsumeBlock()
			if !vp.calcSum(block, c) {
				return false
			}
			block.ConsumeWhitespace()
			return block.Empty()
		case "min", "max", "clamp":
			block := s.ConsumeBlock()
			if !vp.parseCalcArguments(block, name, c) {
				return false
			}
			block.ConsumeWhitespace()
			return block.Empty()
		}
	}
	return false
}
