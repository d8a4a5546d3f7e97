package iapx86

// aluKind names the eight ALU operations selectable by a group-1 reg
// field: ADD, OR, ADC, SBB, AND, SUB, XOR, CMP, in their ModR/M reg-field
// encoding order. The primary opcode blocks 0x00-0x3D are six addressing
// variants of exactly these same eight operations, so both the primary
// block and group-1 route through the same aluApply table rather than each
// opcode carrying its own copy of the arithmetic.
type aluKind int

const (
	aluADD aluKind = iota
	aluOR
	aluADC
	aluSBB
	aluAND
	aluSUB
	aluXOR
	aluCMP
)

var aluKinds = [8]aluKind{aluADD, aluOR, aluADC, aluSBB, aluAND, aluSUB, aluXOR, aluCMP}

// aluApply performs the named operation at width w, updates flags, and
// returns the value that should be stored. CMP computes the subtraction
// purely for its flag effects and never writes the result back to either
// operand, so callers simply discard the returned value for that case.
func (c *CPU) aluApply(kind aluKind, w int, d, s uint32) uint32 {
	switch kind {
	case aluADD:
		return c.ArithOp(w, AluAdd, false, d, s)
	case aluADC:
		return c.ArithOp(w, AluAdd, c.CF(), d, s)
	case aluSUB:
		return c.ArithOp(w, AluSub, false, d, s)
	case aluSBB:
		return c.ArithOp(w, AluSub, c.CF(), d, s)
	case aluCMP:
		c.ArithOp(w, AluSub, false, d, s)
		return d
	case aluAND:
		r := d & s
		c.LogicFlags(w, r)
		return r
	case aluOR:
		r := d | s
		c.LogicFlags(w, r)
		return r
	case aluXOR:
		r := d ^ s
		c.LogicFlags(w, r)
		return r
	}
	return d
}

func (c *CPU) aluRegMem8(kind aluKind, regIsDst bool) {
	m := c.decodeModRM()
	if regIsDst {
		s := c.readRM8(m)
		d := c.Gen8(int(m.reg))
		r := c.aluApply(kind, 8, uint32(d), uint32(s))
		if kind != aluCMP {
			c.SetGen8(int(m.reg), uint8(r))
		}
		return
	}
	d := c.readRM8(m)
	s := c.Gen8(int(m.reg))
	r := c.aluApply(kind, 8, uint32(d), uint32(s))
	if kind != aluCMP {
		c.writeRM8(m, uint8(r))
	}
}

func (c *CPU) aluRegMem16(kind aluKind, regIsDst bool) {
	m := c.decodeModRM()
	if regIsDst {
		s := c.readRM16(m)
		d := c.Gen16(int(m.reg))
		r := c.aluApply(kind, 16, uint32(d), uint32(s))
		if kind != aluCMP {
			c.SetGen16(int(m.reg), uint16(r))
		}
		return
	}
	d := c.readRM16(m)
	s := c.Gen16(int(m.reg))
	r := c.aluApply(kind, 16, uint32(d), uint32(s))
	if kind != aluCMP {
		c.writeRM16(m, uint16(r))
	}
}

// aluALImm/aluAXImm are the 0xX4/0xX5-slot accumulator-immediate forms:
// the 8-bit opcode always operates on AL against an 8-bit immediate, the
// 16-bit opcode on AX against a 16-bit immediate.
func (c *CPU) aluALImm(kind aluKind) {
	al := c.AL()
	imm := c.fetch8()
	r := c.aluApply(kind, 8, uint32(al), uint32(imm))
	if kind != aluCMP {
		c.SetAL(uint8(r))
	}
}

func (c *CPU) aluAXImm(kind aluKind) {
	ax := c.AX()
	imm := c.fetch16()
	r := c.aluApply(kind, 16, uint32(ax), uint32(imm))
	if kind != aluCMP {
		c.SetAX(uint16(r))
	}
}

// incDec8/incDec16 implement INC/DEC at full declared width, updating
// every arithmetic flag except CF: INC/DEC must leave CF alone so that a
// loop counter can be adjusted without disturbing a carry from surrounding
// arithmetic.
func (c *CPU) incDec8(v uint8, dec bool) uint8 {
	op := AluAdd
	if dec {
		op = AluSub
	}
	result, _, pf, af, zf, sf, of := CheckedAdd(8, op, false, uint32(v), 1)
	c.IncDecFlags(pf, af, zf, sf, of)
	return uint8(result)
}

func (c *CPU) incDec16(v uint16, dec bool) uint16 {
	op := AluAdd
	if dec {
		op = AluSub
	}
	result, _, pf, af, zf, sf, of := CheckedAdd(16, op, false, uint32(v), 1)
	c.IncDecFlags(pf, af, zf, sf, of)
	return uint16(result)
}

// neg8/neg16: NEG is 0 - v, with the special rule that CF is set whenever
// v is nonzero (subtracting a nonzero value from zero always borrows).
func (c *CPU) neg8(v uint8) uint8 {
	r := c.ArithOp(8, AluSub, false, 0, uint32(v))
	return uint8(r)
}

func (c *CPU) neg16(v uint16) uint16 {
	r := c.ArithOp(16, AluSub, false, 0, uint32(v))
	return uint16(r)
}

func (c *CPU) opIncReg(i int) func(*CPU) {
	return func(c *CPU) { c.SetGen16(i, c.incDec16(c.Gen16(i), false)) }
}

func (c *CPU) opDecReg(i int) func(*CPU) {
	return func(c *CPU) { c.SetGen16(i, c.incDec16(c.Gen16(i), true)) }
}

// opCBW: sign-extend AL into AH (AX := signed AL).
func opCBW(c *CPU) {
	al := int8(c.AL())
	c.SetAX(uint16(int16(al)))
}

// opCWD: sign-extend AX into DX:AX.
func opCWD(c *CPU) {
	ax := int16(c.AX())
	if ax < 0 {
		c.SetDX(0xFFFF)
	} else {
		c.SetDX(0)
	}
}
