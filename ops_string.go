package iapx86

// String instructions: MOVS/CMPS/STOS/LODS/SCAS, byte and word forms,
// under the REP/REPE/REPNE prefixes consumed by stepOne before the opcode
// handler runs. The same prefix byte (0xF3) means plain REP for MOVS/STOS/
// LODS and REPE/REPZ for CMPS/SCAS; which rule applies depends on whether
// the following instruction produces a comparison, not on the prefix byte
// itself, so two entry points cover the two cases.

// repString runs body while CX != 0, decrementing CX after each iteration:
// the unconditional repeat count used by MOVS/STOS/LODS, which have no
// comparison result to test between iterations. A REP-prefixed instruction
// with CX==0 at entry performs zero iterations, not one.
func (c *CPU) repString(body func()) {
	if c.repPrefix == repNone {
		body()
		return
	}
	for c.CX() != 0 {
		body()
		c.SetCX(c.CX() - 1)
	}
}

// repStringCmp is repString plus the REPE/REPNE early-exit rule CMPS/SCAS
// need: REPE stops as soon as a comparison is unequal, REPNE stops as soon
// as one is equal, in both cases regardless of CX.
func (c *CPU) repStringCmp(body func()) {
	if c.repPrefix == repNone {
		body()
		return
	}
	for {
		if c.CX() == 0 {
			break
		}
		body()
		c.SetCX(c.CX() - 1)
		if c.CX() == 0 {
			break
		}
		if c.repPrefix == repZ && !c.ZF() {
			break
		}
		if c.repPrefix == repNZ && c.ZF() {
			break
		}
	}
}

func (c *CPU) stringStep16() uint16 {
	if c.DF() {
		return 0xFFFF // -1 mod 2^16
	}
	return 1
}

func (c *CPU) stringStep16w() uint16 {
	if c.DF() {
		return 0xFFFE // -2 mod 2^16
	}
	return 2
}

func opMOVSB(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repString(func() {
		v := c.Read8(srcSeg, c.SI())
		c.Write8(c.ES(), c.DI(), v)
		c.SetSI(c.SI() + c.stringStep16())
		c.SetDI(c.DI() + c.stringStep16())
	})
}

func opMOVSW(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repString(func() {
		v := c.Read16(srcSeg, c.SI())
		c.Write16(c.ES(), c.DI(), v)
		c.SetSI(c.SI() + c.stringStep16w())
		c.SetDI(c.DI() + c.stringStep16w())
	})
}

func opSTOSB(c *CPU) {
	c.repString(func() {
		c.Write8(c.ES(), c.DI(), c.AL())
		c.SetDI(c.DI() + c.stringStep16())
	})
}

func opSTOSW(c *CPU) {
	c.repString(func() {
		c.Write16(c.ES(), c.DI(), c.AX())
		c.SetDI(c.DI() + c.stringStep16w())
	})
}

func opLODSB(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repString(func() {
		c.SetAL(c.Read8(srcSeg, c.SI()))
		c.SetSI(c.SI() + c.stringStep16())
	})
}

func opLODSW(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repString(func() {
		c.SetAX(c.Read16(srcSeg, c.SI()))
		c.SetSI(c.SI() + c.stringStep16w())
	})
}

func opCMPSB(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repStringCmp(func() {
		a := c.Read8(srcSeg, c.SI())
		b := c.Read8(c.ES(), c.DI())
		c.ArithOp(8, AluSub, false, uint32(a), uint32(b))
		c.SetSI(c.SI() + c.stringStep16())
		c.SetDI(c.DI() + c.stringStep16())
	})
}

func opCMPSW(c *CPU) {
	srcSeg := c.effSegOrDefault(SegDS)
	c.repStringCmp(func() {
		a := c.Read16(srcSeg, c.SI())
		b := c.Read16(c.ES(), c.DI())
		c.ArithOp(16, AluSub, false, uint32(a), uint32(b))
		c.SetSI(c.SI() + c.stringStep16w())
		c.SetDI(c.DI() + c.stringStep16w())
	})
}

func opSCASB(c *CPU) {
	c.repStringCmp(func() {
		b := c.Read8(c.ES(), c.DI())
		c.ArithOp(8, AluSub, false, uint32(c.AL()), uint32(b))
		c.SetDI(c.DI() + c.stringStep16())
	})
}

func opSCASW(c *CPU) {
	c.repStringCmp(func() {
		b := c.Read16(c.ES(), c.DI())
		c.ArithOp(16, AluSub, false, uint32(c.AX()), uint32(b))
		c.SetDI(c.DI() + c.stringStep16w())
	})
}
