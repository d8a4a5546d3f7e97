package iapx86

// jcc applies a signed rel8 displacement to IP iff cond holds; the byte
// is always fetched (it must be, to advance past it) regardless of the
// outcome.
func (c *CPU) jcc(cond bool) {
	rel := c.fetchRel8()
	if cond {
		c.SetIP(uint16(int32(c.ip) + rel))
	}
}

// Condition predicates, the standard 8086 Jcc table, one closure per
// opcode 0x70-0x7F in order.
func opJO(c *CPU)  { c.jcc(c.OF()) }
func opJNO(c *CPU) { c.jcc(!c.OF()) }
func opJB(c *CPU)  { c.jcc(c.CF()) }
func opJNB(c *CPU) { c.jcc(!c.CF()) }
func opJZ(c *CPU)  { c.jcc(c.ZF()) }
func opJNZ(c *CPU) { c.jcc(!c.ZF()) }
func opJBE(c *CPU) { c.jcc(c.CF() || c.ZF()) }
func opJA(c *CPU)  { c.jcc(!c.CF() && !c.ZF()) }
func opJS(c *CPU)  { c.jcc(c.SF()) }
func opJNS(c *CPU) { c.jcc(!c.SF()) }
func opJP(c *CPU)  { c.jcc(c.PF()) }
func opJNP(c *CPU) { c.jcc(!c.PF()) }
func opJL(c *CPU)  { c.jcc(c.SF() != c.OF()) }
func opJGE(c *CPU) { c.jcc(c.SF() == c.OF()) }
func opJLE(c *CPU) { c.jcc(c.ZF() || c.SF() != c.OF()) }
func opJG(c *CPU)  { c.jcc(!c.ZF() && c.SF() == c.OF()) }

func opJMPshort(c *CPU) {
	rel := c.fetchRel8()
	c.SetIP(uint16(int32(c.ip) + rel))
}

func opJMPnear(c *CPU) {
	rel := int32(int16(c.fetch16()))
	c.SetIP(uint16(int32(c.ip) + rel))
}

func opJMPfar(c *CPU) {
	off := c.fetch16()
	seg := c.fetch16()
	c.SetCS(seg)
	c.SetIP(off)
}

func opCALLnear(c *CPU) {
	rel := int32(int16(c.fetch16()))
	ret := c.ip
	c.SetIP(uint16(int32(ret) + rel))
	c.push16(ret)
}

func opCALLfar(c *CPU) {
	off := c.fetch16()
	seg := c.fetch16()
	c.push16(c.CS())
	c.push16(c.ip)
	c.SetCS(seg)
	c.SetIP(off)
}

func opRET(c *CPU) {
	c.SetIP(c.pop16())
}

func opRETimm(c *CPU) {
	imm := c.fetch16()
	ip := c.pop16()
	c.SetIP(ip)
	c.SetSP(c.SP() + imm)
}

func opRETF(c *CPU) {
	ip := c.pop16()
	cs := c.pop16()
	c.SetIP(ip)
	c.SetCS(cs)
}

func opRETFimm(c *CPU) {
	imm := c.fetch16()
	ip := c.pop16()
	cs := c.pop16()
	c.SetIP(ip)
	c.SetCS(cs)
	c.SetSP(c.SP() + imm)
}

func opLOOP(c *CPU) {
	rel := c.fetchRel8()
	cx := c.CX() - 1
	c.SetCX(cx)
	if cx != 0 {
		c.SetIP(uint16(int32(c.ip) + rel))
	}
}

func opLOOPE(c *CPU) {
	rel := c.fetchRel8()
	cx := c.CX() - 1
	c.SetCX(cx)
	if cx != 0 && c.ZF() {
		c.SetIP(uint16(int32(c.ip) + rel))
	}
}

func opLOOPNE(c *CPU) {
	rel := c.fetchRel8()
	cx := c.CX() - 1
	c.SetCX(cx)
	if cx != 0 && !c.ZF() {
		c.SetIP(uint16(int32(c.ip) + rel))
	}
}

func opJCXZ(c *CPU) {
	rel := c.fetchRel8()
	if c.CX() == 0 {
		c.SetIP(uint16(int32(c.ip) + rel))
	}
}

// Flag-control and misc single-byte opcodes.
func opCLC(c *CPU) { c.SetFlag(FlagCF, false) }
func opSTC(c *CPU) { c.SetFlag(FlagCF, true) }
func opCMC(c *CPU) { c.SetFlag(FlagCF, !c.CF()) }
func opCLI(c *CPU) { c.SetFlag(FlagIF, false) }
func opSTI(c *CPU) { c.SetFlag(FlagIF, true) }
func opCLD(c *CPU) { c.SetFlag(FlagDF, false) }
func opSTD(c *CPU) { c.SetFlag(FlagDF, true) }
func opNOP(c *CPU) {}
func opWAIT(c *CPU) {}
