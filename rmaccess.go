package iapx86

// readRM8/writeRM8/readRM16/writeRM16 give opcode handlers a single call
// that works whether the ModR/M byte named a register or a memory operand,
// so handler bodies don't need to branch on mod themselves.

func (c *CPU) readRM8(m modRM) uint8 {
	if m.isReg {
		return c.Gen8(int(m.rm))
	}
	return c.Read8(m.seg, m.ea)
}

func (c *CPU) writeRM8(m modRM, v uint8) {
	if m.isReg {
		c.SetGen8(int(m.rm), v)
		return
	}
	c.Write8(m.seg, m.ea, v)
}

func (c *CPU) readRM16(m modRM) uint16 {
	if m.isReg {
		return c.Gen16(int(m.rm))
	}
	return c.Read16(m.seg, m.ea)
}

func (c *CPU) writeRM16(m modRM, v uint16) {
	if m.isReg {
		c.SetGen16(int(m.rm), v)
		return
	}
	c.Write16(m.seg, m.ea, v)
}
