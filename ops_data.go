package iapx86

// MOV family, PUSH/POP, XCHG, LEA/LDS/LES, flag-transfer (LAHF/SAHF/
// PUSHF/POPF), and XLAT. POP into SP/BP/SI/DI writes through the
// general-register setter, never the segment setter — those register
// indices only collide with segment register indices by numeric
// coincidence, they name unrelated registers. The 0x84-0x87 block follows
// the standard mapping TEST Eb,Gb / TEST Ev,Gv / XCHG Eb,Gb / XCHG Ev,Gv.

func opMOVEbGb(c *CPU) { m := c.decodeModRM(); c.writeRM8(m, c.Gen8(int(m.reg))) }
func opMOVEvGv(c *CPU) { m := c.decodeModRM(); c.writeRM16(m, c.Gen16(int(m.reg))) }
func opMOVGbEb(c *CPU) { m := c.decodeModRM(); c.SetGen8(int(m.reg), c.readRM8(m)) }
func opMOVGvEv(c *CPU) { m := c.decodeModRM(); c.SetGen16(int(m.reg), c.readRM16(m)) }

func opMOVEvSw(c *CPU) { m := c.decodeModRM(); c.writeRM16(m, c.Seg(int(m.reg&3))) }
func opMOVSwEw(c *CPU) { m := c.decodeModRM(); c.SetSeg(int(m.reg&3), c.readRM16(m)) }

func opLEA(c *CPU) {
	m := c.decodeModRM()
	if m.isReg {
		return // undefined form: rm named a register, not memory
	}
	c.SetGen16(int(m.reg), m.ea)
}

func opLDS(c *CPU) {
	m := c.decodeModRM()
	off := c.readRM16(m)
	seg := c.Read16(m.seg, m.ea+2)
	c.SetGen16(int(m.reg), off)
	c.SetDS(seg)
}

func opLES(c *CPU) {
	m := c.decodeModRM()
	off := c.readRM16(m)
	seg := c.Read16(m.seg, m.ea+2)
	c.SetGen16(int(m.reg), off)
	c.SetES(seg)
}

func opPOPEv(c *CPU) {
	m := c.decodeModRM()
	c.writeRM16(m, c.pop16())
}

func opMOVALmoffs(c *CPU) {
	off := c.fetch16()
	c.SetAL(c.Read8(c.effSegOrDefault(SegDS), off))
}

func opMOVAXmoffs(c *CPU) {
	off := c.fetch16()
	c.SetAX(c.Read16(c.effSegOrDefault(SegDS), off))
}

func opMOVmoffsAL(c *CPU) {
	off := c.fetch16()
	c.Write8(c.effSegOrDefault(SegDS), off, c.AL())
}

func opMOVmoffsAX(c *CPU) {
	off := c.fetch16()
	c.Write16(c.effSegOrDefault(SegDS), off, c.AX())
}

// effSegOrDefault resolves the segment to use for a moffs-style operand:
// the current one-shot override if set, otherwise def. Consumes the
// override, mirroring decodeModRM's one-shot behavior for the handful of
// opcodes (moffs forms, XLAT, string ops) that reference memory without
// going through a ModR/M byte.
func (c *CPU) effSegOrDefault(def int) uint16 {
	idx := def
	if c.segOverride {
		idx = c.overrideSeg
		c.segOverride = false
	}
	return c.Seg(idx)
}

func (c *CPU) opMOVregImm8(i int) func(*CPU) {
	return func(c *CPU) { c.SetGen8(i, c.fetch8()) }
}

func (c *CPU) opMOVregImm16(i int) func(*CPU) {
	return func(c *CPU) { c.SetGen16(i, c.fetch16()) }
}

func opMOVEbIb(c *CPU) {
	m := c.decodeModRM()
	c.writeRM8(m, c.fetch8())
}

func opMOVEvIv(c *CPU) {
	m := c.decodeModRM()
	c.writeRM16(m, c.fetch16())
}

func (c *CPU) opPUSHreg(i int) func(*CPU) {
	return func(c *CPU) { c.push16(c.Gen16(i)) }
}

// opPOPreg pops into general register i via SetGen16: POP SP/BP/SI/DI
// (opcodes 0x5C-0x5F) target general registers, which happen to share small
// integer indices with the segment registers ES/CS/SS/DS but are otherwise
// unrelated — using SetSeg here would silently corrupt a segment register.
func (c *CPU) opPOPreg(i int) func(*CPU) {
	return func(c *CPU) { c.SetGen16(i, c.pop16()) }
}

func (c *CPU) opPUSHseg(i int) func(*CPU) {
	return func(c *CPU) { c.push16(c.Seg(i)) }
}

func (c *CPU) opPOPseg(i int) func(*CPU) {
	return func(c *CPU) { c.SetSeg(i, c.pop16()) }
}

func opPUSHF(c *CPU) { c.push16(c.Flags()) }
func opPOPF(c *CPU)  { c.SetFlags(c.pop16()) }

func opSAHF(c *CPU) {
	ah := c.AH()
	c.SetFlag(FlagCF, ah&0x01 != 0)
	c.SetFlag(FlagPF, ah&0x04 != 0)
	c.SetFlag(FlagAF, ah&0x10 != 0)
	c.SetFlag(FlagZF, ah&0x40 != 0)
	c.SetFlag(FlagSF, ah&0x80 != 0)
}

func opLAHF(c *CPU) {
	var ah uint8
	if c.CF() {
		ah |= 0x01
	}
	ah |= 0x02 // reserved bit 1, always 1
	if c.PF() {
		ah |= 0x04
	}
	if c.AF() {
		ah |= 0x10
	}
	if c.ZF() {
		ah |= 0x40
	}
	if c.SF() {
		ah |= 0x80
	}
	c.SetAH(ah)
}

func (c *CPU) opXCHGAXreg(i int) func(*CPU) {
	return func(c *CPU) {
		ax := c.AX()
		v := c.Gen16(i)
		c.SetAX(v)
		c.SetGen16(i, ax)
	}
}

func opXCHGEbGb(c *CPU) {
	m := c.decodeModRM()
	rm := c.readRM8(m)
	reg := c.Gen8(int(m.reg))
	c.writeRM8(m, reg)
	c.SetGen8(int(m.reg), rm)
}

func opXCHGEvGv(c *CPU) {
	m := c.decodeModRM()
	rm := c.readRM16(m)
	reg := c.Gen16(int(m.reg))
	c.writeRM16(m, reg)
	c.SetGen16(int(m.reg), rm)
}

func opTESTEbGb(c *CPU) {
	m := c.decodeModRM()
	c.aluApply(aluAND, 8, uint32(c.readRM8(m)), uint32(c.Gen8(int(m.reg))))
}

func opTESTEvGv(c *CPU) {
	m := c.decodeModRM()
	c.aluApply(aluAND, 16, uint32(c.readRM16(m)), uint32(c.Gen16(int(m.reg))))
}

func opTESTALIb(c *CPU) {
	imm := c.fetch8()
	c.aluApply(aluAND, 8, uint32(c.AL()), uint32(imm))
}

func opTESTAXIv(c *CPU) {
	imm := c.fetch16()
	c.aluApply(aluAND, 16, uint32(c.AX()), uint32(imm))
}

// XLAT: AL := [seg:BX+AL], default segment DS, overridable.
func opXLAT(c *CPU) {
	seg := c.effSegOrDefault(SegDS)
	c.SetAL(c.Read8(seg, c.BX()+uint16(c.AL())))
}
