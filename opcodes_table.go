package iapx86

// initBaseOps wires the 256-entry primary opcode table. Segment-override
// and REP/LOCK prefixes (0x26/0x2E/0x36/0x3E/0xF0/0xF2/0xF3) are
// intercepted inline in stepOne and never indexed here. Opcodes with no
// entry execute as a silent no-op — this covers every 80186+/386+/x87/
// I-O-port opcode this core does not implement, so those families are
// simply never wired rather than wired-then-rejected.
func (c *CPU) initBaseOps() {
	// ALU primary block 0x00-0x3D: eight opcode groups of eight, each
	// group built from aluRegMem8/16 and aluALImm/AXImm parametrized by
	// aluKinds[k] — see ops_arith.go. One loop covers all 48 opcode slots
	// since they are combinations of the same 8 operations x 6 addressing
	// shapes.
	for k := 0; k < 8; k++ {
		kind := aluKinds[k]
		base := k * 8
		c.baseOps[base+0] = aluEbGbHandler(kind)
		c.baseOps[base+1] = aluEvGvHandler(kind)
		c.baseOps[base+2] = aluGbEbHandler(kind)
		c.baseOps[base+3] = aluGvEvHandler(kind)
		c.baseOps[base+4] = aluALImmHandler(kind)
		c.baseOps[base+5] = aluAXImmHandler(kind)
	}
	// The irregular 6th/7th slot of each ALU octet: PUSH/POP ES,CS,SS,DS
	// for groups 0/1/2/3, then BCD adjust for groups 4/5/6/7.
	c.baseOps[0x06] = c.opPUSHseg(SegES)
	c.baseOps[0x07] = c.opPOPseg(SegES)
	c.baseOps[0x0E] = c.opPUSHseg(SegCS)
	c.baseOps[0x0F] = c.opPOPseg(SegCS) // 8086-only meaning; no two-byte escape in this core
	c.baseOps[0x16] = c.opPUSHseg(SegSS)
	c.baseOps[0x17] = c.opPOPseg(SegSS)
	c.baseOps[0x1E] = c.opPUSHseg(SegDS)
	c.baseOps[0x1F] = c.opPOPseg(SegDS)
	c.baseOps[0x27] = func(c *CPU) { c.daa() }
	c.baseOps[0x2F] = func(c *CPU) { c.das() }
	c.baseOps[0x37] = func(c *CPU) { c.aaa() }
	c.baseOps[0x3F] = func(c *CPU) { c.aas() }

	// 0x40-0x4F: INC/DEC general register.
	for i := 0; i < 8; i++ {
		c.baseOps[0x40+i] = c.opIncReg(i)
		c.baseOps[0x48+i] = c.opDecReg(i)
	}

	// 0x50-0x5F: PUSH/POP general register.
	for i := 0; i < 8; i++ {
		c.baseOps[0x50+i] = c.opPUSHreg(i)
		c.baseOps[0x58+i] = c.opPOPreg(i)
	}

	// 0x70-0x7F: Jcc rel8.
	jccOps := [16]func(*CPU){
		opJO, opJNO, opJB, opJNB, opJZ, opJNZ, opJBE, opJA,
		opJS, opJNS, opJP, opJNP, opJL, opJGE, opJLE, opJG,
	}
	for i, h := range jccOps {
		c.baseOps[0x70+i] = h
	}

	// 0x80-0x83: group-1 ALU-by-reg-field.
	c.baseOps[0x80] = func(c *CPU) { c.group1Eb(8) }
	c.baseOps[0x81] = func(c *CPU) { c.group1Ev(false) }
	c.baseOps[0x82] = func(c *CPU) { c.group1Eb(8) }
	c.baseOps[0x83] = func(c *CPU) { c.group1Ev(true) }

	c.baseOps[0x84] = opTESTEbGb
	c.baseOps[0x85] = opTESTEvGv
	c.baseOps[0x86] = opXCHGEbGb
	c.baseOps[0x87] = opXCHGEvGv
	c.baseOps[0x88] = opMOVEbGb
	c.baseOps[0x89] = opMOVEvGv
	c.baseOps[0x8A] = opMOVGbEb
	c.baseOps[0x8B] = opMOVGvEv
	c.baseOps[0x8C] = opMOVEvSw
	c.baseOps[0x8D] = opLEA
	c.baseOps[0x8E] = opMOVSwEw
	c.baseOps[0x8F] = opPOPEv

	c.baseOps[0x90] = opNOP
	for i := 1; i < 8; i++ {
		c.baseOps[0x90+i] = c.opXCHGAXreg(i)
	}
	c.baseOps[0x98] = opCBW
	c.baseOps[0x99] = opCWD
	c.baseOps[0x9A] = opCALLfar
	c.baseOps[0x9B] = opWAIT
	c.baseOps[0x9C] = opPUSHF
	c.baseOps[0x9D] = opPOPF
	c.baseOps[0x9E] = opSAHF
	c.baseOps[0x9F] = opLAHF

	c.baseOps[0xA0] = opMOVALmoffs
	c.baseOps[0xA1] = opMOVAXmoffs
	c.baseOps[0xA2] = opMOVmoffsAL
	c.baseOps[0xA3] = opMOVmoffsAX
	c.baseOps[0xA4] = opMOVSB
	c.baseOps[0xA5] = opMOVSW
	c.baseOps[0xA6] = opCMPSB
	c.baseOps[0xA7] = opCMPSW
	c.baseOps[0xA8] = opTESTALIb
	c.baseOps[0xA9] = opTESTAXIv
	c.baseOps[0xAA] = opSTOSB
	c.baseOps[0xAB] = opSTOSW
	c.baseOps[0xAC] = opLODSB
	c.baseOps[0xAD] = opLODSW
	c.baseOps[0xAE] = opSCASB
	c.baseOps[0xAF] = opSCASW

	for i := 0; i < 8; i++ {
		c.baseOps[0xB0+i] = c.opMOVregImm8(i)
		c.baseOps[0xB8+i] = c.opMOVregImm16(i)
	}

	c.baseOps[0xC2] = opRETimm
	c.baseOps[0xC3] = opRET
	c.baseOps[0xC4] = opLES
	c.baseOps[0xC5] = opLDS
	c.baseOps[0xC6] = opMOVEbIb
	c.baseOps[0xC7] = opMOVEvIv
	c.baseOps[0xCA] = opRETFimm
	c.baseOps[0xCB] = opRETF
	c.baseOps[0xCC] = opINT3
	c.baseOps[0xCD] = opINT
	c.baseOps[0xCE] = opINTO
	c.baseOps[0xCF] = opIRET

	c.baseOps[0xD0] = func(c *CPU) { c.group2Eb(false) }
	c.baseOps[0xD1] = func(c *CPU) { c.group2Ev(false) }
	c.baseOps[0xD2] = func(c *CPU) { c.group2Eb(true) }
	c.baseOps[0xD3] = func(c *CPU) { c.group2Ev(true) }
	c.baseOps[0xD4] = func(c *CPU) { c.aam(c.fetch8()) }
	c.baseOps[0xD5] = func(c *CPU) { c.aad(c.fetch8()) }
	c.baseOps[0xD7] = opXLAT

	c.baseOps[0xE0] = opLOOPNE
	c.baseOps[0xE1] = opLOOPE
	c.baseOps[0xE2] = opLOOP
	c.baseOps[0xE3] = opJCXZ

	c.baseOps[0xE8] = opCALLnear
	c.baseOps[0xE9] = opJMPnear
	c.baseOps[0xEA] = opJMPfar
	c.baseOps[0xEB] = opJMPshort

	c.baseOps[0xF4] = opHLT
	c.baseOps[0xF5] = opCMC
	c.baseOps[0xF6] = func(c *CPU) { c.group3Eb() }
	c.baseOps[0xF7] = func(c *CPU) { c.group3Ev() }
	c.baseOps[0xF8] = opCLC
	c.baseOps[0xF9] = opSTC
	c.baseOps[0xFA] = opCLI
	c.baseOps[0xFB] = opSTI
	c.baseOps[0xFC] = opCLD
	c.baseOps[0xFD] = opSTD
	c.baseOps[0xFE] = func(c *CPU) { c.group4Eb() }
	c.baseOps[0xFF] = func(c *CPU) { c.group5Ev() }
}

func aluEbGbHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluRegMem8(kind, false) }
}
func aluEvGvHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluRegMem16(kind, false) }
}
func aluGbEbHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluRegMem8(kind, true) }
}
func aluGvEvHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluRegMem16(kind, true) }
}
func aluALImmHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluALImm(kind) }
}
func aluAXImmHandler(kind aluKind) func(*CPU) {
	return func(c *CPU) { c.aluAXImm(kind) }
}
