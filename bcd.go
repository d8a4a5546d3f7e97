package iapx86

// BCD adjust instructions: DAA/DAS/AAA/AAS correct AL (and AH for the
// AAA/AAS pair) after byte arithmetic on packed/unpacked BCD digits. Each
// follows the documented adjustment sequence: check the low nibble (or AF)
// for a digit that overflowed 9, correct it and propagate into the high
// nibble or AH, then check the high nibble (or CF) for the same condition.

func (s *State) daa() {
	al := s.AL()
	cf := s.CF()
	af := s.AF()
	if al&0x0F > 9 || af {
		al += 6
		s.SetFlag(FlagAF, true)
	} else {
		s.SetFlag(FlagAF, false)
	}
	if al > 0x9F || cf {
		al += 0x60
		s.SetFlag(FlagCF, true)
	} else {
		s.SetFlag(FlagCF, false)
	}
	s.SetAL(al)
	s.SetFlag(FlagSF, al&0x80 != 0)
	s.SetFlag(FlagZF, al == 0)
	s.SetFlag(FlagPF, parity(al))
}

func (s *State) das() {
	al := s.AL()
	cf := s.CF()
	af := s.AF()
	if al&0x0F > 9 || af {
		al -= 6
		s.SetFlag(FlagAF, true)
	} else {
		s.SetFlag(FlagAF, false)
	}
	if al > 0x9F || cf {
		al -= 0x60
		s.SetFlag(FlagCF, true)
	} else {
		s.SetFlag(FlagCF, false)
	}
	s.SetAL(al)
	s.SetFlag(FlagSF, al&0x80 != 0)
	s.SetFlag(FlagZF, al == 0)
	s.SetFlag(FlagPF, parity(al))
}

func (s *State) aaa() {
	if s.AL()&0x0F > 9 || s.AF() {
		s.SetAL(s.AL() + 6)
		s.SetAH(s.AH() + 1)
		s.SetFlag(FlagAF, true)
		s.SetFlag(FlagCF, true)
	} else {
		s.SetFlag(FlagAF, false)
		s.SetFlag(FlagCF, false)
	}
	s.SetAL(s.AL() & 0x0F)
}

func (s *State) aas() {
	if s.AL()&0x0F > 9 || s.AF() {
		s.SetAL(s.AL() - 6)
		s.SetAH(s.AH() - 1)
		s.SetFlag(FlagAF, true)
		s.SetFlag(FlagCF, true)
	} else {
		s.SetFlag(FlagAF, false)
		s.SetFlag(FlagCF, false)
	}
	s.SetAL(s.AL() & 0x0F)
}

// aam: AH = AL / base, AL = AL % base (quotient into AH, remainder into AL), base fetched
// as an immediate (always 0x0A for the plain AAM opcode). A zero base
// raises the divide-error trap the same way DIV/IDIV do.
func (c *CPU) aam(base uint8) {
	if base == 0 {
		c.raiseDivideError()
		return
	}
	al := c.AL()
	c.SetAH(al / base)
	c.SetAL(al % base)
	c.SetFlag(FlagSF, c.AL()&0x80 != 0)
	c.SetFlag(FlagZF, c.AL() == 0)
	c.SetFlag(FlagPF, parity(c.AL()))
}

// aad: AL = AH*base + AL, AH = 0 (undoes an unpacked BCD pair before a
// binary divide).
func (c *CPU) aad(base uint8) {
	al := c.AH()*base + c.AL()
	c.SetAL(al)
	c.SetAH(0)
	c.SetFlag(FlagSF, c.AL()&0x80 != 0)
	c.SetFlag(FlagZF, c.AL() == 0)
	c.SetFlag(FlagPF, parity(c.AL()))
}
