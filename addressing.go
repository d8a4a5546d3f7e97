package iapx86

// modRM holds the decoded fields of a ModR/M byte plus the effective
// address it resolved to, passed around as an ordinary return value rather
// than left sitting in CPU fields for a subsequent call to mis-sequence
// against. CPU.mod/reg/rm/ea still mirror the most recent decode for
// callers that find it convenient to read them directly, but the struct
// below is what ops_*.go files are written against.
type modRM struct {
	mod byte
	reg byte
	rm  byte

	isReg bool   // mod==3: rm names a register, not memory
	ea    uint16 // effective address (offset), valid only if !isReg
	seg   uint16 // segment to combine with ea
}

// decodeModRM fetches the ModR/M byte (and any displacement it implies),
// computes the effective address, and returns the decode. It also mirrors
// mod/reg/rm/ea onto the CPU for handlers that read them directly, and
// clears the one-shot segment override once consumed.
func (c *CPU) decodeModRM() modRM {
	b := c.fetch8()
	m := modRM{
		mod: (b >> 6) & 3,
		reg: (b >> 3) & 7,
		rm:  b & 7,
	}
	c.mod, c.reg, c.rm = m.mod, m.reg, m.rm

	if m.mod == 3 {
		m.isReg = true
		return m
	}

	defaultSeg := uint16(SegDS)
	var base uint16

	switch m.rm {
	case 0:
		base = c.BX() + c.SI()
	case 1:
		base = c.BX() + c.DI()
	case 2:
		base = c.BP() + c.SI()
		defaultSeg = SegSS
	case 3:
		base = c.BP() + c.DI()
		defaultSeg = SegSS
	case 4:
		base = c.SI()
	case 5:
		base = c.DI()
	case 6:
		if m.mod == 0 {
			base = c.fetch16() // direct address, default segment DS
		} else {
			base = c.BP()
			defaultSeg = SegSS
		}
	case 7:
		base = c.BX()
	}

	var disp uint16
	switch m.mod {
	case 1:
		disp = uint16(int16(c.fetchRel8()))
	case 2:
		disp = c.fetch16()
	}

	m.ea = base + disp // wraps modulo 2^16, like any other 16-bit offset arithmetic

	segIdx := defaultSeg
	if c.segOverride {
		segIdx = uint16(c.overrideSeg)
	}
	m.seg = c.Seg(int(segIdx))

	c.ea = uint32(phys(m.seg, m.ea))
	// One-shot: a segment override applies only to the single instruction
	// that follows the prefix byte. It is cleared here, once the EA that
	// consumes it has actually been computed, rather than at prefix-fetch
	// time.
	c.segOverride = false

	return m
}
