package iapx86

// CPU is the fetch/decode/execute engine over a State. It owns no memory
// of its own — State is the single owned aggregate — and adds only the
// opcode table and an optional logger.
type CPU struct {
	*State

	baseOps [256]func(*CPU)

	repPrefix  repKind // none/REP-REPE/REPNE, consumed by string opcodes only
	lockPrefix bool
	halted     bool
	log        *logger
}

type repKind int

const (
	repNone repKind = iota
	repZ            // REP / REPE / REPZ
	repNZ           // REPNE / REPNZ
)

// NewCPU builds a CPU around a fresh State and wires the opcode table.
func NewCPU() *CPU {
	c := &CPU{State: NewState()}
	c.initBaseOps()
	return c
}

// fetch8 reads one byte at CS:IP and advances IP by one, wrapping modulo
// 2^16 like any other 16-bit offset.
func (c *CPU) fetch8() uint8 {
	v := c.Read8(c.CS(), c.ip)
	c.ip++
	return v
}

// fetch16 reads a little-endian word at CS:IP and advances IP by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

// fetchRel8 fetches a signed 8-bit displacement, sign-extended to int32
// for convenient addition to IP.
func (c *CPU) fetchRel8() int32 {
	return int32(int8(c.fetch8()))
}

// Execute runs up to n instructions, or until the CPU halts, resuming
// from the current CS:IP. A prefix byte (segment override, REP/REPE/
// REPNE, LOCK) does not consume a unit of the budget — the whole
// prefix+opcode sequence counts as one instruction.
func (c *CPU) Execute(n int) {
	for i := 0; i < n; i++ {
		if c.halted {
			return
		}
		c.stepOne()
	}
}

// halted is set by HLT; Execute returns immediately once set. A host that
// wants to resume after an interrupt would clear it via Resume.
func (c *CPU) Resume() { c.halted = false }

func (c *CPU) stepOne() {
	// Reset transient decode state at the start of every instruction so
	// no stale value from a prior instruction can leak in.
	c.mod, c.reg, c.rm = 0, 0, 0
	c.segOverride = false
	c.overrideSeg = 0
	c.ea = 0
	c.repPrefix = repNone
	c.lockPrefix = false

	for {
		opcode := c.fetch8()
		switch opcode {
		case 0x26: // ES:
			c.segOverride, c.overrideSeg = true, SegES
			continue
		case 0x2E: // CS:
			c.segOverride, c.overrideSeg = true, SegCS
			continue
		case 0x36: // SS:
			c.segOverride, c.overrideSeg = true, SegSS
			continue
		case 0x3E: // DS:
			c.segOverride, c.overrideSeg = true, SegDS
			continue
		case 0xF0: // LOCK
			c.lockPrefix = true
			continue
		case 0xF2: // REPNE/REPNZ
			c.repPrefix = repNZ
			continue
		case 0xF3: // REP/REPE/REPZ
			c.repPrefix = repZ
			continue
		}

		if c.log != nil {
			c.log.step(c, opcode)
		}

		handler := c.baseOps[opcode]
		if handler == nil {
			if c.log != nil {
				c.log.undefined(c, opcode)
			}
			return // undefined opcode: benign no-op, still retires as one instruction
		}
		handler(c)
		return
	}
}
