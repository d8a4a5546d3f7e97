package iapx86

// Software interrupts: INT n, INTO, IRET, and the DIV/IDIV divide-error
// trap all share one vectoring mechanism — push FLAGS, CS, IP, clear
// IF/TF, then load the new CS:IP from the real-mode interrupt vector
// table resident in RAM at physical 0x00000 (4 bytes per vector: offset
// word then segment word). This is core ISA behavior, not a peripheral:
// no BIOS or interrupt controller is involved, only memory the core
// already owns.
func (c *CPU) interrupt(vector uint8) {
	c.push16(c.Flags())
	c.push16(c.CS())
	c.push16(c.ip)
	c.SetFlag(FlagIF, false)
	c.SetFlag(FlagTF, false)

	addr := uint32(vector) * 4
	off := c.ReadPhys16(addr)
	seg := c.ReadPhys16(addr + 2)
	c.SetCS(seg)
	c.SetIP(off)
}

// raiseDivideError vectors through interrupt 0, the documented 8086
// divide-error trap, raised whenever DIV/IDIV/AAM is given a divisor of
// zero or a quotient that does not fit the destination width.
func (c *CPU) raiseDivideError() {
	c.interrupt(0)
}

func opINT3(c *CPU) { c.interrupt(3) }

func opINT(c *CPU) {
	vector := c.fetch8()
	c.interrupt(vector)
}

func opINTO(c *CPU) {
	if c.OF() {
		c.interrupt(4)
	}
}

func opIRET(c *CPU) {
	ip := c.pop16()
	cs := c.pop16()
	flags := c.pop16()
	c.SetIP(ip)
	c.SetCS(cs)
	c.SetFlags(flags)
}

func opHLT(c *CPU) {
	c.halted = true
}
