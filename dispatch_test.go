package iapx86

import "testing"

// loadAndRun writes code at CS:IP=0 and executes n instructions.
func loadAndRun(t *testing.T, code []byte, n int) *CPU {
	t.Helper()
	c := NewCPU()
	copy(c.RAM(), code)
	c.Execute(n)
	return c
}

func TestS1_MOVAXImm(t *testing.T) {
	c := loadAndRun(t, []byte{0xB8, 0x34, 0x12}, 1)
	if c.AX() != 0x1234 {
		t.Fatalf("AX = %#04x, want 0x1234", c.AX())
	}
	if c.IP() != 3 {
		t.Fatalf("IP = %d, want 3", c.IP())
	}
}

func TestS2_ADDALOverflowThenZero(t *testing.T) {
	c := loadAndRun(t, []byte{0x04, 0xFF, 0x04, 0x01}, 1)
	if c.AL() != 0xFF || !c.SF() || c.ZF() || c.CF() || c.OF() || !c.PF() {
		t.Fatalf("after ADD AL,0xFF: AL=%#02x SF=%v ZF=%v CF=%v OF=%v PF=%v",
			c.AL(), c.SF(), c.ZF(), c.CF(), c.OF(), c.PF())
	}
	c.Execute(1) // ADD AL,0x01 continues at IP=2
	if c.AL() != 0x00 || !c.ZF() || !c.CF() || !c.AF() || !c.PF() || c.SF() {
		t.Fatalf("after ADD AL,0x01: AL=%#02x ZF=%v CF=%v AF=%v PF=%v SF=%v",
			c.AL(), c.ZF(), c.CF(), c.AF(), c.PF(), c.SF())
	}
}

func TestS3_SignedOverflow(t *testing.T) {
	c := loadAndRun(t, []byte{0xB0, 0x7F, 0x04, 0x01}, 2)
	if c.AL() != 0x80 || !c.SF() || !c.OF() || c.CF() || c.ZF() {
		t.Fatalf("AL=%#02x SF=%v OF=%v CF=%v ZF=%v", c.AL(), c.SF(), c.OF(), c.CF(), c.ZF())
	}
}

func TestS4_SimpleSubtract(t *testing.T) {
	c := loadAndRun(t, []byte{0xB0, 0x05, 0x2C, 0x03}, 2)
	if c.AL() != 2 || c.CF() || c.ZF() || c.SF() || c.OF() {
		t.Fatalf("AL=%#02x CF=%v ZF=%v SF=%v OF=%v", c.AL(), c.CF(), c.ZF(), c.SF(), c.OF())
	}
}

func TestS5_SubtractBorrow(t *testing.T) {
	c := loadAndRun(t, []byte{0xB0, 0x03, 0x2C, 0x05}, 2)
	if c.AL() != 0xFE || !c.CF() || !c.SF() || c.OF() || !c.AF() {
		t.Fatalf("AL=%#02x CF=%v SF=%v OF=%v AF=%v", c.AL(), c.CF(), c.SF(), c.OF(), c.AF())
	}
}

func TestS6_SegmentOverrideRead(t *testing.T) {
	c := NewCPU()
	c.SetES(0x1000)
	c.Write16(0x1000, 0x0000, 0xBEEF)
	copy(c.RAM(), []byte{0x26, 0xA1, 0x00, 0x00})
	c.Execute(1)
	if c.AX() != 0xBEEF {
		t.Fatalf("AX = %#04x, want 0xBEEF", c.AX())
	}
	if c.segOverride {
		t.Fatal("segOverride must be cleared after the instruction completes")
	}
}

func TestS7_ConditionalJump(t *testing.T) {
	// XOR AX,AX ; JZ +2 ; EB FE (stray) ; NOP
	c := loadAndRun(t, []byte{0x33, 0xC0, 0x74, 0x02, 0xEB, 0xFE, 0x90}, 1)
	if !c.ZF() {
		t.Fatal("XOR AX,AX must set ZF")
	}
	c.Execute(1) // JZ +2, from IP=4 would land on IP=6 (the NOP)
	if c.IP() != 6 {
		t.Fatalf("IP = %d, want 6 (landed on NOP, skipping EB FE)", c.IP())
	}
	c.Execute(1) // NOP must not fault
	if c.IP() != 7 {
		t.Fatalf("IP after NOP = %d, want 7", c.IP())
	}
}

func TestS8_REPECMPSB(t *testing.T) {
	c := NewCPU()
	c.SetBX(0x0200)
	c.SetCX(5)
	c.SetSI(0x0010)
	c.SetDI(0) // ES:DI defaults to segment 0
	for i := 0; i < 5; i++ {
		c.Write8(c.DS(), 0x0010+uint16(i), byte(0x41+i))
		c.Write8(c.ES(), uint16(i), byte(0x41+i))
	}
	copy(c.RAM()[0x100:], []byte{0xFC, 0xF3, 0xA6}) // CLD ; REPE CMPSB
	c.SetCS(0)
	c.SetIP(0x100)
	c.Execute(2)
	if c.CX() != 0 {
		t.Fatalf("CX = %d, want 0 (all 5 bytes matched)", c.CX())
	}
	if c.SI() != 0x0015 || c.DI() != 5 {
		t.Fatalf("SI=%#04x DI=%#04x, want SI=0x15 DI=5", c.SI(), c.DI())
	}
	if !c.ZF() {
		t.Fatal("ZF must be set: all compared bytes were equal")
	}
}

func TestS9_DivideByZeroTraps(t *testing.T) {
	c := NewCPU()
	// Interrupt vector 0 at physical 0: offset 0x5000, segment 0x0700.
	c.WritePhys8(0, 0x00)
	c.WritePhys8(1, 0x50)
	c.WritePhys8(2, 0x00)
	c.WritePhys8(3, 0x07)
	c.SetSS(0x2000)
	c.SetSP(0x100)
	c.SetAX(1)
	c.SetBX(0) // BL = 0
	copy(c.RAM()[0x100:], []byte{0xF6, 0xF3}) // DIV BL, clear of the vector table
	c.SetIP(0x100)
	c.Execute(1)
	if c.CS() != 0x0700 || c.IP() != 0x5000 {
		t.Fatalf("did not vector through INT 0: CS=%#04x IP=%#04x", c.CS(), c.IP())
	}
}

func TestS10_PushBPFrame(t *testing.T) {
	c := NewCPU()
	c.SetSS(0)
	c.SetSP(0x200)
	c.SetBP(0xAAAA)
	spBefore := c.SP()
	// PUSH BP ; MOV BP,SP ; MOV SP,BP ; POP BP
	copy(c.RAM(), []byte{0x55, 0x89, 0xE5, 0x89, 0xEC, 0x5D})
	c.Execute(4)
	if c.SP() != spBefore {
		t.Fatalf("SP = %#04x, want %#04x (restored)", c.SP(), spBefore)
	}
	if c.BP() != 0xAAAA {
		t.Fatalf("BP = %#04x, want 0xAAAA (restored)", c.BP())
	}
}

func TestUndefinedOpcodeIsNoOp(t *testing.T) {
	c := NewCPU()
	c.RAM()[0] = 0xC0 // 80186+ imm8-count shift form: not wired in this core
	c.RAM()[1] = 0x90 // NOP, must still execute normally afterward
	c.Execute(1)
	if c.IP() != 1 {
		t.Fatalf("undefined opcode must still advance IP past itself: IP=%d", c.IP())
	}
	c.Execute(1)
	if c.IP() != 2 {
		t.Fatalf("IP after following NOP = %d, want 2", c.IP())
	}
}
