package iapx86

import "testing"

// rmByte builds a ModR/M byte selecting a register-direct operand (mod=3),
// given the reg-field selector and the rm-field register index.
func rmByte(reg, rm byte) byte {
	return 0xC0 | reg<<3 | rm
}

func TestShiftSHLCarryAndZero(t *testing.T) {
	c := NewCPU()
	c.SetAL(0xC0)
	c.SetCL(2)
	copy(c.RAM(), []byte{0xD2, rmByte(4, 0)}) // SHL AL,CL
	c.Execute(1)
	if c.AL() != 0x00 {
		t.Fatalf("AL = %#02x, want 0x00", c.AL())
	}
	if !c.CF() {
		t.Fatal("CF must be set: the last bit shifted out of the top was 1")
	}
	if !c.ZF() {
		t.Fatal("ZF must be set: result is zero")
	}
}

func TestRotateRORMultiBit(t *testing.T) {
	c := NewCPU()
	c.SetAL(0x01)
	c.SetCL(2)
	copy(c.RAM(), []byte{0xD2, rmByte(1, 0)}) // ROR AL,CL
	c.Execute(1)
	if c.AL() != 0x40 {
		t.Fatalf("AL = %#02x, want 0x40 (0x01 rotated right 2 bits)", c.AL())
	}
	if c.CF() {
		t.Fatal("CF must be clear: the bit rotated out on the final step was 0")
	}
}

func TestMUL8(t *testing.T) {
	c := NewCPU()
	c.SetAL(20)
	c.SetBL(20)
	copy(c.RAM(), []byte{0xF6, rmByte(4, 3)}) // MUL BL
	c.Execute(1)
	if c.AX() != 400 {
		t.Fatalf("AX = %d, want 400", c.AX())
	}
	if !c.CF() || !c.OF() {
		t.Fatal("CF/OF must be set: 400 does not fit in AL")
	}
}

func TestIMUL8(t *testing.T) {
	c := NewCPU()
	c.SetAL(0xFE) // -2
	c.SetBL(0xFD) // -3
	copy(c.RAM(), []byte{0xF6, rmByte(5, 3)}) // IMUL BL
	c.Execute(1)
	if c.AX() != 6 {
		t.Fatalf("AX = %#04x, want 0x0006 ((-2)*(-3)=6)", c.AX())
	}
	if c.CF() || c.OF() {
		t.Fatal("CF/OF must be clear: 6 fits in a signed byte")
	}
}

func TestDIV8(t *testing.T) {
	c := NewCPU()
	c.SetAX(200)
	c.SetBL(6)
	copy(c.RAM(), []byte{0xF6, rmByte(6, 3)}) // DIV BL
	c.Execute(1)
	if c.AL() != 33 || c.AH() != 2 {
		t.Fatalf("AL=%d AH=%d, want AL=33 AH=2 (200/6)", c.AL(), c.AH())
	}
}

func TestIDIV8(t *testing.T) {
	c := NewCPU()
	c.SetAX(0xFF9C) // -100
	c.SetBL(7)
	copy(c.RAM(), []byte{0xF6, rmByte(7, 3)}) // IDIV BL
	c.Execute(1)
	if int8(c.AL()) != -14 || int8(c.AH()) != -2 {
		t.Fatalf("AL=%d AH=%d, want quotient -14 remainder -2 (-100/7)", int8(c.AL()), int8(c.AH()))
	}
}

func TestMUL16(t *testing.T) {
	c := NewCPU()
	c.SetAX(1000)
	c.SetBX(1000)
	copy(c.RAM(), []byte{0xF7, rmByte(4, 3)}) // MUL BX
	c.Execute(1)
	if c.AX() != 0x4240 || c.DX() != 0x000F {
		t.Fatalf("DX:AX = %#04x:%#04x, want 0x000F:0x4240 (1000*1000=1000000)", c.DX(), c.AX())
	}
	if !c.CF() || !c.OF() {
		t.Fatal("CF/OF must be set: the product does not fit in AX")
	}
}

func TestIMUL16(t *testing.T) {
	c := NewCPU()
	c.SetAX(0xFFFB) // -5
	c.SetBX(3)
	copy(c.RAM(), []byte{0xF7, rmByte(5, 3)}) // IMUL BX
	c.Execute(1)
	if c.AX() != 0xFFF1 || c.DX() != 0xFFFF {
		t.Fatalf("DX:AX = %#04x:%#04x, want 0xFFFF:0xFFF1 ((-5)*3=-15)", c.DX(), c.AX())
	}
	if c.CF() || c.OF() {
		t.Fatal("CF/OF must be clear: -15 fits in a signed word")
	}
}

func TestDIV16(t *testing.T) {
	c := NewCPU()
	c.SetDX(0)
	c.SetAX(100)
	c.SetBX(3)
	copy(c.RAM(), []byte{0xF7, rmByte(6, 3)}) // DIV BX
	c.Execute(1)
	if c.AX() != 33 || c.DX() != 1 {
		t.Fatalf("AX=%d DX=%d, want AX=33 DX=1 (100/3)", c.AX(), c.DX())
	}
}

func TestIDIV16(t *testing.T) {
	c := NewCPU()
	c.SetDX(0xFFFF)
	c.SetAX(0xFF9C) // DX:AX = -100
	c.SetBX(7)
	copy(c.RAM(), []byte{0xF7, rmByte(7, 3)}) // IDIV BX
	c.Execute(1)
	if int16(c.AX()) != -14 || int16(c.DX()) != -2 {
		t.Fatalf("AX=%d DX=%d, want quotient -14 remainder -2 (-100/7)", int16(c.AX()), int16(c.DX()))
	}
}
