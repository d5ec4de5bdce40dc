package cpu

import "testing"

// flatBus is a 64KiB byte array satisfying Bus, used to exercise the
// CPU in isolation from the rest of the bus/mapper stack.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8  { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU(resetVector uint16) (*CPU, *flatBus) {
	bus := &flatBus{}
	bus.mem[vectorReset] = uint8(resetVector)
	bus.mem[vectorReset+1] = uint8(resetVector >> 8)
	return New(bus), bus
}

func load(bus *flatBus, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		bus.mem[int(addr)+i] = b
	}
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU(0xC000)
	if c.PC != 0xC000 {
		t.Errorf("PC = %#04x, want 0xc000", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("S = %#02x, want 0xfd", c.S)
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	load(bus, 0x8000, 0xA9, 0x00) // LDA #$00
	c.Step(bus)
	if c.A != 0 || !c.P.has(FlagZ) || c.P.has(FlagN) {
		t.Errorf("A=%#02x P=%s, want A=0 Z set N clear", c.A, c.P)
	}

	c, bus = newTestCPU(0x8000)
	load(bus, 0x8000, 0xA9, 0x80) // LDA #$80
	c.Step(bus)
	if c.A != 0x80 || c.P.has(FlagZ) || !c.P.has(FlagN) {
		t.Errorf("A=%#02x P=%s, want A=0x80 Z clear N set", c.A, c.P)
	}
}

func TestZeroPageXWraps(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.X = 0xFF
	bus.mem[0x007F] = 0x42
	load(bus, 0x8000, 0xB5, 0x80) // LDA $80,X  -> zp addr wraps to 0x7F
	c.Step(bus)
	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42 (zero page wraparound)", c.A)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.mem[0x30FF] = 0x80
	bus.mem[0x3000] = 0x12 // hi byte fetched from $3000, NOT $3100
	bus.mem[0x3100] = 0xFF
	load(bus, 0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	c.Step(bus)
	if c.PC != 0x1280 {
		t.Errorf("PC = %#04x, want 0x1280 (page-wrap bug)", c.PC)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	load(bus, 0x8000, 0x20, 0x00, 0x90) // JSR $9000
	load(bus, 0x9000, 0x60)             // RTS

	startS := c.S
	c.Step(bus) // JSR
	if c.PC != 0x9000 {
		t.Fatalf("PC = %#04x after JSR, want 0x9000", c.PC)
	}
	c.Step(bus) // RTS
	if c.PC != 0x8003 {
		t.Errorf("PC = %#04x after RTS, want 0x8003", c.PC)
	}
	if c.S != startS {
		t.Errorf("S = %#02x after JSR/RTS round trip, want %#02x", c.S, startS)
	}
}

func TestPHPAlwaysSetsBAndU(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.P = FlagC // only carry set
	load(bus, 0x8000, 0x08) // PHP
	c.Step(bus)

	pushed := bus.mem[uint16(stackPage)|uint16(c.S+1)]
	if pushed&uint8(FlagB) == 0 || pushed&uint8(FlagU) == 0 {
		t.Errorf("pushed status = %#02x, want B and U both set", pushed)
	}
}

func TestPLPDiscardsB(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.pushU8(bus, 0xFF) // all bits set, including B
	load(bus, 0x8000, 0x28) // PLP
	c.Step(bus)

	if c.P.has(FlagB) {
		t.Errorf("P = %s, PLP must never set B", c.P)
	}
	if !c.P.has(FlagU) {
		t.Errorf("P = %s, U must read as always set", c.P)
	}
}

func TestBranchTaken(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.P.set(FlagZ, true)
	load(bus, 0x8000, 0xF0, 0x05) // BEQ +5
	c.Step(bus)
	if c.PC != 0x8007 {
		t.Errorf("PC = %#04x, want 0x8007", c.PC)
	}
}

func TestBranchBackwards(t *testing.T) {
	c, bus := newTestCPU(0x8010)
	c.P.set(FlagZ, true)
	load(bus, 0x8010, 0xF0, 0xFB) // BEQ -5
	c.Step(bus)
	if c.PC != 0x800D {
		t.Errorf("PC = %#04x, want 0x800d", c.PC)
	}
}

func TestADCOverflowAndCarry(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.A = 0x7F // +127
	load(bus, 0x8000, 0x69, 0x01) // ADC #1 -> signed overflow into negative
	c.Step(bus)
	if c.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", c.A)
	}
	if !c.P.has(FlagV) {
		t.Errorf("V flag not set on signed overflow")
	}
	if c.P.has(FlagC) {
		t.Errorf("C flag should not be set (no unsigned carry out)")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.A = 0x00
	c.P.set(FlagC, true) // no pending borrow
	load(bus, 0x8000, 0xE9, 0x01) // SBC #1
	c.Step(bus)
	if c.A != 0xFF {
		t.Errorf("A = %#02x, want 0xff", c.A)
	}
	if c.P.has(FlagC) {
		t.Errorf("C should be clear (borrow occurred)")
	}
}

func TestNMIPushesStateWithBClear(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.mem[vectorNMI] = 0x00
	bus.mem[vectorNMI+1] = 0x90
	c.PC = 0x1234
	c.P = FlagC

	c.NMI(bus)

	if c.PC != 0x9000 {
		t.Fatalf("PC = %#04x after NMI, want 0x9000", c.PC)
	}
	pushedStatus := bus.mem[stackPage|uint16(c.S+1)]
	if pushedStatus&uint8(FlagB) != 0 {
		t.Errorf("NMI must push status with B clear, got %#02x", pushedStatus)
	}
	retLo := bus.mem[stackPage|uint16(c.S+2)]
	retHi := bus.mem[stackPage|uint16(c.S+3)]
	if ret := uint16(retLo) | uint16(retHi)<<8; ret != 0x1234 {
		t.Errorf("pushed return address = %#04x, want 0x1234", ret)
	}
}

func TestIRQRespectsInterruptDisable(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.P.set(FlagI, true)
	c.PC = 0x5555
	c.IRQ(bus)
	if c.PC != 0x5555 {
		t.Errorf("PC = %#04x, IRQ should have been ignored while I set", c.PC)
	}
}

func TestUnimplementedOpcodePanics(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	load(bus, 0x8000, 0x02) // not in the legal opcode table

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unimplemented opcode")
		}
		if _, ok := r.(*UnimplementedOpcodeError); !ok {
			t.Errorf("recovered %T, want *UnimplementedOpcodeError", r)
		}
	}()
	c.Step(bus)
}

func TestStackWraps(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.S = 0x00
	c.pushU8(bus, 0x42)
	if c.S != 0xFF {
		t.Errorf("S = %#02x after push at 0x00, want wraparound to 0xff", c.S)
	}
	if bus.mem[stackPage] != 0x42 {
		t.Errorf("pushed byte not found at $0100")
	}
}
