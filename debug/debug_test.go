package debug

import (
	"testing"

	"github.com/cbrook/nescore/input"
	"github.com/cbrook/nescore/mapper"
	"github.com/cbrook/nescore/nes"
	"github.com/cbrook/nescore/rom"
	"github.com/cbrook/nescore/video"
)

func testTarget(t *testing.T, prg map[uint16]uint8) *nes.Nes[video.NullSink, input.NullSource] {
	t.Helper()
	prgBytes := make([]byte, 16*1024)
	prgBytes[0x3FFC], prgBytes[0x3FFD] = 0x00, 0x80 // default reset vector -> $8000
	for addr, v := range prg {
		prgBytes[(addr-0x8000)%0x4000] = v
	}
	r := &rom.ROM{Header: rom.Header{MapperID: 0, PRGPages: 1}, PRG: prgBytes}
	m, err := mapper.Get(r)
	if err != nil {
		t.Fatal(err)
	}
	return nes.New[video.NullSink, input.NullSource](m, video.NullSink{}, input.NullSource{})
}

func TestStepOneAdvancesPC(t *testing.T) {
	n := testTarget(t, map[uint16]uint8{0x8000: 0xEA, 0x8001: 0xEA}) // NOP NOP
	m := New(n)

	before := n.CPU().PC
	m.stepOne()
	if n.CPU().PC != before+1 {
		t.Errorf("PC after stepOne = %#04x, want %#04x", n.CPU().PC, before+1)
	}
}

func TestRunToBreakStopsAtBreakpoint(t *testing.T) {
	// NOP at 8000, 8001, 8002; the run stops before the NOP at 8002 executes.
	n := testTarget(t, map[uint16]uint8{0x8000: 0xEA, 0x8001: 0xEA, 0x8002: 0xEA})
	m := New(n)
	m.breakpoints[0x8002] = struct{}{}

	m.runToBreak()
	if n.CPU().PC != 0x8002 {
		t.Errorf("PC after runToBreak = %#04x, want 0x8002", n.CPU().PC)
	}
}

func TestStackBytesReadsAboveSP(t *testing.T) {
	n := testTarget(t, map[uint16]uint8{0x8000: 0xEA})
	n.Write(0x01FE, 0x11)
	n.Write(0x01FF, 0x22)
	n.Write(0x0100, 0x33)

	b := stackBytes(n) // S starts at 0xFD, so S+1..S+3 = 0xFE, 0xFF, 0x00
	if b[0] != 0x11 || b[1] != 0x22 || b[2] != 0x33 {
		t.Errorf("stackBytes = %v, want [11 22 33]", b)
	}
}

func TestMemoryRange(t *testing.T) {
	n := testTarget(t, map[uint16]uint8{0x8000: 0x01, 0x8001: 0x02, 0x8002: 0x03})
	got := memoryRange(n, 0x8000, 0x8002)
	want := []uint8{0x01, 0x02, 0x03}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("memoryRange[%d] = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
