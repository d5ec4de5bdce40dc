// Package nes wires the CPU, PPU, mapper, and input latch together
// behind a single memory-mapped bus facade, and drives them with a
// 1:3 CPU:PPU stepper.
package nes

import (
	"github.com/cbrook/nescore/cpu"
	"github.com/cbrook/nescore/input"
	"github.com/cbrook/nescore/mapper"
	"github.com/cbrook/nescore/ppu"
)

const (
	ramSize   = 2048
	oamDMALen = 256
)

// Video receives the one color nescore actually resolves per frame:
// the palette-RAM backdrop at VBlank. Real pixel compositing is out
// of scope; this still exercises the sink end to end.
type Video interface {
	Present(c ppu.Color)
}

// Input is the button-polling capability a frontend supplies; the
// bus wraps it in its own strobe Latch. Same method set as
// input.Source, named here so callers read it as a Nes capability.
type Input interface {
	Poll() input.Buttons
}

// Nes is the bus facade: RAM, CPU, PPU, mapper, and joypad latch, with
// no owning reference back out to them. It's generic over its video
// sink and input source; the sink is called through V on the Steps()
// loop, while the source is handed to the joypad latch, which holds it
// as an input.Source interface value.
type Nes[V Video, I Input] struct {
	ram    [ramSize]uint8
	cpu    *cpu.CPU
	ppu    *ppu.PPU
	mapper mapper.Mapper
	latch  *input.Latch
	video  V
}

// New constructs a Nes around m, presenting frames to video and
// polling inputSource for controller 1.
func New[V Video, I Input](m mapper.Mapper, video V, inputSource I) *Nes[V, I] {
	n := &Nes[V, I]{
		mapper: m,
		video:  video,
		latch:  input.New(inputSource),
	}
	n.ppu = ppu.New(m, m.Mirroring())
	n.cpu = cpu.New(n)
	return n
}

// CPU exposes the CPU for inspection (register/stack dumps, the
// debug package's panes).
func (n *Nes[V, I]) CPU() *cpu.CPU { return n.cpu }

// PPU exposes the PPU for inspection.
func (n *Nes[V, I]) PPU() *ppu.PPU { return n.ppu }

// Read implements cpu.Bus: the CPU-visible memory map.
func (n *Nes[V, I]) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return n.ram[addr&0x07FF]
	case addr < 0x4000:
		return n.ppu.ReadRegister(addr)
	case addr < 0x4016:
		return 0 // APU register stubs
	case addr == 0x4016:
		return n.latch.Read()
	case addr == 0x4017:
		return 0x40 // port 2 / frame counter stub, bit 6 set
	case addr < 0x4020:
		return 0
	default:
		return n.mapper.ReadCPU(addr)
	}
}

// Write implements cpu.Bus.
func (n *Nes[V, I]) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		n.ram[addr&0x07FF] = v
	case addr < 0x4000:
		n.ppu.WriteRegister(addr, v)
	case addr == 0x4014:
		n.oamDMA(v)
	case addr == 0x4016:
		n.latch.Write(v)
	case addr < 0x4020:
		// remaining APU registers and port 2: no-op
	default:
		n.mapper.WriteCPU(addr, v)
	}
}

// ReadU16 is the bus-level little-endian pair read used for reading
// operands and vectors that don't need the indirect-JMP page-wrap
// bug (that quirk lives in cpu's own addressing-mode decode).
func (n *Nes[V, I]) ReadU16(addr uint16) uint16 {
	lo := n.Read(addr)
	hi := n.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// oamDMA copies 256 bytes from CPU page v<<8 into OAM starting at the
// PPU's current OAMADDR, wrapping within the OAM table.
func (n *Nes[V, I]) oamDMA(page uint8) {
	base := uint16(page) << 8
	start := n.ppu.OAMAddr
	for i := 0; i < oamDMALen; i++ {
		n.ppu.OAM[uint8(int(start)+i)] = n.Read(base + uint16(i))
	}
}
