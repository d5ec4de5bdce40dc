// Package ppu implements the PPU register file, OAM, palette RAM,
// and frame/scanline/dot timing used to pace the outer emulator loop.
// Background and sprite pixel decode are out of scope; nescore only
// needs the register interface and the VBlank transition.
package ppu

import (
	"fmt"

	"github.com/cbrook/nescore/rom"
)

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	// FrameDots is the monotonic period of the PPU's dot counter:
	// 89,342 dots per frame.
	FrameDots = dotsPerScanline * scanlinesPerFrame

	// vblankScanline/vblankDot resolve the spec's open question on
	// which dot sets VBlank, following original_source's step_ppu
	// ("scanline == 240 && scanline_cycle == 1") rather than the more
	// commonly cited 241,1 convention.
	vblankScanline = 240
	vblankDot      = 1

	oamSize       = 256
	paletteSize   = 32
	nametableSize = 2048
)

// register offsets within the mirrored $2000-$2007 window.
const (
	regCtrl = iota
	regMask
	regStatus
	regOAMAddr
	regOAMData
	regScroll
	regAddr
	regData
)

// Bus is the PPU's view of cartridge pattern storage ($0000-$1FFF).
type Bus interface {
	ReadPPU(addr uint16) uint8
	WritePPU(addr uint16, v uint8)
}

// PPU holds the register file, OAM, nametables, and palette RAM.
//
// v/t/x follow the nesdev "loopy register" naming: v is the address
// PPUDATA reads/writes through, t accumulates PPUSCROLL/PPUADDR
// writes and PPUADDR's second write commits it to v, and x is fine X
// scroll. nescore doesn't fetch background tiles, but keeping the
// real register shape costs nothing and is what the debug dump pane
// inspects.
type PPU struct {
	bus       Bus
	mirroring rom.Mirroring

	Ctrl, Mask, Status Flags
	OAMAddr            uint8
	v, t               loopy
	x                  uint8
	latch              bool // shared write-toggle for $2005/$2006

	OAM        [oamSize]uint8
	paletteRAM [paletteSize]uint8
	nametables [nametableSize]uint8

	readBuffer uint8 // one-byte PPUDATA read delay

	Cycle uint64
}

// New constructs a PPU wired to bus for pattern-table access, using
// mirroring as dictated by the cartridge's iNES header.
func New(bus Bus, mirroring rom.Mirroring) *PPU {
	return &PPU{bus: bus, mirroring: mirroring}
}

func (p *PPU) String() string {
	return fmt.Sprintf("cycle:%d scanline:%d dot:%d ctrl:%02X mask:%02X status:%02X v:%04X(cx:%d cy:%d nt:%d,%d fy:%d)",
		p.Cycle, p.Scanline(), p.Dot(), p.Ctrl.Bits(), p.Mask.Bits(), p.Status.Bits(),
		p.v.data&0x7FFF, p.v.coarseX(), p.v.coarseY(), p.v.nametableX(), p.v.nametableY(), p.v.fineY())
}

// VRAMAddr is the current PPUDATA access address (the loopy v
// register, masked to its real 15 bits).
func (p *PPU) VRAMAddr() uint16 { return p.v.data & 0x7FFF }

// Scanline is the current raster line, derived from Cycle.
func (p *PPU) Scanline() int { return int((p.Cycle % FrameDots) / dotsPerScanline) }

// Dot is the current position within Scanline, derived from Cycle.
func (p *PPU) Dot() int { return int((p.Cycle % FrameDots) % dotsPerScanline) }

// Tick advances the PPU by one dot and reports whether this dot is
// the VBlank 0->1 transition.
func (p *PPU) Tick() bool {
	frameCycle := p.Cycle % FrameDots
	scanline := frameCycle / dotsPerScanline
	dot := frameCycle % dotsPerScanline
	p.Cycle++

	if scanline == vblankScanline && dot == vblankDot {
		p.Status.set(StatusVBlank, true)
		return true
	}
	return false
}

// GenerateNMI reports whether PPUCTRL currently requests an NMI at
// VBlank.
func (p *PPU) GenerateNMI() bool {
	return p.Ctrl.has(CtrlGenerateNMI)
}

// ReadRegister reads one of the memory-mapped PPU registers at a CPU
// address in $2000-$3FFF (mirrored every 8 bytes).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 7 {
	case regStatus:
		v := p.Status.Bits()
		p.Status.set(StatusVBlank, false)
		p.latch = false
		return v
	case regOAMData:
		return p.OAM[p.OAMAddr]
	case regData:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister writes one of the memory-mapped PPU registers at a
// CPU address in $2000-$3FFF (mirrored every 8 bytes).
func (p *PPU) WriteRegister(addr uint16, val uint8) {
	switch addr & 7 {
	case regCtrl:
		p.Ctrl = FromBits(val)
		p.t.data = p.t.data&^0x0C00 | uint16(val&0x03)<<10

	case regMask:
		p.Mask = FromBits(val)

	case regOAMAddr:
		p.OAMAddr = val

	case regOAMData:
		p.OAM[p.OAMAddr] = val
		p.OAMAddr++

	case regScroll:
		if !p.latch {
			p.x = val & 0x07
			p.t.setCoarseX(uint16(val) >> 3)
		} else {
			p.t.setFineY(uint16(val) & 0x07)
			p.t.setCoarseY(uint16(val) >> 3)
		}
		p.latch = !p.latch

	case regAddr:
		if !p.latch {
			p.t.data = p.t.data&0x00FF | uint16(val&0x3F)<<8
		} else {
			p.t.data = p.t.data&0xFF00 | uint16(val)
			p.v = p.t
		}
		p.latch = !p.latch

	case regData:
		p.WriteBus(p.v.data, val)
		p.incrementV()
	}
}

// readData implements PPUDATA's one-byte read delay: reads of
// pattern-table/nametable space return the previous read's buffered
// byte, while palette reads return immediately (and still refresh
// the buffer from the nametable mirror beneath the palette).
func (p *PPU) readData() uint8 {
	addr := p.v.data
	var val uint8
	if addr >= 0x3F00 {
		val = p.ReadBus(addr)
		p.readBuffer = p.ReadBus(addr - 0x1000)
	} else {
		val = p.readBuffer
		p.readBuffer = p.ReadBus(addr)
	}
	p.incrementV()
	return val
}

func (p *PPU) incrementV() {
	if p.Ctrl.has(CtrlVRAMIncrement) {
		p.v.data += 32
	} else {
		p.v.data++
	}
}

// ReadBus reads the PPU's own address space: pattern tables via the
// mapper, nametables with header-dictated mirroring, palette RAM with
// its mirror aliases.
func (p *PPU) ReadBus(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.bus.ReadPPU(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableIndex(addr)]
	default:
		return p.paletteRAM[paletteIndex(addr)]
	}
}

// WriteBus is ReadBus's write counterpart.
func (p *PPU) WriteBus(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.bus.WritePPU(addr, val)
	case addr < 0x3F00:
		p.nametables[p.nametableIndex(addr)] = val
	default:
		p.paletteRAM[paletteIndex(addr)] = val
	}
}

// nametableIndex folds a $2000-$3EFF address into the 2 KiB of
// physical nametable RAM per the cartridge's mirroring mode.
func (p *PPU) nametableIndex(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000 // fold the $3000-$3EFF mirror of $2000-$2FFF
	switch p.mirroring {
	case rom.Horizontal:
		if a >= 0x0800 {
			return 0x0400 + (a-0x0800)%0x0400
		}
		return a % 0x0400
	default: // Vertical, and FourScreen (no extra cartridge VRAM modeled)
		return a % 0x0800
	}
}

// paletteIndex applies the $3F10/$3F14/$3F18/$3F1C -> $3F00/.../$3F0C
// aliasing and the every-32-bytes mirror across $3F00-$3FFF.
func paletteIndex(addr uint16) uint16 {
	a := (addr - 0x3F00) % 0x20
	switch a {
	case 0x10, 0x14, 0x18, 0x1C:
		a -= 0x10
	}
	return a
}

// BackdropColor resolves the universal background color at palette
// RAM index 0, the only pixel data nescore's Video sink is fed.
func (p *PPU) BackdropColor() Color {
	return SystemPalette[p.paletteRAM[0]&0x3F]
}
