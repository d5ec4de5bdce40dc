package mapper

import "github.com/cbrook/nescore/rom"

func init() {
	register(0, newNROM)
}

const (
	prgRAMSize = 8 * 1024
	chrRAMSize = 8 * 1024
)

// nrom implements mapper 0 (NROM): PRG-ROM mirrored across $8000-$FFFF
// when only one 16 KiB bank is present, an optional 8 KiB PRG-RAM
// window at $6000-$7FFF, and CHR-ROM or CHR-RAM mapped directly at
// $0000-$1FFF on the PPU bus.
type nrom struct {
	prg       []byte
	chr       []byte
	chrIsRAM  bool
	prgRAM    []byte
	mirroring rom.Mirroring
}

func newNROM(r *rom.ROM) Mapper {
	m := &nrom{
		prg:       r.PRG,
		mirroring: r.Header.Mirroring,
		prgRAM:    make([]byte, prgRAMSize),
	}
	if len(r.CHR) == 0 {
		m.chr = make([]byte, chrRAMSize)
		m.chrIsRAM = true
	} else {
		m.chr = r.CHR
	}
	return m
}

func (m *nrom) Mirroring() rom.Mirroring {
	return m.mirroring
}

func (m *nrom) ReadCPU(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		return m.prg[int(addr-0x8000)%len(m.prg)]
	default:
		return 0
	}
}

func (m *nrom) WriteCPU(addr uint16, v uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.prgRAM[addr-0x6000] = v
	default:
		// Writes to PRG-ROM are no-ops on real hardware.
	}
}

func (m *nrom) ReadPPU(addr uint16) uint8 {
	return m.chr[addr%uint16(len(m.chr))]
}

func (m *nrom) WritePPU(addr uint16, v uint8) {
	if m.chrIsRAM {
		m.chr[addr%uint16(len(m.chr))] = v
	}
}
