// Package debug implements an interactive TUI debugger over a running
// Nes: breakpoints, single-step, run-to-break, and register/stack/
// memory/OAM inspection panes.
package debug

import (
	"iter"

	"github.com/cbrook/nescore/cpu"
	"github.com/cbrook/nescore/nes"
	"github.com/cbrook/nescore/ppu"
)

// Target is the capability set the debugger needs from a running Nes;
// any instantiation of nes.Nes[V, I] satisfies it.
type Target interface {
	CPU() *cpu.CPU
	PPU() *ppu.PPU
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	ReadU16(addr uint16) uint16
	Steps() iter.Seq[nes.NesStep]
}

// stackBytes reads the 3 bytes above the current stack pointer, the
// debugger's "last 3 items on the stack" view.
func stackBytes(t Target) [3]uint8 {
	s := t.CPU().S
	var out [3]uint8
	for i := range out {
		out[i] = t.Read(0x0100 | uint16(uint8(int(s)+1+i)))
	}
	return out
}

// memoryRange reads [low, high] inclusive. If high is below low the
// two bounds are swapped; the range never wraps past $FFFF.
func memoryRange(t Target, low, high uint16) []uint8 {
	if high < low {
		low, high = high, low
	}
	out := make([]uint8, 0, int(high-low)+1)
	for addr := low; ; addr++ {
		out = append(out, t.Read(addr))
		if addr == high {
			break
		}
	}
	return out
}
