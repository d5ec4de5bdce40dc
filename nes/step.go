package nes

import (
	"fmt"
	"iter"

	"github.com/cbrook/nescore/cpu"
)

// NesStep is the stepper's event sum type: Go has no native enum
// payload, so CpuStep and PpuStep both implement it as a tagged
// wrapper the caller type-switches on.
type NesStep interface {
	isNesStep()
}

// CpuStep carries one executed instruction.
type CpuStep struct {
	cpu.CpuStep
}

func (CpuStep) isNesStep() {}

// PpuStep carries one PPU dot tick. Vblank is true exactly on the
// frame's single VBlank 0->1 transition dot.
type PpuStep struct {
	Vblank bool
}

func (PpuStep) isNesStep() {}

func (s CpuStep) String() string { return fmt.Sprintf("Cpu(%s)", s.CpuStep.Op) }
func (s PpuStep) String() string {
	if s.Vblank {
		return "Ppu(Vblank)"
	}
	return "Ppu"
}

// Steps is a lazy, infinite producer of NesStep: one CpuStep per CPU
// instruction, followed by exactly three PpuStep events, repeating.
// An NMI is raised into the CPU when a Vblank tick occurs and PPUCTRL
// requests it, and the video sink is presented the frame's backdrop
// color at that same transition. The caller stops pulling to
// terminate; there's no separate cancellation mechanism needed.
func (n *Nes[V, I]) Steps() iter.Seq[NesStep] {
	return func(yield func(NesStep) bool) {
		for {
			cs := n.cpu.Step(n)
			if !yield(CpuStep{cs}) {
				return
			}

			for i := 0; i < 3; i++ {
				vblank := n.ppu.Tick()
				if vblank {
					if n.ppu.GenerateNMI() {
						n.cpu.NMI(n)
					}
					n.video.Present(n.ppu.BackdropColor())
				}
				if !yield(PpuStep{Vblank: vblank}) {
					return
				}
			}
		}
	}
}
