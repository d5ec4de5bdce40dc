package debug

import (
	"iter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cbrook/nescore/nes"
)

// Model is the bubbletea model driving the debugger's breakpoint
// list, single-step, and run-to-break commands.
type Model struct {
	target Target
	pull   iter.Seq[nes.NesStep]

	breakpoints map[uint16]struct{}
	memLow      uint16
	memHigh     uint16

	lastPC  uint16
	lastOp  string
	stopped bool
	err     error
}

// New constructs a debugger Model over target.
func New(target Target) Model {
	return Model{
		target:      target,
		pull:        target.Steps(),
		breakpoints: make(map[uint16]struct{}),
		memLow:      0x8000,
		memHigh:     0x800F,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.lastPC = m.target.CPU().PC
		m.stepOne()
	case "r":
		m.lastPC = m.target.CPU().PC
		m.runToBreak()
	case "b":
		m.breakpoints[m.target.CPU().PC] = struct{}{}
	case "c":
		m.breakpoints = make(map[uint16]struct{})
	}
	return m, nil
}

// stepOne pulls exactly one CpuStep from the underlying sequence.
func (m *Model) stepOne() {
	m.pull(func(s nes.NesStep) bool {
		if cs, ok := s.(nes.CpuStep); ok {
			m.lastOp = cs.Op.String()
			return false
		}
		return true
	})
}

// runToBreak pulls CpuSteps until the CPU's PC lands on a registered
// breakpoint. With no breakpoints set, this steps exactly once (there
// is nothing to run to), matching the teacher's "(R)un" falling back
// to a single step when the break set is empty.
func (m *Model) runToBreak() {
	if len(m.breakpoints) == 0 {
		m.stepOne()
		return
	}
	m.pull(func(s nes.NesStep) bool {
		cs, ok := s.(nes.CpuStep)
		if !ok {
			return true
		}
		m.lastOp = cs.Op.String()
		if _, hit := m.breakpoints[m.target.CPU().PC]; hit {
			return false
		}
		return true
	})
}
