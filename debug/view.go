package debug

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

func (m Model) registerPane() string {
	c := m.target.CPU()
	return fmt.Sprintf("PC:%04X (was %04X)\nA:%02X X:%02X Y:%02X S:%02X\nP:%s\nlast: %s",
		c.PC, m.lastPC, c.A, c.X, c.Y, c.S, c.P, m.lastOp)
}

func (m Model) stackPane() string {
	b := stackBytes(m.target)
	return fmt.Sprintf("stack+1..3: %02X %02X %02X", b[0], b[1], b[2])
}

func (m Model) memoryPane() string {
	bytes := memoryRange(m.target, m.memLow, m.memHigh)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04X: ", m.memLow)
	for i, b := range bytes {
		if i > 0 && i%8 == 0 {
			fmt.Fprintf(&sb, "\n%04X: ", int(m.memLow)+i)
		}
		fmt.Fprintf(&sb, "%02X ", b)
	}
	return sb.String()
}

func (m Model) oamPane() string {
	sprites := m.target.PPU().Sprites()
	var sb strings.Builder
	for i := 0; i < 8; i++ { // first 8 sprites is plenty for a pane
		s := sprites[i]
		fmt.Fprintf(&sb, "#%d y:%d x:%d tile:%02X pal:%d pri:%d flip:%t,%t\n",
			i, s.Y, s.X, s.TileID, s.Palette, s.Priority, s.FlipH, s.FlipV)
	}
	return sb.String()
}

func (m Model) breakpointsPane() string {
	if len(m.breakpoints) == 0 {
		return "(no breakpoints)"
	}
	var sb strings.Builder
	for addr := range m.breakpoints {
		fmt.Fprintf(&sb, "%04X\n", addr)
	}
	return sb.String()
}

func (m Model) ppuPane() string {
	return m.target.PPU().String()
}

func (m Model) View() string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.registerPane(), "  ", m.stackPane(), "  ", m.breakpointsPane())
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		"",
		m.ppuPane(),
		"",
		m.memoryPane(),
		"",
		m.oamPane(),
		"",
		"s:step  r:run-to-break  b:set breakpoint at PC  c:clear breakpoints  q:quit",
		"",
		spew.Sdump(m.target.CPU()),
	)
}
