package video

import (
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cbrook/nescore/nes"
	"github.com/cbrook/nescore/ppu"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// EbitenSink holds the most recently presented backdrop color, for
// Game.Draw to fill the window with.
type EbitenSink struct {
	last color.RGBA
}

func (s *EbitenSink) Present(c ppu.Color) {
	s.last = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Steppable is the subset of Nes's surface Game needs: something that
// can be pulled one NesStep at a time. Nes[V, I] satisfies this for
// any V, I, letting Game stay non-generic.
type Steppable interface {
	Steps() iter.Seq[nes.NesStep]
}

// Game drives a Nes to the next VBlank on every ebiten Update tick,
// and fills the window with the sink's backdrop color on Draw. Actual
// per-pixel compositing is out of scope; this exercises the Video
// capability end to end with the one color nescore resolves.
type Game struct {
	sink *EbitenSink
	pull iter.Seq[nes.NesStep]
}

// NewGame wraps n (any *nes.Nes[V, I] whose video sink is sink) as an
// ebiten.Game.
func NewGame(sink *EbitenSink, n Steppable) *Game {
	return &Game{sink: sink, pull: n.Steps()}
}

// Update pulls Steps() until the next VBlank, mirroring the
// resume-until-VBlank frame loop.
func (g *Game) Update() error {
	g.pull(func(s nes.NesStep) bool {
		if p, ok := s.(nes.PpuStep); ok && p.Vblank {
			return false
		}
		return true
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.sink.last)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
