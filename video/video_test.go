package video

import (
	"testing"

	"github.com/cbrook/nescore/ppu"
)

func TestNullSinkDiscards(t *testing.T) {
	var s NullSink
	s.Present(ppu.Color{R: 1, G: 2, B: 3}) // must not panic
}

func TestEbitenSinkStoresLastColor(t *testing.T) {
	var s EbitenSink
	s.Present(ppu.Color{R: 0x10, G: 0x20, B: 0x30})
	if s.last.R != 0x10 || s.last.G != 0x20 || s.last.B != 0x30 || s.last.A != 0xFF {
		t.Errorf("last = %+v, want {10 20 30 ff}", s.last)
	}
}
