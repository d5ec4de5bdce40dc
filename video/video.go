// Package video implements the frame sink nescore presents frames to:
// an ebiten-backed window, or a no-op sink for headless/benchmark runs.
package video

import "github.com/cbrook/nescore/ppu"

// NullSink discards every presented frame.
type NullSink struct{}

func (NullSink) Present(ppu.Color) {}
