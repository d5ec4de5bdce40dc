package input

import "github.com/hajimehoshi/ebiten/v2"

// keys is the fixed key binding for port 1, in strobe-out order.
var keys = [8]ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// EbitenSource polls the host keyboard for controller 1 input.
type EbitenSource struct{}

func (EbitenSource) Poll() Buttons {
	return Buttons{
		A:      ebiten.IsKeyPressed(keys[0]),
		B:      ebiten.IsKeyPressed(keys[1]),
		Select: ebiten.IsKeyPressed(keys[2]),
		Start:  ebiten.IsKeyPressed(keys[3]),
		Up:     ebiten.IsKeyPressed(keys[4]),
		Down:   ebiten.IsKeyPressed(keys[5]),
		Left:   ebiten.IsKeyPressed(keys[6]),
		Right:  ebiten.IsKeyPressed(keys[7]),
	}
}

// NullSource reports no buttons pressed, for headless runs and
// benchmarks.
type NullSource struct{}

func (NullSource) Poll() Buttons { return Buttons{} }
