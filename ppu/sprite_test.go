package ppu

import "testing"

func TestSpritesDecodesAttributeByte(t *testing.T) {
	cases := []struct {
		attrib         uint8
		wantPalette    uint8
		wantPriority   SpritePriority
		wantFH, wantFV bool
	}{
		{0b11111111, 0x03, SpriteBehind, true, true},
		{0b01111111, 0x03, SpriteBehind, true, false},
		{0b00111111, 0x03, SpriteBehind, false, false},
		{0b00111101, 0x01, SpriteBehind, false, false},
		{0b00011101, 0x01, SpriteFront, false, false},
		{0b10011101, 0x01, SpriteFront, false, true},
		{0b10011110, 0x02, SpriteFront, false, true},
	}

	var p PPU
	for i, tc := range cases {
		p.OAM[2] = tc.attrib
		s := p.Sprites()[0]
		if s.Palette != tc.wantPalette || s.Priority != tc.wantPriority || s.FlipH != tc.wantFH || s.FlipV != tc.wantFV {
			t.Errorf("%d: got palette=%#x priority=%d flipH=%t flipV=%t, want %#x %d %t %t",
				i, s.Palette, s.Priority, s.FlipH, s.FlipV, tc.wantPalette, tc.wantPriority, tc.wantFH, tc.wantFV)
		}
	}
}

func TestSpriteYAndX(t *testing.T) {
	var p PPU
	p.OAM[0], p.OAM[1], p.OAM[3] = 0x40, 0x12, 0x80
	s := p.Sprites()[0]
	if s.Y != 0x40 || s.TileID != 0x12 || s.X != 0x80 {
		t.Errorf("got Y=%#x TileID=%#x X=%#x, want 0x40 0x12 0x80", s.Y, s.TileID, s.X)
	}
}
