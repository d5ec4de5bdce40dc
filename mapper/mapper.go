// Package mapper implements the cartridge-side address translation
// unit between CPU/PPU bus addresses and a ROM's PRG/CHR storage.
package mapper

import (
	"fmt"

	"github.com/cbrook/nescore/rom"
)

// Mapper is the capability set a cartridge exposes to the bus: CPU
// reads/writes in $6000-$FFFF and PPU reads/writes in $0000-$1FFF.
type Mapper interface {
	ReadCPU(addr uint16) uint8
	WriteCPU(addr uint16, v uint8)
	ReadPPU(addr uint16) uint8
	WritePPU(addr uint16, v uint8)
	Mirroring() rom.Mirroring
}

// UnsupportedMapperError reports an iNES mapper id nescore doesn't
// implement.
type UnsupportedMapperError struct {
	ID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("mapper: unsupported mapper id %d", e.ID)
}

type factory func(*rom.ROM) Mapper

var registry = map[uint8]factory{}

func register(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = f
}

// Get constructs the Mapper for r's mapper id.
func Get(r *rom.ROM) (Mapper, error) {
	f, ok := registry[r.Header.MapperID]
	if !ok {
		return nil, &UnsupportedMapperError{ID: r.Header.MapperID}
	}
	return f(r), nil
}
