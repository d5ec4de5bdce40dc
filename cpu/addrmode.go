package cpu

// AddrMode identifies one of the 6502's addressing modes, used both
// to decode operand bytes and to disassemble an Op for display.
type AddrMode uint8

const (
	Implicit AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// fetchOperand consumes the operand bytes for mode at the current PC
// and returns a display value suitable for disassembly plus the
// value instructions should operate on: for Immediate and
// Accumulator this is the value itself (or unused), for every other
// mode it is the effective memory address.
func (c *CPU) fetchOperand(bus Bus, mode AddrMode) (display uint16, operand uint16) {
	switch mode {
	case Implicit, Accumulator:
		return 0, 0

	case Immediate:
		v := uint16(bus.Read(c.PC))
		c.PC++
		return v, v

	case ZeroPage:
		addr := uint16(bus.Read(c.PC))
		c.PC++
		return addr, addr

	case ZeroPageX:
		base := bus.Read(c.PC)
		c.PC++
		addr := uint16(base + c.X)
		return uint16(base), addr

	case ZeroPageY:
		base := bus.Read(c.PC)
		c.PC++
		addr := uint16(base + c.Y)
		return uint16(base), addr

	case Absolute:
		addr := readU16(bus, c.PC)
		c.PC += 2
		return addr, addr

	case AbsoluteX:
		base := readU16(bus, c.PC)
		c.PC += 2
		return base, base + uint16(c.X)

	case AbsoluteY:
		base := readU16(bus, c.PC)
		c.PC += 2
		return base, base + uint16(c.Y)

	case Indirect:
		ptr := readU16(bus, c.PC)
		c.PC += 2
		return ptr, readU16PageWrap(bus, ptr)

	case IndirectX:
		base := bus.Read(c.PC)
		c.PC++
		zp := base + c.X
		lo := uint16(bus.Read(uint16(zp)))
		hi := uint16(bus.Read(uint16(zp + 1)))
		return uint16(base), lo | hi<<8

	case IndirectY:
		base := bus.Read(c.PC)
		c.PC++
		lo := uint16(bus.Read(uint16(base)))
		hi := uint16(bus.Read(uint16(base + 1)))
		addr := (lo | hi<<8) + uint16(c.Y)
		return uint16(base), addr

	case Relative:
		offset := bus.Read(c.PC)
		c.PC++
		target := uint16(int32(c.PC) + int32(int8(offset)))
		return target, target

	default:
		return 0, 0
	}
}

// readU16PageWrap reproduces the indirect-JMP hardware bug: if the
// pointer's low byte is $xxFF, the high byte is fetched from $xx00
// rather than crossing into the next page.
func readU16PageWrap(bus Bus, ptr uint16) uint16 {
	lo := uint16(bus.Read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(bus.Read(hiAddr))
	return lo | hi<<8
}

func (c *CPU) loadValue(bus Bus, mode AddrMode, operand uint16) uint8 {
	switch mode {
	case Immediate:
		return uint8(operand)
	case Accumulator:
		return c.A
	default:
		return bus.Read(operand)
	}
}

func (c *CPU) storeValue(bus Bus, mode AddrMode, operand uint16, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	bus.Write(operand, v)
}
