package cpu

// execFunc performs an instruction's effect given its decoded
// addressing mode and operand (an address, or the operand value
// itself for Immediate/Accumulator — see fetchOperand).
type execFunc func(c *CPU, bus Bus, mode AddrMode, operand uint16)

type opcodeInfo struct {
	name string
	mode AddrMode
	exec execFunc
}

var opcodeTable = map[uint8]opcodeInfo{}

func reg(opcode uint8, name string, mode AddrMode, fn execFunc) {
	opcodeTable[opcode] = opcodeInfo{name: name, mode: mode, exec: fn}
}

func init() {
	reg(0xA9, "LDA", Immediate, opLDA)
	reg(0xA5, "LDA", ZeroPage, opLDA)
	reg(0xB5, "LDA", ZeroPageX, opLDA)
	reg(0xAD, "LDA", Absolute, opLDA)
	reg(0xBD, "LDA", AbsoluteX, opLDA)
	reg(0xB9, "LDA", AbsoluteY, opLDA)
	reg(0xA1, "LDA", IndirectX, opLDA)
	reg(0xB1, "LDA", IndirectY, opLDA)

	reg(0xA2, "LDX", Immediate, opLDX)
	reg(0xA6, "LDX", ZeroPage, opLDX)
	reg(0xB6, "LDX", ZeroPageY, opLDX)
	reg(0xAE, "LDX", Absolute, opLDX)
	reg(0xBE, "LDX", AbsoluteY, opLDX)

	reg(0xA0, "LDY", Immediate, opLDY)
	reg(0xA4, "LDY", ZeroPage, opLDY)
	reg(0xB4, "LDY", ZeroPageX, opLDY)
	reg(0xAC, "LDY", Absolute, opLDY)
	reg(0xBC, "LDY", AbsoluteX, opLDY)

	reg(0x85, "STA", ZeroPage, opSTA)
	reg(0x95, "STA", ZeroPageX, opSTA)
	reg(0x8D, "STA", Absolute, opSTA)
	reg(0x9D, "STA", AbsoluteX, opSTA)
	reg(0x99, "STA", AbsoluteY, opSTA)
	reg(0x81, "STA", IndirectX, opSTA)
	reg(0x91, "STA", IndirectY, opSTA)

	reg(0x86, "STX", ZeroPage, opSTX)
	reg(0x96, "STX", ZeroPageY, opSTX)
	reg(0x8E, "STX", Absolute, opSTX)

	reg(0x84, "STY", ZeroPage, opSTY)
	reg(0x94, "STY", ZeroPageX, opSTY)
	reg(0x8C, "STY", Absolute, opSTY)

	reg(0xAA, "TAX", Implicit, opTAX)
	reg(0xA8, "TAY", Implicit, opTAY)
	reg(0x8A, "TXA", Implicit, opTXA)
	reg(0x98, "TYA", Implicit, opTYA)
	reg(0xBA, "TSX", Implicit, opTSX)
	reg(0x9A, "TXS", Implicit, opTXS)

	reg(0x48, "PHA", Implicit, opPHA)
	reg(0x08, "PHP", Implicit, opPHP)
	reg(0x68, "PLA", Implicit, opPLA)
	reg(0x28, "PLP", Implicit, opPLP)

	reg(0x29, "AND", Immediate, opAND)
	reg(0x25, "AND", ZeroPage, opAND)
	reg(0x35, "AND", ZeroPageX, opAND)
	reg(0x2D, "AND", Absolute, opAND)
	reg(0x3D, "AND", AbsoluteX, opAND)
	reg(0x39, "AND", AbsoluteY, opAND)
	reg(0x21, "AND", IndirectX, opAND)
	reg(0x31, "AND", IndirectY, opAND)

	reg(0x49, "EOR", Immediate, opEOR)
	reg(0x45, "EOR", ZeroPage, opEOR)
	reg(0x55, "EOR", ZeroPageX, opEOR)
	reg(0x4D, "EOR", Absolute, opEOR)
	reg(0x5D, "EOR", AbsoluteX, opEOR)
	reg(0x59, "EOR", AbsoluteY, opEOR)
	reg(0x41, "EOR", IndirectX, opEOR)
	reg(0x51, "EOR", IndirectY, opEOR)

	reg(0x09, "ORA", Immediate, opORA)
	reg(0x05, "ORA", ZeroPage, opORA)
	reg(0x15, "ORA", ZeroPageX, opORA)
	reg(0x0D, "ORA", Absolute, opORA)
	reg(0x1D, "ORA", AbsoluteX, opORA)
	reg(0x19, "ORA", AbsoluteY, opORA)
	reg(0x01, "ORA", IndirectX, opORA)
	reg(0x11, "ORA", IndirectY, opORA)

	reg(0x24, "BIT", ZeroPage, opBIT)
	reg(0x2C, "BIT", Absolute, opBIT)

	reg(0x69, "ADC", Immediate, opADC)
	reg(0x65, "ADC", ZeroPage, opADC)
	reg(0x75, "ADC", ZeroPageX, opADC)
	reg(0x6D, "ADC", Absolute, opADC)
	reg(0x7D, "ADC", AbsoluteX, opADC)
	reg(0x79, "ADC", AbsoluteY, opADC)
	reg(0x61, "ADC", IndirectX, opADC)
	reg(0x71, "ADC", IndirectY, opADC)

	reg(0xE9, "SBC", Immediate, opSBC)
	reg(0xE5, "SBC", ZeroPage, opSBC)
	reg(0xF5, "SBC", ZeroPageX, opSBC)
	reg(0xED, "SBC", Absolute, opSBC)
	reg(0xFD, "SBC", AbsoluteX, opSBC)
	reg(0xF9, "SBC", AbsoluteY, opSBC)
	reg(0xE1, "SBC", IndirectX, opSBC)
	reg(0xF1, "SBC", IndirectY, opSBC)

	reg(0xC9, "CMP", Immediate, opCMP)
	reg(0xC5, "CMP", ZeroPage, opCMP)
	reg(0xD5, "CMP", ZeroPageX, opCMP)
	reg(0xCD, "CMP", Absolute, opCMP)
	reg(0xDD, "CMP", AbsoluteX, opCMP)
	reg(0xD9, "CMP", AbsoluteY, opCMP)
	reg(0xC1, "CMP", IndirectX, opCMP)
	reg(0xD1, "CMP", IndirectY, opCMP)

	reg(0xE0, "CPX", Immediate, opCPX)
	reg(0xE4, "CPX", ZeroPage, opCPX)
	reg(0xEC, "CPX", Absolute, opCPX)

	reg(0xC0, "CPY", Immediate, opCPY)
	reg(0xC4, "CPY", ZeroPage, opCPY)
	reg(0xCC, "CPY", Absolute, opCPY)

	reg(0xE6, "INC", ZeroPage, opINC)
	reg(0xF6, "INC", ZeroPageX, opINC)
	reg(0xEE, "INC", Absolute, opINC)
	reg(0xFE, "INC", AbsoluteX, opINC)

	reg(0xE8, "INX", Implicit, opINX)
	reg(0xC8, "INY", Implicit, opINY)

	reg(0xC6, "DEC", ZeroPage, opDEC)
	reg(0xD6, "DEC", ZeroPageX, opDEC)
	reg(0xCE, "DEC", Absolute, opDEC)
	reg(0xDE, "DEC", AbsoluteX, opDEC)

	reg(0xCA, "DEX", Implicit, opDEX)
	reg(0x88, "DEY", Implicit, opDEY)

	reg(0x0A, "ASL", Accumulator, opASL)
	reg(0x06, "ASL", ZeroPage, opASL)
	reg(0x16, "ASL", ZeroPageX, opASL)
	reg(0x0E, "ASL", Absolute, opASL)
	reg(0x1E, "ASL", AbsoluteX, opASL)

	reg(0x4A, "LSR", Accumulator, opLSR)
	reg(0x46, "LSR", ZeroPage, opLSR)
	reg(0x56, "LSR", ZeroPageX, opLSR)
	reg(0x4E, "LSR", Absolute, opLSR)
	reg(0x5E, "LSR", AbsoluteX, opLSR)

	reg(0x2A, "ROL", Accumulator, opROL)
	reg(0x26, "ROL", ZeroPage, opROL)
	reg(0x36, "ROL", ZeroPageX, opROL)
	reg(0x2E, "ROL", Absolute, opROL)
	reg(0x3E, "ROL", AbsoluteX, opROL)

	reg(0x6A, "ROR", Accumulator, opROR)
	reg(0x66, "ROR", ZeroPage, opROR)
	reg(0x76, "ROR", ZeroPageX, opROR)
	reg(0x6E, "ROR", Absolute, opROR)
	reg(0x7E, "ROR", AbsoluteX, opROR)

	reg(0x4C, "JMP", Absolute, opJMP)
	reg(0x6C, "JMP", Indirect, opJMP)
	reg(0x20, "JSR", Absolute, opJSR)
	reg(0x60, "RTS", Implicit, opRTS)
	reg(0x40, "RTI", Implicit, opRTI)
	reg(0x00, "BRK", Implicit, opBRK)

	reg(0x90, "BCC", Relative, branch(func(c *CPU) bool { return !c.P.has(FlagC) }))
	reg(0xB0, "BCS", Relative, branch(func(c *CPU) bool { return c.P.has(FlagC) }))
	reg(0xF0, "BEQ", Relative, branch(func(c *CPU) bool { return c.P.has(FlagZ) }))
	reg(0x30, "BMI", Relative, branch(func(c *CPU) bool { return c.P.has(FlagN) }))
	reg(0xD0, "BNE", Relative, branch(func(c *CPU) bool { return !c.P.has(FlagZ) }))
	reg(0x10, "BPL", Relative, branch(func(c *CPU) bool { return !c.P.has(FlagN) }))
	reg(0x50, "BVC", Relative, branch(func(c *CPU) bool { return !c.P.has(FlagV) }))
	reg(0x70, "BVS", Relative, branch(func(c *CPU) bool { return c.P.has(FlagV) }))

	reg(0x18, "CLC", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagC, false) })
	reg(0xD8, "CLD", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagD, false) })
	reg(0x58, "CLI", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagI, false) })
	reg(0xB8, "CLV", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagV, false) })
	reg(0x38, "SEC", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagC, true) })
	reg(0xF8, "SED", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagD, true) })
	reg(0x78, "SEI", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.P.set(FlagI, true) })

	reg(0xEA, "NOP", Implicit, func(c *CPU, bus Bus, mode AddrMode, operand uint16) {})
}

func opLDA(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.A = c.loadValue(bus, mode, operand)
	c.setZN(c.A)
}

func opLDX(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.X = c.loadValue(bus, mode, operand)
	c.setZN(c.X)
}

func opLDY(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.Y = c.loadValue(bus, mode, operand)
	c.setZN(c.Y)
}

func opSTA(c *CPU, bus Bus, mode AddrMode, operand uint16) { bus.Write(operand, c.A) }
func opSTX(c *CPU, bus Bus, mode AddrMode, operand uint16) { bus.Write(operand, c.X) }
func opSTY(c *CPU, bus Bus, mode AddrMode, operand uint16) { bus.Write(operand, c.Y) }

func opTAX(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.X = c.A; c.setZN(c.X) }
func opTAY(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.Y = c.A; c.setZN(c.Y) }
func opTXA(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.A = c.X; c.setZN(c.A) }
func opTYA(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.A = c.Y; c.setZN(c.A) }
func opTSX(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.X = c.S; c.setZN(c.X) }
func opTXS(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.S = c.X }

func opPHA(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.pushU8(bus, c.A) }
func opPHP(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.pushU8(bus, uint8(c.P|FlagB|FlagU))
}
func opPLA(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.A = c.popU8(bus)
	c.setZN(c.A)
}
func opPLP(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.P = Flags(c.popU8(bus))&^FlagB | FlagU
}

func opAND(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.A &= c.loadValue(bus, mode, operand)
	c.setZN(c.A)
}

func opEOR(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.A ^= c.loadValue(bus, mode, operand)
	c.setZN(c.A)
}

func opORA(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.A |= c.loadValue(bus, mode, operand)
	c.setZN(c.A)
}

func opBIT(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	c.P.set(FlagZ, c.A&v == 0)
	c.P.set(FlagV, v&0x40 != 0)
	c.P.set(FlagN, v&0x80 != 0)
}

func opADC(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	c.adc(v)
}

func opSBC(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	c.adc(v ^ 0xFF)
}

func (c *CPU) adc(v uint8) {
	var carryIn uint16
	if c.P.has(FlagC) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(v) + carryIn
	result := uint8(sum)
	overflow := (^(c.A ^ v) & (c.A ^ result) & 0x80) != 0
	c.P.set(FlagC, sum > 0xFF)
	c.P.set(FlagV, overflow)
	c.A = result
	c.setZN(c.A)
}

func opCMP(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.compare(c.A, c.loadValue(bus, mode, operand)) }
func opCPX(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.compare(c.X, c.loadValue(bus, mode, operand)) }
func opCPY(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.compare(c.Y, c.loadValue(bus, mode, operand)) }

func (c *CPU) compare(reg, v uint8) {
	c.P.set(FlagC, reg >= v)
	c.setZN(reg - v)
}

func opINC(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := bus.Read(operand) + 1
	bus.Write(operand, v)
	c.setZN(v)
}

func opINX(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.X++; c.setZN(c.X) }
func opINY(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.Y++; c.setZN(c.Y) }

func opDEC(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := bus.Read(operand) - 1
	bus.Write(operand, v)
	c.setZN(v)
}

func opDEX(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.X--; c.setZN(c.X) }
func opDEY(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.Y--; c.setZN(c.Y) }

func opASL(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	c.P.set(FlagC, v&0x80 != 0)
	v <<= 1
	c.storeValue(bus, mode, operand, v)
	c.setZN(v)
}

func opLSR(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	c.P.set(FlagC, v&0x01 != 0)
	v >>= 1
	c.storeValue(bus, mode, operand, v)
	c.setZN(v)
}

func opROL(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	var carryIn uint8
	if c.P.has(FlagC) {
		carryIn = 1
	}
	c.P.set(FlagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.storeValue(bus, mode, operand, v)
	c.setZN(v)
}

func opROR(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	v := c.loadValue(bus, mode, operand)
	var carryIn uint8
	if c.P.has(FlagC) {
		carryIn = 0x80
	}
	c.P.set(FlagC, v&0x01 != 0)
	v = v>>1 | carryIn
	c.storeValue(bus, mode, operand, v)
	c.setZN(v)
}

func opJMP(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.PC = operand }

func opJSR(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.pushU16(bus, c.PC-1)
	c.PC = operand
}

func opRTS(c *CPU, bus Bus, mode AddrMode, operand uint16) { c.PC = c.popU16(bus) + 1 }

func opRTI(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.P = Flags(c.popU8(bus))&^FlagB | FlagU
	c.PC = c.popU16(bus)
}

func opBRK(c *CPU, bus Bus, mode AddrMode, operand uint16) {
	c.PC++ // BRK's padding byte
	c.pushU16(bus, c.PC)
	c.pushU8(bus, uint8(c.P|FlagB|FlagU))
	c.P.set(FlagI, true)
	c.PC = readU16(bus, vectorIRQ)
}

func branch(cond func(c *CPU) bool) execFunc {
	return func(c *CPU, bus Bus, mode AddrMode, operand uint16) {
		if cond(c) {
			c.PC = operand
		}
	}
}
