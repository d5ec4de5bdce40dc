// Package cpu implements the MOS 6502-derived CPU core used by the
// NES: register file, flag semantics, the full documented addressing
// mode and instruction set, and reset/IRQ/NMI entry.
// https://www.nesdev.org/obelisk-6502-guide/
package cpu

import "fmt"

// Bus is the memory the CPU reads and writes through. Implemented by
// the nes package's bus facade; the CPU holds no owning reference to
// it and receives it as an argument to each Step.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

const stackPage = 0x0100

// 6502 interrupt vectors.
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

// CPU holds the MOS 6502 register file.
type CPU struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  Flags
}

// New constructs a CPU and loads the reset vector, matching power-on
// behavior observable on real hardware.
func New(bus Bus) *CPU {
	c := &CPU{
		S: 0xFD,
		P: FlagU | FlagB | FlagI,
	}
	c.PC = readU16(bus, vectorReset)
	return c
}

func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X S:%02X P:%s PC:%04X", c.A, c.X, c.Y, c.S, c.P, c.PC)
}

// Reset reloads PC from the reset vector and sets the interrupt
// disable flag, as the hardware reset line does.
func (c *CPU) Reset(bus Bus) {
	c.P.set(FlagI, true)
	c.PC = readU16(bus, vectorReset)
}

func readU16(bus Bus, addr uint16) uint16 {
	lo := uint16(bus.Read(addr))
	hi := uint16(bus.Read(addr + 1))
	return lo | hi<<8
}

// UnimplementedOpcodeError reports a byte the decoder has no entry
// for. Per spec this is fatal: the decoder is meant to be total over
// every opcode in the documented instruction set.
type UnimplementedOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unimplemented opcode %#02x at pc %#04x", e.Opcode, e.PC)
}

// Op is the decoded instruction produced by a Step: its mnemonic and
// the operand(s) in human-readable form, mirroring the disassembly
// output original_source's Op/Opcode Display impls produced.
type Op struct {
	Mnemonic string
	Mode     AddrMode
	Operand  uint16 // meaning depends on Mode; unused for Implicit/Accumulator
}

func (o Op) String() string {
	switch o.Mode {
	case Implicit, Accumulator:
		return o.Mnemonic
	case Immediate:
		return fmt.Sprintf("%s #$%02X", o.Mnemonic, o.Operand)
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", o.Mnemonic, o.Operand)
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", o.Mnemonic, o.Operand)
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", o.Mnemonic, o.Operand)
	case Absolute:
		return fmt.Sprintf("%s $%04X", o.Mnemonic, o.Operand)
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", o.Mnemonic, o.Operand)
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", o.Mnemonic, o.Operand)
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", o.Mnemonic, o.Operand)
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", o.Mnemonic, o.Operand)
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", o.Mnemonic, o.Operand)
	case Relative:
		return fmt.Sprintf("%s $%04X", o.Mnemonic, o.Operand)
	default:
		return o.Mnemonic
	}
}

// CpuStep is the value yielded by the bus stepper for each CPU
// instruction: the address the instruction started at and its
// decoded form.
type CpuStep struct {
	PC uint16
	Op Op
}

// Step executes exactly one instruction at PC, updates registers and
// flags per its semantics, and advances PC past it.
func (c *CPU) Step(bus Bus) CpuStep {
	startPC := c.PC
	opcode := bus.Read(c.PC)
	inst, ok := opcodeTable[opcode]
	if !ok {
		panic(&UnimplementedOpcodeError{PC: startPC, Opcode: opcode})
	}

	c.PC++
	operand, operandAddr := c.fetchOperand(bus, inst.mode)
	inst.exec(c, bus, inst.mode, operandAddr)

	return CpuStep{
		PC: startPC,
		Op: Op{Mnemonic: inst.name, Mode: inst.mode, Operand: operand},
	}
}

// NMI pushes PC and P (with B clear) and loads the NMI vector.
func (c *CPU) NMI(bus Bus) {
	c.interrupt(bus, vectorNMI, false)
}

// IRQ pushes PC and P (with B clear) and loads the IRQ vector, unless
// interrupts are disabled.
func (c *CPU) IRQ(bus Bus) {
	if c.P.has(FlagI) {
		return
	}
	c.interrupt(bus, vectorIRQ, false)
}

func (c *CPU) interrupt(bus Bus, vector uint16, brk bool) {
	c.pushU16(bus, c.PC)
	status := c.P
	status.set(FlagB, brk)
	c.pushU8(bus, status.Bits())
	c.P.set(FlagI, true)
	c.PC = readU16(bus, vector)
}

func boolFlag(v bool) Flags {
	if v {
		return FlagB
	}
	return 0
}

func (c *CPU) pushU8(bus Bus, v uint8) {
	bus.Write(stackPage|uint16(c.S), v)
	c.S--
}

func (c *CPU) popU8(bus Bus) uint8 {
	c.S++
	return bus.Read(stackPage | uint16(c.S))
}

func (c *CPU) pushU16(bus Bus, v uint16) {
	c.pushU8(bus, uint8(v>>8))
	c.pushU8(bus, uint8(v))
}

func (c *CPU) popU16(bus Bus) uint16 {
	lo := uint16(c.popU8(bus))
	hi := uint16(c.popU8(bus))
	return lo | hi<<8
}

func (c *CPU) setZN(v uint8) {
	c.P.set(FlagZ, v == 0)
	c.P.set(FlagN, v&0x80 != 0)
}
