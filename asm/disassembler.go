package asm

import (
	"fmt"

	"gones/cpu"
	"gones/mask"
)

// A Line is one disassembled instruction. Addr is the instruction's
// index in the listing, which is what the debug views key on.
type Line struct {
	Addr uint16
	Text string
}

// Disassemble decodes machine code back into source text, one Line
// per instruction, using the same surface syntax the parser accepts.
// A trailing truncated instruction is dropped.
func Disassemble(code []byte) []Line {
	var lines []Line
	var addr uint16

	for pos := 0; pos < len(code); {
		inst := cpu.Lookup(code[pos])
		pos++

		size := inst.Mode.OperandSize()
		if pos+size > len(code) {
			break
		}

		var operand uint16
		switch size {
		case 1:
			operand = uint16(code[pos])
		case 2:
			operand = mask.Word(code[pos+1], code[pos])
		}
		pos += size

		lines = append(lines, Line{Addr: addr, Text: format(inst, operand)})
		addr++
	}

	return lines
}

func format(inst cpu.Instruction, operand uint16) string {
	op := string(inst.Op)

	switch inst.Mode {
	case cpu.Implied:
		return op
	case cpu.Accumulator:
		return op + " A"
	case cpu.Immediate:
		return fmt.Sprintf("%s #$%02X", op, operand)
	case cpu.ZeroPage, cpu.Relative:
		return fmt.Sprintf("%s $%02X", op, operand)
	case cpu.ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", op, operand)
	case cpu.ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", op, operand)
	case cpu.Absolute:
		return fmt.Sprintf("%s $%04X", op, operand)
	case cpu.AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", op, operand)
	case cpu.AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", op, operand)
	case cpu.Indirect:
		return fmt.Sprintf("%s ($%04X)", op, operand)
	case cpu.IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", op, operand)
	case cpu.IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", op, operand)
	}
	return op
}
