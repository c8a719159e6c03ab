package asm

import (
	"fmt"

	"gones/cpu"
)

// TokenType discriminates the lexer's output.
type TokenType int

const (
	// TokenIdentifier is a mnemonic or register name: [A-Za-z0-9]+.
	TokenIdentifier TokenType = iota
	// TokenAddress is an operand with its addressing mode already
	// recognized from the surface syntax.
	TokenAddress
	// TokenEOF terminates every token stream.
	TokenEOF
)

// A Token is one element of the flat stream the parser emits. Address
// tokens carry the mode and value; identifiers carry their text. Every
// token remembers its source line for diagnostics.
type Token struct {
	Type  TokenType
	Text  string
	Mode  cpu.AddressingMode
	Value uint16
	Line  int
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return t.Text
	case TokenAddress:
		return fmt.Sprintf("%s(%#04x)", t.Mode, t.Value)
	default:
		return "EOF"
	}
}
