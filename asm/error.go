// Package asm contains the 6502 assembly toolchain used to build test
// programs and debug listings: a parser from source text to tokens, an
// assembler from tokens to machine code, and a disassembler back.
package asm

import "fmt"

// Stages that can report an Error.
const (
	StageParser    = "parser"
	StageAssembler = "assembler"
)

// An Error is a diagnostic from the parser or assembler, carrying the
// source line it was detected on.
type Error struct {
	Stage string
	Line  int
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Stage, e.Line, e.Msg)
}

func parserError(line int, format string, args ...any) *Error {
	return &Error{Stage: StageParser, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func assemblerError(line int, format string, args ...any) *Error {
	return &Error{Stage: StageAssembler, Line: line, Msg: fmt.Sprintf(format, args...)}
}
