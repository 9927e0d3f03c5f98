package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/princess/internal/runeio"
)

var (
	// ErrDivideByZero is returned by division or modulo with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrJumpUnderflow is returned by a return with no matching call.
	ErrJumpUnderflow = errors.New("jump stack underflow: return without call")

	// ErrNegativeCount is returned when a count operand, like a repeat or
	// list size, is negative.
	ErrNegativeCount = errors.New("negative count")
)

// AddressError indicates that the instruction pointer, or a literal scan,
// left the board.
type AddressError struct{ Pos Vec }

func (err AddressError) Error() string { return fmt.Sprintf("position %v is off the board", err.Pos) }

// DispatchError indicates an instruction with no entry in the dialect's table.
type DispatchError struct {
	Glyph    rune
	Velocity Vec
}

func (err DispatchError) Error() string {
	return fmt.Sprintf("bad function: %v (velocity %v)", runeio.Glyph(err.Glyph), err.Velocity)
}

// UnderflowError indicates that an instruction needed more values than the
// stack held.
type UnderflowError struct {
	Glyph rune
	Need  int
	Have  int
}

func (err UnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: %v needs %v values, have %v", runeio.Glyph(err.Glyph), err.Need, err.Have)
}

// IndexError indicates an index outside of a stack, text, or list.
type IndexError struct {
	Index int
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("index %v out of range for length %v", err.Index, err.Len)
}

// TypeError indicates operands of the wrong kind for an instruction.
type TypeError struct {
	Op   string
	Args []Value
}

func (err TypeError) Error() string {
	var sb strings.Builder
	sb.WriteString("type error: ")
	sb.WriteString(err.Op)
	sb.WriteString(" does not take ")
	for i, arg := range err.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.kind())
		sb.WriteByte(' ')
		sb.WriteString(render(arg))
	}
	return sb.String()
}

// StepError carries the instruction pointer state for a failed step.
type StepError struct {
	Pos      Vec
	Velocity Vec
	Glyph    rune
	Err      error
}

func (err *StepError) Error() string {
	if err.Glyph == 0 {
		return fmt.Sprintf("at %v: %v", err.Pos, err.Err)
	}
	return fmt.Sprintf("at %v %v: %v", err.Pos, runeio.Glyph(err.Glyph), err.Err)
}

func (err *StepError) Unwrap() error { return err.Err }

// ExitError is returned by Run when the program terminates with a non-zero
// exit code.
type ExitError int

func (code ExitError) Error() string { return fmt.Sprintf("exit status %d", int(code)) }

// haltError is returned by terminating instructions and unwinds the run loop.
type haltError struct{ code int }

func (err haltError) Error() string { return fmt.Sprintf("halted with exit code %d", err.code) }
