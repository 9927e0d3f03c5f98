package main

import (
	"context"
	"errors"
	"strings"

	"github.com/jcorbin/princess/internal/logio"
	"github.com/jcorbin/princess/internal/runeio"
)

// VM runs a program: an instruction pointer moving over a Board, executing
// the rune under it, with a value stack and a jump stack for call and
// return.
type VM struct {
	ioCore

	dialect    *Dialect
	accelerate bool

	board Board
	pos   Vec // the cell being executed
	vel   Vec
	glyph rune // the instruction being executed

	stack Stack
	jumps jumpStack

	// ctx bounds blocking input while playing
	ctx context.Context

	steps      uint
	traceBoard bool
	highlight  bool
}

func (vm *VM) play(ctx context.Context) (code int, err error) {
	vm.ctx = ctx
	defer func() {
		if ferr := vm.flush(); err == nil {
			err = ferr
		}
	}()

	vm.logf("play %v dialect from %v moving %v with stack %v", vm.dialect, vm.pos, vm.vel, render(List(vm.stack)))

	// back off so that the first step lands on the starting cell
	vm.pos = vm.pos.Sub(vm.vel)

	for {
		if err := ctx.Err(); err != nil {
			vm.logf("halt after %v steps: %v", vm.steps, err)
			return 0, err
		}
		if err := vm.step(); err != nil {
			var halt haltError
			if errors.As(err, &halt) {
				vm.logf("halt after %v steps with exit code %v", vm.steps, halt.code)
				return halt.code, nil
			}
			vm.logf("halt after %v steps: %v", vm.steps, err)
			return 0, err
		}
	}
}

// step moves the instruction pointer once and executes what it lands on:
// digits and quoted text are literals, everything else is dispatched
// through the dialect's table.
func (vm *VM) step() error {
	vm.steps++
	vm.glyph = 0
	vm.pos = vm.pos.Add(vm.vel)
	r, err := vm.board.At(vm.pos)
	if err != nil {
		return vm.stepError(err)
	}
	vm.glyph = r

	if vm.logfn != nil {
		vm.trace()
	}

	switch {
	case '0' <= r && r <= '9':
		vm.stack.Push(Int(r - '0'))

	case r == '"':
		text, err := vm.scanText()
		if err != nil {
			vm.glyph = 0
			return vm.stepError(err)
		}
		vm.stack.Push(text)

	default:
		if err := vm.dispatch(r); err != nil {
			if _, isHalt := err.(haltError); isHalt {
				return err
			}
			return vm.stepError(err)
		}
	}
	return nil
}

// scanText accumulates runes up to the closing quote. There are no escapes.
func (vm *VM) scanText() (Text, error) {
	var sb strings.Builder
	for {
		vm.pos = vm.pos.Add(vm.vel)
		r, err := vm.board.At(vm.pos)
		if err != nil {
			return "", err
		}
		if r == '"' {
			return Text(sb.String()), nil
		}
		sb.WriteRune(r)
	}
}

// dispatch checks the instruction's arity against the stack, pops its
// operands top first, and executes it. A failed instruction leaves the stack
// as it found it.
func (vm *VM) dispatch(r rune) error {
	in, defined := vm.dialect.ops[r]
	if !defined {
		return DispatchError{Glyph: r, Velocity: vm.vel}
	}
	if have := vm.stack.Len(); have < in.arity {
		return UnderflowError{Glyph: r, Need: in.arity, Have: have}
	}
	args := vm.stack.popArgs(in.arity)
	err := in.exec(vm, args)
	if err != nil {
		if _, isHalt := err.(haltError); !isHalt {
			vm.stack.unpopArgs(args)
		}
	}
	return err
}

func (vm *VM) stepError(err error) error {
	return &StepError{
		Pos:      vm.pos,
		Velocity: vm.vel,
		Glyph:    vm.glyph,
		Err:      err,
	}
}

func (vm *VM) setVelocity(dir Vec) {
	if vm.accelerate {
		vm.vel = Accelerate(vm.vel, dir)
	} else {
		vm.vel = dir
	}
}

func (vm *VM) halt(code int) error {
	return haltError{code}
}

func (vm *VM) trace() {
	vm.logf("exec #%v %v %v vel=%v stack=%v",
		vm.steps, vm.pos, runeio.Glyph(vm.glyph), vm.vel, render(List(vm.stack)))
	if vm.traceBoard {
		lw := logio.Writer{Logf: vm.logfn}
		vmDumper{vm: vm, out: &lw, highlight: vm.highlight}.dumpBoard()
		lw.Flush()
	}
}
