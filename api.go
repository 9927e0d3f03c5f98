package main

import (
	"context"
	"io"

	"github.com/jcorbin/princess/internal/flushio"
	"github.com/jcorbin/princess/internal/panicerr"
)

// New creates a VM that will run the program in source. Unless options say
// otherwise, the instruction pointer starts at the top left corner moving
// right, with an empty stack, under the Extended dialect.
func New(source string, opts ...VMOption) *VM {
	vm := VM{
		board:   LoadBoard(source),
		dialect: Extended,
		vel:     Right,
	}
	vm.out = flushio.Discard
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Play runs the program until it terminates, returning its exit code. A
// non-nil error means the run was aborted by a fatal error (a *StepError
// for anything the program did), by ctx, or by a panic.
func (vm *VM) Play(ctx context.Context) (code int, err error) {
	err = panicerr.Recover("princess", func() (rerr error) {
		code, rerr = vm.play(ctx)
		return rerr
	})
	return code, err
}

// Run is like Play, but reports a non-zero exit code as an ExitError.
func (vm *VM) Run(ctx context.Context) error {
	code, err := vm.Play(ctx)
	if err == nil && code != 0 {
		err = ExitError(code)
	}
	return err
}

func WithInput(r io.Reader) VMOption    { return inputOption{r} }
func WithOutput(w io.Writer) VMOption   { return outputOption{w} }
func WithTee(w io.Writer) VMOption      { return teeOption{w} }
func WithDialect(d *Dialect) VMOption   { return withDialect{d} }
func WithAcceleration(on bool) VMOption { return withAcceleration(on) }
func WithStack(vals ...Value) VMOption  { return withStack(vals) }
func WithVelocity(v Vec) VMOption       { return withVelocity(v) }
func WithPosition(p Vec) VMOption       { return withPosition(p) }

// WithBoardTrace logs a rendering of the board, with the instruction
// pointer marked, before every traced step; highlight selects ANSI inverse
// video over a caret line.
func WithBoardTrace(highlight bool) VMOption { return withBoardTrace{highlight} }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
