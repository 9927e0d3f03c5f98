package main

import (
	"io"

	"github.com/jcorbin/princess/internal/flushio"
)

// VMOption configures a VM under New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var res vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withDialect struct{ *Dialect }
type withAcceleration bool
type withStack []Value
type withVelocity Vec
type withPosition Vec
type withBoardTrace struct{ highlight bool }

func (i inputOption) apply(vm *VM) {
	vm.in.Queue = append(vm.in.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (d withDialect) apply(vm *VM) {
	if d.Dialect != nil {
		vm.dialect = d.Dialect
	}
}

func (accel withAcceleration) apply(vm *VM) { vm.accelerate = bool(accel) }
func (vals withStack) apply(vm *VM)         { vm.stack.Push(vals...) }
func (v withVelocity) apply(vm *VM)         { vm.vel = Vec(v) }
func (p withPosition) apply(vm *VM)         { vm.pos = Vec(p) }

func (bt withBoardTrace) apply(vm *VM) {
	vm.traceBoard = true
	vm.highlight = bt.highlight
}
