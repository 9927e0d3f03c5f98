package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/princess/internal/logio"
	"github.com/jcorbin/princess/internal/panicerr"
	"github.com/jcorbin/princess/internal/runeio"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	source  string
	opts    []interface{}
	ops     string
	expect  []func(t *testing.T, vm *VM, code int)
	timeout time.Duration

	wantErr     error
	wantErrLike func(err error) bool

	exclusive   bool
	nextInputID int
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withSource(lines ...string) vmTestCase {
	vmt.source = strings.Join(lines, "\n")
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...Value) vmTestCase {
	vmt.opts = append(vmt.opts, WithStack(values...))
	return vmt
}

func (vmt vmTestCase) withInts(values ...int) vmTestCase {
	return vmt.withStack(ints(values...)...)
}

func (vmt vmTestCase) withDialect(d *Dialect) vmTestCase {
	vmt.opts = append(vmt.opts, WithDialect(d))
	return vmt
}

func (vmt vmTestCase) withAcceleration() vmTestCase {
	vmt.opts = append(vmt.opts, WithAcceleration(true))
	return vmt
}

func (vmt vmTestCase) withVelocity(v Vec) vmTestCase {
	vmt.opts = append(vmt.opts, WithVelocity(v))
	return vmt
}

func (vmt vmTestCase) withPosition(p Vec) vmTestCase {
	vmt.opts = append(vmt.opts, WithPosition(p))
	return vmt
}

func (vmt vmTestCase) withJumps(pos Vec, vel Vec) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.jumps.push(pos, vel)
	}))
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		name := t.Name() + "/input"
		if id := vmt.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		vmt.nextInputID++
		return WithInput(runeio.NamedReader(name, strings.NewReader(input)))
	})
	return vmt
}

// do runs instructions directly, without moving the instruction pointer:
// digits push themselves, anything else is dispatched.
func (vmt vmTestCase) do(ops string) vmTestCase {
	vmt.ops += ops
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectTypeError(op string) vmTestCase {
	vmt.wantErrLike = func(err error) bool {
		var te TypeError
		return errors.As(err, &te) && te.Op == op
	}
	return vmt
}

func (vmt vmTestCase) expectStack(values ...Value) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		if diff := cmp.Diff(Stack(values), vm.stack, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("unexpected stack values (-want +got):\n%s", diff)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectInts(values ...int) vmTestCase {
	return vmt.expectStack(ints(values...)...)
}

func (vmt vmTestCase) expectPosition(pos Vec) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		assert.Equal(t, pos, vm.pos, "expected position")
	})
	return vmt
}

func (vmt vmTestCase) expectVelocity(vel Vec) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		assert.Equal(t, vel, vm.vel, "expected velocity")
	})
	return vmt
}

func (vmt vmTestCase) expectJumpDepth(depth int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		assert.Len(t, vm.jumps, depth, "expected jump stack depth")
	})
	return vmt
}

func (vmt vmTestCase) expectExitCode(want int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		assert.Equal(t, want, code, "expected exit code")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, code int) {
		var out strings.Builder
		vmDumper{
			vm:  vm,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) withTestOutput() vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	var trace traceLog
	vm := vmt.buildVM(t)
	WithLogf(trace.logf).apply(vm)
	defer func() {
		if t.Failed() {
			trace.replay(t)
			vmt.dumpToTest(t, vm)
		}
	}()
	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	code, err := vmt.runVM(ctx, vm)
	switch {
	case vmt.wantErr != nil:
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	case vmt.wantErrLike != nil:
		assert.True(t, vmt.wantErrLike(err), "unexpected error: %+v", err)
	default:
		assert.NoError(t, err, "unexpected VM run error")
	}

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm, code)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (code int, err error) {
	if vmt.ops == "" {
		return vm.Play(ctx)
	}
	vm.ctx = ctx
	err = panicerr.Recover("vmTestCase.ops", func() error {
		defer vm.flush()
		for _, r := range vmt.ops {
			vm.logf("do %v", runeio.Glyph(r))
			if err := vm.exec(r); err != nil {
				var halt haltError
				if errors.As(err, &halt) {
					code = halt.code
					return nil
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
	return code, err
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opt VMOption
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opt = VMOptions(opt, impl(&vmt, t))
		case VMOption:
			opt = VMOptions(opt, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(vmt.source, opt)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
	lw.Write([]byte{'\n'})
	vmDumper{vm: vm, out: &lw}.dumpBoard()
}

//// utilities

// exec runs a single instruction in place, the way step would after
// landing on it.
func (vm *VM) exec(r rune) error {
	vm.glyph = r
	if '0' <= r && r <= '9' {
		vm.stack.Push(Int(r - '0'))
		return nil
	}
	if err := vm.dispatch(r); err != nil {
		if _, isHalt := err.(haltError); isHalt {
			return err
		}
		return vm.stepError(err)
	}
	return nil
}

// traceLog retains the most recent trace lines of a run, to be shown only
// if the test fails.
type traceLog struct {
	lines   []string
	dropped int
}

const traceLogLimit = 200

func (tl *traceLog) logf(mess string, args ...interface{}) {
	if len(tl.lines) >= traceLogLimit {
		copy(tl.lines, tl.lines[1:])
		tl.lines = tl.lines[:len(tl.lines)-1]
		tl.dropped++
	}
	tl.lines = append(tl.lines, fmt.Sprintf(mess, args...))
}

func (tl *traceLog) replay(t *testing.T) {
	if tl.dropped > 0 {
		t.Logf("... %v earlier trace lines dropped", tl.dropped)
	}
	for _, line := range tl.lines {
		t.Log(line)
	}
}

func ints(values ...int) []Value {
	vals := make([]Value, len(values))
	for i, n := range values {
		vals[i] = Int(n)
	}
	return vals
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
