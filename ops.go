package main

import (
	"context"
	"strings"
	"unicode"
)

// Every instruction receives its operands already popped, top first: for a
// binary instruction args[0] is b, the value that was on top, and args[1] is
// a, the value beneath it; "a - b" is then the conventional order.

//// Stack manipulation

// Symbol  Name   Function
//   .     dup    push a copy of the top value
//   :     dup2   push copies of the top two values, in order
func (vm *VM) dup(args []Value) error {
	vm.stack.Push(args[0], args[0])
	return nil
}

func (vm *VM) dup2(args []Value) error {
	vm.stack.Push(args[1], args[0], args[1], args[0])
	return nil
}

// Symbol  Name   Function
//   $     over   (classic) push a copy of the second value
func (vm *VM) over(args []Value) error {
	vm.stack.Push(args[1], args[0], args[1])
	return nil
}

// Symbol  Name   Function
//   ,     drop   discard the top value
//   ;     drop2  discard the top two values
func (vm *VM) drop(args []Value) error { return nil }

// Symbol  Name   Function
//   #     pick   pop n, push a copy of the n-th value from the top
func (vm *VM) pick(args []Value) error {
	n, err := intArg("pick", args[0])
	if err != nil {
		return err
	}
	return vm.dupn(n)
}

// Symbol  Name   Function
//   @     roll   pop n, remove the n-th value from the top
func (vm *VM) roll(args []Value) error {
	n, err := intArg("roll", args[0])
	if err != nil {
		return err
	}
	_, err = vm.stack.Remove(n)
	return err
}

// Symbol  Name   Function
//   $     swap   exchange the top two values
func (vm *VM) swap(args []Value) error {
	vm.stack.Push(args[0], args[1])
	return nil
}

func (vm *VM) dupn(n int) error {
	v, err := vm.stack.Nth(n)
	if err != nil {
		return err
	}
	vm.stack.Push(v)
	return nil
}

//// Movement

// Symbol      Name       Function
//   - |       wire       nothing; these only connect paths visually
func (vm *VM) nop(args []Value) error { return nil }

// Symbol      Name       Function
//   > < ^ v   go         head right, left, up or down
func (vm *VM) goRight(args []Value) error { vm.setVelocity(Right); return nil }
func (vm *VM) goLeft(args []Value) error { vm.setVelocity(Left); return nil }
func (vm *VM) goUp(args []Value) error { vm.setVelocity(Up); return nil }
func (vm *VM) goDown(args []Value) error { vm.setVelocity(Down); return nil }

// Symbol  Name       Function
//   {     speedup    add the direction to the velocity
func (vm *VM) speedUp(args []Value) error {
	vm.vel = vm.vel.Add(vm.vel.Dir())
	return nil
}

// Symbol  Name       Function
//   }     slowdown   subtract the direction from the velocity; the
//                    instruction pointer never comes to a stop
func (vm *VM) slowDown(args []Value) error {
	if vm.vel.Mag() > 1 {
		vm.vel = vm.vel.Sub(vm.vel.Dir())
	}
	return nil
}

// Symbol  Name       Function
//   J     jump       skip the next cell
//   j     jumpn      pop n, skip the next n cells
func (vm *VM) jump(args []Value) error {
	vm.pos = vm.pos.Add(vm.vel)
	return nil
}

func (vm *VM) jumpn(args []Value) error {
	n, err := intArg("jumpn", args[0])
	if err != nil {
		return err
	}
	if n > 0 {
		vm.pos = vm.pos.Add(vm.vel.Scale(n))
	}
	return nil
}

// Symbol  Name       Function
//   C     call       save the position and velocity on the jump stack
//   R     return     restore the last saved velocity, and the position
//                    just before the saved one, so that the next step
//                    lands on the call again
func (vm *VM) call(args []Value) error {
	vm.jumps.push(vm.pos, vm.vel)
	return nil
}

func (vm *VM) ret(args []Value) error {
	j, err := vm.jumps.pop()
	if err != nil {
		return err
	}
	vm.vel = j.vel
	vm.pos = j.pos.Sub(vm.vel)
	return nil
}

// Symbol  Name       Function
//   R     turnright  (classic) a quarter turn clockwise
//   L     turnleft   (classic) turn from horizontal travel to vertical:
//                    rightward goes up, leftward goes down
func (vm *VM) turnRight(args []Value) error {
	vm.vel = vm.vel.RotateRight()
	return nil
}

func (vm *VM) turnLeft(args []Value) error {
	// already vertical travel has nowhere to turn; never stop the pointer
	if vel := (Vec{0, -vm.vel.X}); !vel.IsZero() {
		vm.vel = vel
	}
	return nil
}

//// Conditionals

// Symbol  Name    Function
//   ?     ifr     pop c, turn right unless c is truthy
//   I     ifl     pop c, turn left unless c is truthy
//   T     ifpop   pop c, discard one more value unless c is truthy
func (vm *VM) ifRight(args []Value) error {
	if !truthy(args[0]) {
		vm.vel = vm.vel.RotateRight()
	}
	return nil
}

func (vm *VM) ifLeft(args []Value) error {
	if !truthy(args[0]) {
		vm.vel = vm.vel.RotateLeft()
	}
	return nil
}

func (vm *VM) ifPop(args []Value) error {
	if truthy(args[0]) {
		return nil
	}
	if vm.stack.Len() == 0 {
		return UnderflowError{Glyph: vm.glyph, Need: 2, Have: 1}
	}
	vm.stack.popArgs(1)
	return nil
}

//// Arithmetic

// Symbol  Name   Function
//   +     add    a + b; also concatenates texts and lists
func (vm *VM) add(args []Value) error {
	b, a := args[0], args[1]
	switch a := a.(type) {
	case Int:
		if b, ok := b.(Int); ok {
			vm.stack.Push(a + b)
			return nil
		}
	case Text:
		if b, ok := b.(Text); ok {
			vm.stack.Push(a + b)
			return nil
		}
	case List:
		if b, ok := b.(List); ok {
			res := make(List, 0, len(a)+len(b))
			vm.stack.Push(append(append(res, a...), b...))
			return nil
		}
	}
	return TypeError{"add", []Value{a, b}}
}

// Symbol  Name   Function
//   _     sub    a - b
func (vm *VM) sub(args []Value) error {
	return vm.intOp("sub", args, func(a, b int) (int, error) { return a - b, nil })
}

// Symbol  Name   Function
//   *     mul    a * b; a text times a count repeats it
func (vm *VM) mul(args []Value) error {
	if s, ok := args[1].(Text); ok {
		if n, ok := args[0].(Int); ok {
			if n < 0 {
				return ErrNegativeCount
			}
			vm.stack.Push(Text(strings.Repeat(string(s), int(n))))
			return nil
		}
	}
	return vm.intOp("mul", args, func(a, b int) (int, error) { return a * b, nil })
}

// Symbol  Name   Function
//   /     div    a / b, rounding toward negative infinity
//   %     mod    a % b, taking the sign of b
func (vm *VM) div(args []Value) error { return vm.intOp("div", args, floorDiv) }
func (vm *VM) mod(args []Value) error { return vm.intOp("mod", args, floorMod) }

// Symbol  Name   Function
//   X     inc    a + 1
//   x     dec    a - 1
func (vm *VM) inc(args []Value) error { return vm.step1("inc", args[0], 1) }
func (vm *VM) dec(args []Value) error { return vm.step1("dec", args[0], -1) }

func (vm *VM) step1(op string, v Value, by Int) error {
	n, ok := v.(Int)
	if !ok {
		return TypeError{op, []Value{v}}
	}
	vm.stack.Push(n + by)
	return nil
}

func (vm *VM) intOp(op string, args []Value, fn func(a, b int) (int, error)) error {
	b, bok := args[0].(Int)
	a, aok := args[1].(Int)
	if !aok || !bok {
		return TypeError{op, []Value{args[1], args[0]}}
	}
	res, err := fn(int(a), int(b))
	if err != nil {
		return err
	}
	vm.stack.Push(Int(res))
	return nil
}

func floorDiv(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, nil
}

func floorMod(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}

//// Comparisons

// Symbol  Name   Function
//   =     eq     1 if a equals b, else 0
//   !     not    1 if a is not truthy, else 0
func (vm *VM) eq(args []Value) error {
	vm.stack.Push(boolInt(equal(args[1], args[0])))
	return nil
}

func (vm *VM) not(args []Value) error {
	vm.stack.Push(boolInt(!truthy(args[0])))
	return nil
}

// Symbol  Name   Function
//   l     lt     1 if a < b, else 0
//   g     gt     1 if a > b, else 0
//   c     cmp    -1, 0, or 1 as a is less, equal, or greater than b
func (vm *VM) lt(args []Value) error {
	return vm.compareOp("lt", args, func(c int) Int { return boolInt(c < 0) })
}

func (vm *VM) gt(args []Value) error {
	return vm.compareOp("gt", args, func(c int) Int { return boolInt(c > 0) })
}

func (vm *VM) cmp(args []Value) error {
	return vm.compareOp("cmp", args, func(c int) Int { return Int(c) })
}

func (vm *VM) compareOp(op string, args []Value, fn func(c int) Int) error {
	c, ok := compare(args[1], args[0])
	if !ok {
		return TypeError{op, []Value{args[1], args[0]}}
	}
	vm.stack.Push(fn(c))
	return nil
}

//// Conversions

// Symbol  Name   Function
//   a     ord    text to the ordinal of its first rune, integer to a one rune text
func (vm *VM) ord(args []Value) error {
	switch v := args[0].(type) {
	case Int:
		t, err := runeText(v)
		if err != nil {
			return err
		}
		vm.stack.Push(t)
		return nil
	case Text:
		for _, r := range string(v) {
			vm.stack.Push(Int(r))
			return nil
		}
		return IndexError{Index: 0, Len: 0}
	}
	return TypeError{"ord", args}
}

// Symbol  Name   Function
//   A     chr    integer to a one rune text; texts are left as they are
func (vm *VM) chr(args []Value) error {
	switch v := args[0].(type) {
	case Int:
		t, err := runeText(v)
		if err != nil {
			return err
		}
		vm.stack.Push(t)
		return nil
	case Text:
		vm.stack.Push(v)
		return nil
	}
	return TypeError{"chr", args}
}

// Symbol  Name   Function
//   s     str    to text: integers in decimal, lists rendered
func (vm *VM) str(args []Value) error {
	vm.stack.Push(Text(printString(args[0])))
	return nil
}

// Symbol  Name   Function
//   i     int    parse a leading integer from a text, 0 if there is none
func (vm *VM) toInt(args []Value) error {
	switch v := args[0].(type) {
	case Int:
		vm.stack.Push(v)
		return nil
	case Text:
		vm.stack.Push(Int(parseLeadingInt(string(v))))
		return nil
	}
	return TypeError{"int", args}
}

//// Texts and lists

// Symbol  Name   Function
//   L     len    length of a text (in runes) or list; an integer has length 1
func (vm *VM) length(args []Value) error {
	switch v := args[0].(type) {
	case Text:
		vm.stack.Push(Int(len([]rune(string(v)))))
	case List:
		vm.stack.Push(Int(len(v)))
	default:
		vm.stack.Push(Int(1))
	}
	return nil
}

// Symbol  Name   Function
//   G     get    pop l, i, s: push l elements of s starting at i
func (vm *VM) get(args []Value) error {
	l, i, s := args[0], args[1], args[2]
	n, ok1 := l.(Int)
	at, ok2 := i.(Int)
	if !ok1 || !ok2 {
		return TypeError{"get", []Value{s, i, l}}
	}
	switch s := s.(type) {
	case Text:
		runes := []rune(string(s))
		lo, hi, err := sliceRange(len(runes), int(at), int(n))
		if err != nil {
			return err
		}
		vm.stack.Push(Text(runes[lo:hi]))
		return nil
	case List:
		lo, hi, err := sliceRange(len(s), int(at), int(n))
		if err != nil {
			return err
		}
		vm.stack.Push(append(List(nil), s[lo:hi]...))
		return nil
	}
	return TypeError{"get", []Value{s, i, l}}
}

// Symbol  Name   Function
//   S     set    pop r, l, i, s: replace l elements of s starting at i
//                with r, and push the result
func (vm *VM) set(args []Value) error {
	r, l, i, s := args[0], args[1], args[2], args[3]
	n, ok1 := l.(Int)
	at, ok2 := i.(Int)
	if !ok1 || !ok2 {
		return TypeError{"set", []Value{s, i, l, r}}
	}
	switch s := s.(type) {
	case Text:
		runes := []rune(string(s))
		lo, hi, err := sliceRange(len(runes), int(at), int(n))
		if err != nil {
			return err
		}
		vm.stack.Push(Text(string(runes[:lo]) + printString(r) + string(runes[hi:])))
		return nil
	case List:
		lo, hi, err := sliceRange(len(s), int(at), int(n))
		if err != nil {
			return err
		}
		res := append(List(nil), s[:lo]...)
		if rl, ok := r.(List); ok {
			res = append(res, rl...)
		} else {
			res = append(res, r)
		}
		vm.stack.Push(append(res, s[hi:]...))
		return nil
	}
	return TypeError{"set", []Value{s, i, l, r}}
}

// sliceRange resolves a start index and a count against a sequence of
// length n; a negative start counts back from the end, and the count is
// clipped to what remains.
func sliceRange(n, at, count int) (lo, hi int, err error) {
	if at < 0 {
		at += n
	}
	if at < 0 || at > n {
		return 0, 0, IndexError{Index: at, Len: n}
	}
	if count < 0 {
		return 0, 0, ErrNegativeCount
	}
	hi = at + count
	if hi > n {
		hi = n
	}
	return at, hi, nil
}

// Symbol  Name   Function
//   [     list   push an empty list
//   ]     alloc  pop n, push a list of n zeros
func (vm *VM) list(args []Value) error {
	vm.stack.Push(List{})
	return nil
}

func (vm *VM) alloc(args []Value) error {
	n, err := intArg("alloc", args[0])
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrNegativeCount
	}
	res := make(List, n)
	for i := range res {
		res[i] = Int(0)
	}
	vm.stack.Push(res)
	return nil
}

//// Input/Output

// Symbol  Name      Function
//   P     println   print a value and a newline
//   p     print     print a value
func (vm *VM) println(args []Value) error { return vm.write(printString(args[0]) + "\n") }
func (vm *VM) print(args []Value) error { return vm.write(printString(args[0])) }

// Symbol  Name      Function
//   N     inspectln print a value's rendered form and a newline
//   n     inspect   print a value's rendered form
func (vm *VM) inspectln(args []Value) error { return vm.write(render(args[0]) + "\n") }
func (vm *VM) inspect(args []Value) error { return vm.write(render(args[0])) }

// Symbol  Name      Function
//   d     dump      print the interpreter state
//   D     dumpquit  print the interpreter state, then terminate
func (vm *VM) dump(args []Value) error {
	vmDumper{vm: vm, out: vm.out}.dump()
	if err := vm.write("\n"); err != nil {
		return err
	}
	return vm.flush()
}

func (vm *VM) dumpQuit(args []Value) error {
	if err := vm.dump(args); err != nil {
		return err
	}
	return vm.halt(0)
}

// Symbol  Name      Function
//   Q     quit      terminate with exit code 0
//   q     exit      pop a code, terminate with it
func (vm *VM) quit(args []Value) error { return vm.halt(0) }

func (vm *VM) exit(args []Value) error {
	switch v := args[0].(type) {
	case Int:
		return vm.halt(int(v))
	case Text:
		return vm.halt(parseLeadingInt(string(v)))
	}
	return TypeError{"exit", args}
}

// Symbol  Name      Function
//   U     gets      read a line of input, push it as text
func (vm *VM) gets(args []Value) error {
	ctx := vm.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	line, err := vm.readLine(ctx)
	if err != nil {
		return err
	}
	vm.stack.Push(Text(line))
	return nil
}

// runeText converts a code point to a one rune text; anything outside the
// code point range is an index error rather than a replacement character.
func runeText(v Int) (Text, error) {
	if v < 0 || v > unicode.MaxRune {
		return "", IndexError{Index: int(v), Len: unicode.MaxRune + 1}
	}
	return Text(rune(v)), nil
}

func intArg(op string, v Value) (int, error) {
	n, ok := v.(Int)
	if !ok {
		return 0, TypeError{op, []Value{v}}
	}
	return int(n), nil
}
