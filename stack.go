package main

// Stack holds the program's values; the last element is the top.
type Stack []Value

func (s Stack) Len() int { return len(s) }

// Push appends values, the last one becoming the new top.
func (s *Stack) Push(vals ...Value) { *s = append(*s, vals...) }

// Nth returns the n-th value from the top, counting from 1.
func (s Stack) Nth(n int) (Value, error) {
	i, err := s.index(n)
	if err != nil {
		return nil, err
	}
	return s[i], nil
}

// Remove deletes and returns the n-th value from the top, counting from 1.
func (s *Stack) Remove(n int) (Value, error) {
	i, err := s.index(n)
	if err != nil {
		return nil, err
	}
	st := *s
	v := st[i]
	copy(st[i:], st[i+1:])
	st[len(st)-1] = nil
	*s = st[:len(st)-1]
	return v, nil
}

func (s Stack) index(n int) (int, error) {
	if n < 1 || n > len(s) {
		return 0, IndexError{Index: n, Len: len(s)}
	}
	return len(s) - n, nil
}

// popArgs removes the top n values, returning them top first: args[0] is
// the value that was on top. Callers check the depth beforehand.
func (s *Stack) popArgs(n int) []Value {
	if n == 0 {
		return nil
	}
	st := *s
	args := make([]Value, n)
	for i := range args {
		args[i] = st[len(st)-1-i]
	}
	*s = st[:len(st)-n]
	return args
}

// unpopArgs undoes popArgs.
func (s *Stack) unpopArgs(args []Value) {
	for i := len(args) - 1; i >= 0; i-- {
		s.Push(args[i])
	}
}

// jump is a saved instruction pointer, pushed by call and restored by
// return.
type jump struct {
	pos, vel Vec
}

type jumpStack []jump

func (js *jumpStack) push(pos, vel Vec) { *js = append(*js, jump{pos, vel}) }

func (js *jumpStack) pop() (jump, error) {
	st := *js
	if len(st) == 0 {
		return jump{}, ErrJumpUnderflow
	}
	j := st[len(st)-1]
	*js = st[:len(st)-1]
	return j, nil
}
