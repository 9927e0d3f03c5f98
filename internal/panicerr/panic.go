package panicerr

import (
	"errors"
	"fmt"
	"io"
)

// panicError is a recovered panic value, along with the stack of the
// goroutine that raised it.
type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func (pe *panicError) Error() string {
	if pe.name == "" {
		return fmt.Sprintf("paniced: %v", pe.value)
	}
	return fmt.Sprintf("%v paniced: %v", pe.name, pe.value)
}

// Format appends the panic stack under the %+v verb.
func (pe *panicError) Format(f fmt.State, c rune) {
	io.WriteString(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value when it was itself an error.
func (pe *panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

func asPanic(err error) (*panicError, bool) {
	var pe *panicError
	ok := errors.As(err, &pe)
	return pe, ok
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	_, ok := asPanic(err)
	return ok
}

// PanicStack returns the stack of a recovered goroutine panic, or "" if
// err is not one.
func PanicStack(err error) string {
	if pe, ok := asPanic(err); ok {
		return string(pe.stack)
	}
	return ""
}
