// Package panicerr isolates a function call so that panics and
// runtime.Goexit come back as ordinary errors.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, returning its error, or an error
// describing how it ended abnormally: by panicking or by runtime.Goexit.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer settle(name, errch)
		errch <- f()
	}()
	return <-errch
}

// settle reports an abnormal end of f, unless its result was already sent.
func settle(name string, errch chan<- error) {
	var err error
	if v := recover(); v != nil {
		err = &panicError{name: name, value: v, stack: debug.Stack()}
	} else {
		err = exitError(name)
	}
	select {
	case errch <- err:
	default:
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}
