package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/princess/internal/fileinput"
	"github.com/jcorbin/princess/internal/flushio"
)

type ioCore struct {
	in  fileinput.Input
	out flushio.WriteFlusher

	logfn func(mess string, args ...interface{})
}

func (ioc ioCore) logf(mess string, args ...interface{}) {
	if ioc.logfn != nil {
		ioc.logfn(mess, args...)
	}
}

func (ioc *ioCore) write(s string) error {
	_, err := io.WriteString(ioc.out, s)
	return err
}

func (ioc *ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	return ioc.out.Flush()
}

// readLine flushes any pending output, so that prompts appear, and then
// reads one line of input. A read still blocked when ctx is done is
// abandoned; its goroutine lingers until the input yields or closes.
func (ioc *ioCore) readLine(ctx context.Context) (string, error) {
	if err := ioc.flush(); err != nil {
		return "", err
	}

	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := ioc.in.ReadLine()
		done <- result{line, err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read line: %w", ctx.Err())
	case res = <-done:
	}

	if res.err == io.EOF {
		return "", fmt.Errorf("read line: no more input: %w", res.err)
	} else if res.err != nil {
		return "", fmt.Errorf("read line: %w", res.err)
	}
	ioc.logf("read %q from %v", res.line, ioc.in.Where())
	return res.line, nil
}
