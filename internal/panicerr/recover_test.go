package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/jcorbin/princess/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		errStr    string
		wrapStr   string
		fun       func() error
		isExit    bool
		haveStack bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name:   "normal err",
			errStr: "bang",
			fun:    func() error { return errors.New("bang") },
		},
		{
			name:      "panic err",
			errStr:    "panic err paniced: bang",
			wrapStr:   "bang",
			haveStack: true,
			fun:       func() error { panic(errors.New("bang")) },
		},
		{
			name:      "hello panic",
			errStr:    "hello panic paniced: hello",
			haveStack: true,
			fun:       func() error { panic("hello") },
		},
		{
			name:   "exit",
			errStr: "exit called runtime.Goexit",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
		{
			name:      "index panic",
			errStr:    "index panic paniced: runtime error: index out of range [1] with length 0",
			haveStack: true,
			fun: func() error {
				var board [][]rune
				i := 1
				return errors.New(string(board[i]))
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.errStr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.errStr)
			assert.Equal(t, tc.isExit, panicerr.IsExit(err), "expected IsExit")
			assert.Equal(t, tc.haveStack, panicerr.IsPanic(err), "expected IsPanic")
			if tc.wrapStr != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wrapStr, "expected wrapped error")
			}
			if tc.haveStack {
				assert.NotEmpty(t, panicerr.PanicStack(err), "expected panic stack")
				assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack:")
			} else {
				assert.Empty(t, panicerr.PanicStack(err), "expected no panic stack")
			}
		})
	}
}
