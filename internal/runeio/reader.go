package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

type namer interface{ Name() string }

// NewReader buffers r for rune reading, unless it already reads runes.
// A Name() string method on r carries over to the result.
func NewReader(r io.Reader) Reader {
	if rr, ok := r.(Reader); ok {
		return rr
	}
	br := bufio.NewReader(r)
	if nr, ok := r.(namer); ok {
		return named{br, nr.Name()}
	}
	return br
}

// NamedReader attaches a name to r, so that input locations can refer to it.
func NamedReader(name string, r io.Reader) Reader {
	if nr, ok := r.(named); ok {
		nr.name = name
		return nr
	}
	return named{NewReader(r), name}
}

type named struct {
	Reader
	name string
}

func (nr named) Name() string { return nr.name }
