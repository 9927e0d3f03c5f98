// Package fileinput reads lines for a running program from a queue of input
// streams, keeping track of where each line came from.
package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/princess/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il *Line) String() string     { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
// A zero rune with nil error is returned when moving on to the next stream.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if n > 0 {
		in.Scan.WriteRune(r)
	}

	if n > 0 {
		return r, n, nil
	}
	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, n, err
}

// ReadLine reads runes up to the next line feed, returning the line without
// its "\n" or "\r\n" terminator. A final unterminated line is returned
// without error; io.EOF is only returned when no runes remain.
func (in *Input) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		r, n, err := in.ReadRune()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				break
			}
			return "", err
		}
		if n == 0 {
			continue
		}
		if r == '\n' {
			break
		}
		sb.WriteRune(r)
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// Where returns the location of the most recently completed line.
func (in *Input) Where() Location {
	return in.Last.Location
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
