package main

import (
	"fmt"
	"io"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	highlight bool
}

// dump writes the one line state summary shown by the dump instructions,
// like: Princess(position=(3, 0), velocity=(1, 0), stack=[5, "a"])
func (dump vmDumper) dump() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Princess(position=%v, velocity=%v, stack=", dump.vm.pos, dump.vm.vel)
	renderValues(&sb, dump.vm.stack)
	if jumps := dump.vm.jumps; len(jumps) > 0 {
		sb.WriteString(", jumps=[")
		for i, j := range jumps {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v%v", j.pos, j.vel)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(')')
	io.WriteString(dump.out, sb.String())
}

// dumpBoard writes every row of the board, marking the instruction pointer
// either with ANSI inverse video, or with a caret on the following line.
func (dump vmDumper) dumpBoard() {
	board, pos := dump.vm.board, dump.vm.pos
	var sb strings.Builder
	for y := 0; y < board.Height(); y++ {
		row := board.Row(y)
		if y != pos.Y || pos.X < 0 || pos.X >= len(row) {
			sb.WriteString(string(row))
			sb.WriteByte('\n')
			continue
		}
		if dump.highlight {
			fmt.Fprintf(&sb, "%s\x1b[7m%c\x1b[0m%s\n", string(row[:pos.X]), row[pos.X], string(row[pos.X+1:]))
			continue
		}
		sb.WriteString(string(row))
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", pos.X))
		sb.WriteString("^\n")
	}
	io.WriteString(dump.out, sb.String())
}
