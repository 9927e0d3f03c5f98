package main

import (
	"fmt"
	"sort"
	"strings"
)

// instruction is an entry in a dialect's dispatch table. The interpreter
// pops arity values before calling exec, passing them top first.
type instruction struct {
	name  string
	arity int
	exec  func(vm *VM, args []Value) error
}

// Dialect is a dispatch table: which rune runs which instruction.
type Dialect struct {
	name string
	ops  map[rune]instruction
}

func (d *Dialect) String() string { return d.name }

// Glyphs returns every rune the dialect defines, in order.
func (d *Dialect) Glyphs() []rune {
	glyphs := make([]rune, 0, len(d.ops))
	for r := range d.ops {
		glyphs = append(glyphs, r)
	}
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i] < glyphs[j] })
	return glyphs
}

// Describe returns a one line description of the instruction for r, or the
// empty string if r is not defined.
func (d *Dialect) Describe(r rune) string {
	in, defined := d.ops[r]
	if !defined {
		return ""
	}
	return fmt.Sprintf("%c %s/%d", r, in.name, in.arity)
}

var (
	// Extended is the full instruction set, and the default.
	Extended *Dialect

	// Classic is the smaller instruction set of the first prototype, where
	// printing and exiting are spelled differently.
	Classic *Dialect

	dialects []*Dialect
)

// ParseDialect looks up a dialect by name.
func ParseDialect(name string) (*Dialect, error) {
	for _, d := range dialects {
		if strings.EqualFold(d.name, name) {
			return d, nil
		}
	}
	names := make([]string, len(dialects))
	for i, d := range dialects {
		names[i] = d.name
	}
	return nil, fmt.Errorf("unknown dialect %q, want one of %v", name, strings.Join(names, ", "))
}

func init() {
	Extended = &Dialect{"extended", map[rune]instruction{
		'>': {"right", 0, (*VM).goRight},
		'<': {"left", 0, (*VM).goLeft},
		'^': {"up", 0, (*VM).goUp},
		'v': {"down", 0, (*VM).goDown},
		'{': {"speedup", 0, (*VM).speedUp},
		'}': {"slowdown", 0, (*VM).slowDown},
		'-': {"wire", 0, (*VM).nop},
		'|': {"wire", 0, (*VM).nop},
		'J': {"jump", 0, (*VM).jump},
		'j': {"jumpn", 1, (*VM).jumpn},
		'C': {"call", 0, (*VM).call},
		'R': {"return", 0, (*VM).ret},

		'.': {"dup", 1, (*VM).dup},
		':': {"dup2", 2, (*VM).dup2},
		',': {"drop", 1, (*VM).drop},
		';': {"drop2", 2, (*VM).drop},
		'#': {"pick", 1, (*VM).pick},
		'@': {"roll", 1, (*VM).roll},
		'$': {"swap", 2, (*VM).swap},

		'?': {"ifright", 1, (*VM).ifRight},
		'I': {"ifleft", 1, (*VM).ifLeft},
		'T': {"ifpop", 1, (*VM).ifPop},

		'+': {"add", 2, (*VM).add},
		'_': {"sub", 2, (*VM).sub},
		'*': {"mul", 2, (*VM).mul},
		'/': {"div", 2, (*VM).div},
		'%': {"mod", 2, (*VM).mod},
		'X': {"inc", 1, (*VM).inc},
		'x': {"dec", 1, (*VM).dec},

		'=': {"eq", 2, (*VM).eq},
		'!': {"not", 1, (*VM).not},
		'l': {"lt", 2, (*VM).lt},
		'g': {"gt", 2, (*VM).gt},
		'c': {"cmp", 2, (*VM).cmp},

		'a': {"ord", 1, (*VM).ord},
		'A': {"chr", 1, (*VM).chr},
		's': {"str", 1, (*VM).str},
		'i': {"int", 1, (*VM).toInt},
		'L': {"len", 1, (*VM).length},
		'G': {"get", 3, (*VM).get},
		'S': {"set", 4, (*VM).set},
		'[': {"list", 0, (*VM).list},
		']': {"alloc", 1, (*VM).alloc},

		'P': {"println", 1, (*VM).println},
		'p': {"print", 1, (*VM).print},
		'N': {"inspectln", 1, (*VM).inspectln},
		'n': {"inspect", 1, (*VM).inspect},
		'd': {"dump", 0, (*VM).dump},
		'D': {"dumpquit", 0, (*VM).dumpQuit},
		'Q': {"quit", 0, (*VM).quit},
		'q': {"exit", 1, (*VM).exit},
		'U': {"gets", 0, (*VM).gets},
	}}

	Classic = &Dialect{"classic", map[rune]instruction{
		'>': {"right", 0, (*VM).goRight},
		'<': {"left", 0, (*VM).goLeft},
		'^': {"up", 0, (*VM).goUp},
		'v': {"down", 0, (*VM).goDown},
		'-': {"wire", 0, (*VM).nop},
		'|': {"wire", 0, (*VM).nop},
		'A': {"speedup", 0, (*VM).speedUp},
		'R': {"turnright", 0, (*VM).turnRight},
		'L': {"turnleft", 0, (*VM).turnLeft},

		'@': {"dup", 1, (*VM).dup},
		'$': {"over", 2, (*VM).over},
		':': {"swap", 2, (*VM).swap},

		'?': {"ifright", 1, (*VM).ifRight},
		'I': {"ifleft", 1, (*VM).ifLeft},

		'+': {"add", 2, (*VM).add},
		'_': {"sub", 2, (*VM).sub},
		'*': {"mul", 2, (*VM).mul},
		'/': {"div", 2, (*VM).div},
		'%': {"mod", 2, (*VM).mod},
		'=': {"eq", 2, (*VM).eq},
		'!': {"not", 1, (*VM).not},
		'C': {"chr", 1, (*VM).chr},

		'.': {"print", 1, (*VM).print},
		',': {"println", 1, (*VM).println},
		'i': {"gets", 0, (*VM).gets},
		'd': {"dump", 0, (*VM).dump},
		'D': {"dumpquit", 0, (*VM).dumpQuit},
		'Q': {"exit", 1, (*VM).exit},
	}}

	dialects = []*Dialect{Extended, Classic}
}
