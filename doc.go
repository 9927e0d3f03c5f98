/* Package main: princess, a two dimensional stack language

A princess program is a grid of characters. An instruction pointer starts at
the top left corner moving right, and at every step it moves by its velocity
and executes the character it lands on. There is no wraparound: moving off
the board is an error, so every program must end by running into one of the
terminating instructions.

Values live on a single stack. They are integers, texts, or lists. A digit
pushes its value (0 through 9; larger numbers are built with arithmetic), and
a double quote scans forward, in the direction of travel, up to the next
double quote, pushing the runes in between as text. Everything else is an
instruction looked up in the dialect's dispatch table.

Instructions declare how many values they consume. Those are popped before
the instruction runs, top first, so for a binary operation the value that was
on top is the right hand operand: "7 2 _" leaves 5. An instruction that finds
too few values fails with a stack underflow, and an instruction that fails
for any reason leaves the stack as it was.

Movement

The arrows > < ^ v point the instruction pointer right, left, up, or down,
and - | are wires that do nothing. The velocity may be longer than one cell:
{ adds a step in the current direction, } takes one away (but never stops the
pointer). When acceleration is enabled, pointing the way one is already
moving adds to the velocity instead of replacing it, so ">>" moves three
cells per step while "><" simply reverses.

Conditionals turn rather than jump: ? pops a value and turns a quarter turn
clockwise unless it is truthy, I does the same counter-clockwise. Non-zero
integers and non-empty texts and lists are truthy. T pops a value and, unless
it is truthy, discards one more.

C saves the position and velocity on a jump stack. R pops them, putting
the pointer back just before the saved C with the saved velocity, so that the
next step lands on that C again.

For example, this program counts down from 5, printing each number:

	5>.?.P-v
	 ^}Q{_1<

Dialects

The Extended dialect, the default, has the full instruction set described in
the Dialect tables. The Classic dialect is the smaller instruction set of the
first prototype: there "." prints, "," prints a line, and Q pops an exit code.
The classic hello world is:

	"Hello, world".0Q

Running

The princess command runs a program given with -f or -e; any remaining
arguments are pushed onto the stack before it starts, integers as Int, quoted
rune literals like 'a' as their ordinal, and anything else as text. Settings
may also come from a YAML file given with -config, overridden by flags:

	dialect: classic
	accelerate: true
	timeout: 5s
	stack: [1, "two", [3]]

The exit status is the exit code of the program, or 1 if it failed.
*/
package main
