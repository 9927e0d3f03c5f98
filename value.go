package main

import (
	"strconv"
	"strings"
	"unicode"
)

// Value is an element of the stack. It is one of Int, Text, or List.
type Value interface {
	kind() string
}

// Int is an integer value; digit literals push these.
type Int int

// Text is a string value; quoted literals and read lines push these.
type Text string

// List is a sequence of values, created by the bracket instructions.
type List []Value

func (Int) kind() string  { return "int" }
func (Text) kind() string { return "text" }
func (List) kind() string { return "list" }

// truthy reports whether v counts as true: non-zero integers, and non-empty
// texts and lists.
func truthy(v Value) bool {
	switch v := v.(type) {
	case Int:
		return v != 0
	case Text:
		return v != ""
	case List:
		return len(v) > 0
	}
	return false
}

// printString is what the print instructions write: integers in decimal,
// texts verbatim, lists in their rendered form.
func printString(v Value) string {
	if t, ok := v.(Text); ok {
		return string(t)
	}
	return render(v)
}

// render is the diagnostic form of a value, as shown by state dumps:
// texts are quoted.
func render(v Value) string {
	var sb strings.Builder
	appendRender(&sb, v)
	return sb.String()
}

func appendRender(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case Int:
		sb.WriteString(strconv.Itoa(int(v)))
	case Text:
		sb.WriteString(strconv.Quote(string(v)))
	case List:
		renderValues(sb, v)
	default:
		sb.WriteString("nil")
	}
}

func renderValues(sb *strings.Builder, vals []Value) {
	sb.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		appendRender(sb, v)
	}
	sb.WriteByte(']')
}

func equal(a, b Value) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// compare orders two integers or two texts; ok is false for any other
// combination.
func compare(a, b Value) (c int, ok bool) {
	switch a := a.(type) {
	case Int:
		if b, isInt := b.(Int); isInt {
			switch {
			case a < b:
				return -1, true
			case a > b:
				return 1, true
			}
			return 0, true
		}
	case Text:
		if b, isText := b.(Text); isText {
			return strings.Compare(string(a), string(b)), true
		}
	}
	return 0, false
}

// parseLeadingInt reads an optionally signed decimal integer from the start
// of s, after any leading space, ignoring whatever follows; no digits at all
// reads as 0.
func parseLeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign, n := 1, 0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	for i := 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return sign * n
}

func boolInt(b bool) Int {
	if b {
		return 1
	}
	return 0
}
