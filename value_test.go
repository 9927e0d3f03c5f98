package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_truthy(t *testing.T) {
	for _, tc := range []struct {
		v      Value
		expect bool
	}{
		{Int(0), false},
		{Int(1), true},
		{Int(-1), true},
		{Text(""), false},
		{Text("0"), true},
		{List{}, false},
		{List{Int(0)}, true},
	} {
		assert.Equal(t, tc.expect, truthy(tc.v), "truthy(%v)", render(tc.v))
	}
}

func TestValue_strings(t *testing.T) {
	v := List{Int(1), Text("a\tb"), List{}, List{Int(-2)}}
	assert.Equal(t, `[1, "a\tb", [], [-2]]`, render(v))
	assert.Equal(t, `[1, "a\tb", [], [-2]]`, printString(v))
	assert.Equal(t, "a\tb", printString(Text("a\tb")))
	assert.Equal(t, `"a\tb"`, render(Text("a\tb")))
	assert.Equal(t, "-7", printString(Int(-7)))
	assert.Equal(t, "nil", render(nil))
}

func TestValue_compare(t *testing.T) {
	c, ok := compare(Int(1), Int(2))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = compare(Text("b"), Text("a"))
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = compare(Int(1), Text("a"))
	assert.False(t, ok)

	_, ok = compare(List{}, List{})
	assert.False(t, ok, "lists are not ordered")

	assert.True(t, equal(List{Int(1), List{Text("x")}}, List{Int(1), List{Text("x")}}))
	assert.False(t, equal(List{Int(1)}, List{Int(1), Int(2)}))
	assert.False(t, equal(Int(1), Text("1")))
}

func TestParseLeadingInt(t *testing.T) {
	for in, expect := range map[string]int{
		"":         0,
		"abc":      0,
		"42":       42,
		"  42abc":  42,
		"-12":      -12,
		"+7 days":  7,
		"-":        0,
		"3.14":     3,
		"\n\t 9\n": 9,
		"1 2 3":    1,
		"007 bond": 7,
	} {
		assert.Equal(t, expect, parseLeadingInt(in), "parseLeadingInt(%q)", in)
	}
}
