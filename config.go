package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/princess/internal/runeio"
)

// Config holds run settings that may be kept in a YAML file alongside a
// program; command line flags override whatever it sets.
type Config struct {
	Dialect    string        `yaml:"dialect"`
	Accelerate bool          `yaml:"accelerate"`
	Trace      bool          `yaml:"trace"`
	Board      bool          `yaml:"board"`
	Timeout    time.Duration `yaml:"timeout"`
	Stack      []yaml.Node   `yaml:"stack"`
	Velocity   *[2]int       `yaml:"velocity"`
	Position   *[2]int       `yaml:"position"`
}

// LoadConfig decodes a Config, rejecting unknown fields. An empty document
// is a zero Config.
func LoadConfig(r io.Reader) (cfg Config, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into VM options. Stack entries are integers,
// strings, or sequences of those, becoming Int, Text, and List values.
func (cfg Config) Options() ([]VMOption, error) {
	var opts []VMOption
	if cfg.Dialect != "" {
		d, err := ParseDialect(cfg.Dialect)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDialect(d))
	}
	if cfg.Accelerate {
		opts = append(opts, WithAcceleration(true))
	}
	if len(cfg.Stack) > 0 {
		vals := make([]Value, 0, len(cfg.Stack))
		for i := range cfg.Stack {
			v, err := nodeValue(&cfg.Stack[i])
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		opts = append(opts, WithStack(vals...))
	}
	if v := cfg.Velocity; v != nil {
		opts = append(opts, WithVelocity(Vec{v[0], v[1]}))
	}
	if p := cfg.Position; p != nil {
		opts = append(opts, WithPosition(Vec{p[0], p[1]}))
	}
	return opts, nil
}

func nodeValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!int" {
			var n int
			if err := node.Decode(&n); err != nil {
				return nil, err
			}
			return Int(n), nil
		}
		return Text(node.Value), nil
	case yaml.SequenceNode:
		list := make(List, 0, len(node.Content))
		for _, elem := range node.Content {
			v, err := nodeValue(elem)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}
	return nil, fmt.Errorf("line %v: stack values must be integers, strings, or lists", node.Line)
}

// ParseValue interprets a command line argument as a stack value: an
// integer, a quoted rune literal standing for its ordinal, or else text.
func ParseValue(arg string) Value {
	if n, err := strconv.Atoi(arg); err == nil {
		return Int(n)
	}
	if r, err := runeio.UnquoteRune(arg); err == nil {
		return Int(r)
	}
	return Text(arg)
}
