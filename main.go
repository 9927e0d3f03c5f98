package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/jcorbin/princess/internal/logio"
	"github.com/jcorbin/princess/internal/panicerr"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command: it parses args, runs the program, and returns
// the exit status, which is the program's exit code, or 1 after any error.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var log logio.Logger
	log.SetOutput(stderr)

	flags := flag.NewFlagSet("princess", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		file       string
		expr       string
		dialect    string
		accelerate bool
		trace      bool
		board      bool
		timeout    time.Duration
		configFile string
		list       bool
	)
	flags.StringVar(&file, "f", "", "read the program from a file")
	flags.StringVar(&expr, "e", "", "run the given program text")
	flags.StringVar(&dialect, "dialect", "", "instruction set: extended or classic")
	flags.BoolVar(&accelerate, "accel", false, "let direction changes accelerate")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&board, "board", false, "include the board in trace logging")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.StringVar(&configFile, "config", "", "read settings from a YAML file")
	flags.BoolVar(&list, "list", false, "list the dialect's instructions and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: princess [-f file | -e program] [options] [values...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var cfg Config
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			log.Errorf("%v", err)
			return log.ExitCode()
		}
		cfg, err = LoadConfig(f)
		f.Close()
		if err != nil {
			log.Errorf("%v: %v", configFile, err)
			return log.ExitCode()
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dialect":
			cfg.Dialect = dialect
		case "accel":
			cfg.Accelerate = accelerate
		case "trace":
			cfg.Trace = trace
		case "board":
			cfg.Board = board
		case "timeout":
			cfg.Timeout = timeout
		}
	})

	if list {
		d := Extended
		if cfg.Dialect != "" {
			var err error
			if d, err = ParseDialect(cfg.Dialect); err != nil {
				log.Errorf("%v", err)
				return log.ExitCode()
			}
		}
		for _, r := range d.Glyphs() {
			fmt.Fprintln(stdout, d.Describe(r))
		}
		return 0
	}

	source, err := readSource(file, expr)
	if err != nil {
		log.Errorf("%v", err)
		return log.ExitCode()
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Errorf("%v", err)
		return log.ExitCode()
	}
	opts = append(opts,
		WithInput(stdin),
		WithOutput(stdout),
	)
	if rest := flags.Args(); len(rest) > 0 {
		vals := make([]Value, len(rest))
		for i, arg := range rest {
			vals[i] = ParseValue(arg)
		}
		opts = append(opts, WithStack(vals...))
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
		if cfg.Board {
			opts = append(opts, WithBoardTrace(isTerminal(stderr)))
		}
	}

	if cfg.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	code, err := New(source, opts...).Play(ctx)
	if err != nil {
		if panicerr.IsPanic(err) {
			log.Errorf("%+v", err)
		} else {
			log.Errorf("%v", err)
		}
		return log.ExitCode()
	}
	return code
}

func readSource(file, expr string) (string, error) {
	switch {
	case file != "" && expr != "":
		return "", errors.New("give only one of -f or -e")
	case expr != "":
		return expr, nil
	case file == "":
		return "", errors.New("no program given, use -f or -e")
	}
	var sb strings.Builder
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(&sb, f); err != nil {
		return "", fmt.Errorf("reading %v: %w", file, err)
	}
	return sb.String(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
