package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/plot"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] [program ...]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	var (
		inname, verb, plotvar string
		with                  []string
		nl, desc              bool
		from, to, step        float64
	)
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	pflag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	pflag.StringVar(&verb, "fmt", "%g", "result formatting string")
	pflag.StringArrayVar(&with, "given", nil, "name=program variable definition (any number of times)")
	pflag.BoolVarP(&nl, "lines", "n", false, "read separate input lines as separate programs")
	pflag.BoolVar(&desc, "describe", false, "print the infix description of each program")
	pflag.StringVar(&plotvar, "plot", "", "sample each program as a function of this variable")
	pflag.Float64Var(&from, "from", -10, "lower bound of the plotted range")
	pflag.Float64Var(&to, "to", 10, "upper bound of the plotted range")
	pflag.Float64Var(&step, "step", 1, "distance between plotted samples")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	brain := calculator.NewBrain(calculator.WithLogger(l))
	for _, d := range with {
		nm, v, err := given(d, l)
		if err != nil {
			l.Fatal(err)
		}
		brain.Set(nm, v)
	}

	var ins []io.RuneScanner
	f, err := infile(inname, pflag.NArg() == 0)
	if err != nil {
		l.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range pflag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []calculator.ReadOption
	if nl {
		opts = append(opts, calculator.StopOn('\n'))
	}
	var programs [][]string
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				l.Fatal(err)
			}
			in.UnreadRune()
			p, err := calculator.ReadProgram(in, opts...)
			if err != nil {
				l.Fatal(err)
			}
			if len(p) == 0 {
				continue
			}
			programs = append(programs, p)
		}
	}
	l.Debugf("read %d programs", len(programs))

	good := color.New(color.FgGreen).SprintfFunc()
	bad := color.New(color.FgRed).SprintFunc()
	verb += "\n"
	for _, p := range programs {
		r, ok := run(brain, p)
		if desc {
			fmt.Printf("%s = ", brain.Describe())
		}
		if !ok {
			fmt.Println(bad("no result"))
		} else {
			fmt.Print(good(verb, r))
		}
		if plotvar != "" {
			for _, pt := range plot.Points(brain.Clone(), plotvar, from, to, step) {
				fmt.Printf("%g\t%g\n", pt.X, pt.Y)
			}
		}
	}
}

// run replaces the brain's program by pressing each key in turn.
func run(brain *calculator.Brain, keys []string) (float64, bool) {
	brain.ResetProgram()
	var (
		r  float64
		ok bool
	)
	for _, k := range keys {
		if _, known := brain.Lookup(k); known {
			r, ok = brain.PerformOperation(k)
			continue
		}
		if v, err := strconv.ParseFloat(k, 64); err == nil {
			r, ok = brain.PushOperand(v)
		} else {
			r, ok = brain.PushVariable(k)
		}
	}
	return r, ok
}

// given evaluates a "name=program" variable definition.
func given(s string, l logger.Logger) (string, float64, error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", 0, fmt.Errorf(`variable definitions must be "name=program", not %q`, s)
	}
	nm := strings.TrimSpace(d[0])
	p, err := calculator.ReadProgram(strings.NewReader(d[1]))
	if err != nil {
		return "", 0, fmt.Errorf("setting %s: %w", nm, err)
	}
	r, ok := run(calculator.NewBrain(calculator.WithLogger(l)), p)
	if !ok {
		return "", 0, fmt.Errorf("setting %s: %q has no result", nm, d[1])
	}
	return nm, r, nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
