package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/govalues/ratio"
)

func parseFloat(arg string) (float64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float %q", arg)
	}
	return f, nil
}

func parseRatio(arg string) (ratio.Ratio, error) {
	r, err := ratio.Parse(arg)
	if err != nil {
		return ratio.Ratio{}, errors.Wrap(err, "invalid ratio")
	}
	return r, nil
}

// nonNormal reports whether the biased exponent of f is 0 or 2047.
func nonNormal(f float64) bool {
	exp := math.Float64bits(f) >> 52 & 0x7ff
	return exp == 0 || exp == 0x7ff
}

func (s *session) floatCmd(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("float requires at least 1 float")
	}
	for _, arg := range c.Args().Slice() {
		f, err := parseFloat(arg)
		if err != nil {
			return err
		}
		var r ratio.Ratio
		if c.Bool("strict") {
			r, err = ratio.NewFromFloat64Strict(f)
			if err != nil {
				return errors.Wrapf(err, "float %s", arg)
			}
		} else {
			if nonNormal(f) {
				level.Warn(s.logger).Log("msg", "float decoded with implicit leading bit", "value", arg)
			}
			r = ratio.NewFromFloat64(f)
		}
		level.Debug(s.logger).Log("msg", "evaluated", "op", "float", "args", arg, "result", r)
		err = s.emit(r)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *session) inspectCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.Errorf("inspect requires exactly 1 float, got %d", c.NArg())
	}
	f, err := parseFloat(c.Args().First())
	if err != nil {
		return err
	}
	bits := math.Float64bits(f)
	exp := bits >> 52 & 0x7ff
	line, err := s.render(ratio.NewFromFloat64(f))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "sign        %d\n", bits>>63)
	fmt.Fprintf(s.out, "exponent    %d (%d)\n", exp, int(exp)-1023)
	fmt.Fprintf(s.out, "significand %052b\n", bits&(1<<52-1))
	fmt.Fprintf(s.out, "ratio       %s\n", line)
	return nil
}

func (s *session) reduceCmd(c *cli.Context) error {
	return s.each(c, "reduce", ratio.Ratio.Reduce)
}

func (s *session) negCmd(c *cli.Context) error {
	return s.each(c, "neg", ratio.Ratio.Neg)
}

func (s *session) addCmd(c *cli.Context) error {
	return s.fold(c, "add", ratio.Ratio.Add)
}

func (s *session) subCmd(c *cli.Context) error {
	return s.fold(c, "sub", ratio.Ratio.Sub)
}

func (s *session) mulCmd(c *cli.Context) error {
	if c.Bool("raw") {
		return s.fold(c, "mul", ratio.Ratio.MulRaw)
	}
	return s.fold(c, "mul", ratio.Ratio.Mul)
}

// each applies fn to every argument and prints every result.
func (s *session) each(c *cli.Context, op string, fn func(ratio.Ratio) ratio.Ratio) error {
	if c.NArg() == 0 {
		return errors.Errorf("%s requires at least 1 ratio", op)
	}
	for _, arg := range c.Args().Slice() {
		x, err := parseRatio(arg)
		if err != nil {
			return err
		}
		r, err := s.eval(op, func() ratio.Ratio { return fn(x) }, x)
		if err != nil {
			return err
		}
		err = s.emit(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// fold combines the arguments from left to right and prints the result.
func (s *session) fold(c *cli.Context, op string, fn func(ratio.Ratio, ratio.Ratio) ratio.Ratio) error {
	if c.NArg() < 2 {
		return errors.Errorf("%s requires at least 2 ratios, got %d", op, c.NArg())
	}
	args := c.Args().Slice()
	acc, err := parseRatio(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		y, err := parseRatio(arg)
		if err != nil {
			return err
		}
		x := acc
		acc, err = s.eval(op, func() ratio.Ratio { return fn(x, y) }, x, y)
		if err != nil {
			return err
		}
	}
	return s.emit(acc)
}

// eval runs fn and turns a panic of the ratio package into an error.
func (s *session) eval(op string, fn func() ratio.Ratio, args ...ratio.Ratio) (r ratio.Ratio, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("%s %v: %v", op, args, rec)
			level.Error(s.logger).Log("msg", "evaluation failed", "op", op, "err", err)
		}
	}()
	r = fn()
	level.Debug(s.logger).Log("msg", "evaluated", "op", op, "args", fmt.Sprint(args), "result", r)
	return r, nil
}

// emit prints r in the configured format, reducing it first if requested.
func (s *session) emit(r ratio.Ratio) error {
	if s.custom.Output.Reduce {
		var err error
		r, err = s.eval("reduce", r.Reduce, r)
		if err != nil {
			return err
		}
	}
	line, err := s.render(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, line)
	return err
}
