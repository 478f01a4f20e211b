package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/urfave/cli/v2"

	"github.com/govalues/ratio/internal/config"
)

const version = "v0.1.0"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session holds the state shared by all commands of one invocation.
type session struct {
	out    io.Writer
	errOut io.Writer
	custom *config.Custom
	logger log.Logger
}

func newApp(out, errOut io.Writer) *cli.App {
	s := &session{out: out, errOut: errOut}

	app := cli.NewApp()
	app.Name = "ratio"
	app.Usage = "Exact rational arithmetic and float decomposition."
	app.Version = version
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration `FILE`",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "the output format: ratio, float or decimal",
		},
		&cli.IntFlag{
			Name:  "places",
			Usage: "the number of digits after the decimal point for the decimal format",
		},
		&cli.BoolFlag{
			Name:    "reduce",
			Aliases: []string{"r"},
			Usage:   "reduce every result before printing it",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "the log level: debug, info, warn or error",
		},
	}
	app.Before = s.setup
	app.Commands = []*cli.Command{
		{
			Name:      "float",
			Usage:     "Convert floats to the exact ratios they represent",
			ArgsUsage: "FLOAT...",
			Action:    s.floatCmd,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "decode zeros and subnormals exactly and reject NaN and infinities",
				},
			},
		},
		{
			Name:      "inspect",
			Usage:     "Show the sign, exponent and significand of a float",
			ArgsUsage: "FLOAT",
			Action:    s.inspectCmd,
		},
		{
			Name:      "reduce",
			Usage:     "Divide ratios by the greatest common divisor of their parts",
			ArgsUsage: "RATIO...",
			Action:    s.reduceCmd,
		},
		{
			Name:      "add",
			Usage:     "Add ratios from left to right",
			ArgsUsage: "RATIO RATIO...",
			Action:    s.addCmd,
		},
		{
			Name:      "sub",
			Usage:     "Subtract ratios from left to right",
			ArgsUsage: "RATIO RATIO...",
			Action:    s.subCmd,
		},
		{
			Name:      "mul",
			Usage:     "Multiply ratios from left to right",
			ArgsUsage: "RATIO RATIO...",
			Action:    s.mulCmd,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "raw",
					Usage: "do not reduce the products",
				},
			},
		},
		{
			Name:      "neg",
			Usage:     "Negate the numerators of ratios",
			ArgsUsage: "RATIO...",
			Action:    s.negCmd,
		},
	}
	return app
}

// setup merges the configuration file with the global flags.
func (s *session) setup(c *cli.Context) error {
	custom, err := config.Initialize(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("format") {
		custom.Output.Format = c.String("format")
	}
	if c.IsSet("places") {
		custom.Output.Places = c.Int("places")
	}
	if c.IsSet("reduce") {
		custom.Output.Reduce = c.Bool("reduce")
	}
	if c.IsSet("log-level") {
		custom.Log.Level = c.String("log-level")
	}
	err = custom.Validate()
	if err != nil {
		return err
	}
	s.custom = custom
	s.logger = newLogger(s.errOut, custom.Log.Level)
	return nil
}
