// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numengine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/mutecomm/numbase/def"
	"github.com/mutecomm/numbase/log"
	"github.com/mutecomm/numbase/util/bindigits"
	"github.com/mutecomm/numbase/util/digits"
	"github.com/mutecomm/numbase/util/numreport"
	"github.com/urfave/cli"
)

// parseValue parses a non-negative integer argument. The base is derived
// from the prefix, as in Go literals (0b, 0o, 0x).
func parseValue(s string) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, log.Errorf("numengine: negative value '%s' is not supported", s)
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, log.Errorf("numengine: invalid value '%s': %s", s, err)
	}
	return u, nil
}

func parseArgs(c *cli.Context) ([]uint64, error) {
	if len(c.Args()) == 0 {
		return nil, log.Errorf("numengine: %s: value missing", c.Command.Name)
	}
	values := make([]uint64, 0, len(c.Args()))
	for _, arg := range c.Args() {
		u, err := parseValue(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, u)
	}
	return values, nil
}

func (ne *NumEngine) digits(c *cli.Context) error {
	m, err := digits.ParseMethod(c.String("method"))
	if err != nil {
		return log.Error(err)
	}
	values, err := parseArgs(c)
	if err != nil {
		return err
	}
	for _, u := range values {
		n, err := digits.CountWith(m, u)
		if err != nil {
			return log.Error(err)
		}
		fmt.Fprintf(ne.out, "%d: %d\n", u, n)
	}
	return nil
}

func (ne *NumEngine) bits(c *cli.Context) error {
	m, err := bindigits.ParseMethod(c.String("method"))
	if err != nil {
		return log.Error(err)
	}
	values, err := parseArgs(c)
	if err != nil {
		return err
	}
	for _, u := range values {
		n, err := bindigits.CountWith(m, u)
		if err != nil {
			return log.Error(err)
		}
		fmt.Fprintf(ne.out, "%d: %d\n", u, n)
	}
	return nil
}

func (ne *NumEngine) binary(c *cli.Context) error {
	m, err := bindigits.ParseMethod(c.String("method"))
	if err != nil {
		return log.Error(err)
	}
	values, err := parseArgs(c)
	if err != nil {
		return err
	}
	for _, u := range values {
		d, err := bindigits.DigitsWith(m, u)
		if err != nil {
			return log.Error(err)
		}
		fmt.Fprintf(ne.out, "%d: %s\n", u, bindigits.Format(d))
	}
	return nil
}

func (ne *NumEngine) inspect(c *cli.Context) error {
	if len(c.Args()) != 1 {
		return log.Error("numengine: inspect: exactly one value required")
	}
	u, err := parseValue(c.Args().First())
	if err != nil {
		return err
	}
	fields := numreport.New(u).Fields()
	for _, key := range numreport.Keys(fields) {
		fmt.Fprintf(ne.out, "%-12s %v\n", key, fields[key])
	}
	return nil
}

func (ne *NumEngine) demo(c *cli.Context) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Value").SetAlign(tabulate.MR)
	tab.Header("Digits").SetAlign(tabulate.MR)
	tab.Header("Bits").SetAlign(tabulate.MR)
	tab.Header("Binary").SetAlign(tabulate.MR)
	tab.Header("OK").SetAlign(tabulate.ML)
	for _, u := range def.SampleValues {
		r := numreport.New(u)
		row := tab.Row()
		row.Column(strconv.FormatUint(r.Value, 10))
		row.Column(strconv.Itoa(r.Digits))
		row.Column(strconv.Itoa(r.Bits))
		row.Column(r.Binary)
		if r.Agree() {
			row.Column("yes")
		} else {
			row.Column("no").SetFormat(tabulate.FmtBold)
			log.Warn(r.Err())
		}
	}
	tab.Print(ne.out)
	return nil
}

func (ne *NumEngine) verify(c *cli.Context) error {
	from, err := parseValue(c.String("from"))
	if err != nil {
		return err
	}
	to, err := parseValue(c.String("to"))
	if err != nil {
		return err
	}
	log.Infof("numengine: verify [%d, %d]", from, to)
	var n uint64
	count := func(*numreport.Report) error {
		n++
		return nil
	}
	if err := numreport.Verify(from, to, count); err != nil {
		return log.Error(err)
	}
	if !c.Bool("no-boundaries") {
		if err := numreport.VerifyBoundaries(count); err != nil {
			return log.Error(err)
		}
	}
	fmt.Fprintf(ne.out, "verified %d values: OK\n", n)
	return nil
}

func (ne *NumEngine) exit(c *cli.Context) error {
	if !ne.interactive {
		return log.Errorf("numengine: %s: only available in interactive mode",
			c.Command.Name)
	}
	return nil
}

func (ne *NumEngine) commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "digits",
			Usage:     "count decimal digits",
			ArgsUsage: "value...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "method",
					Value: digits.Lookup.String(),
					Usage: "counting method {lookup, div, log}",
				},
			},
			Action: ne.digits,
		},
		{
			Name:      "bits",
			Usage:     "count binary digits",
			ArgsUsage: "value...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "method",
					Value: bindigits.Len.String(),
					Usage: "counting method {len, rshift, lshift, log}",
				},
			},
			Action: ne.bits,
		},
		{
			Name:      "binary",
			Usage:     "convert to binary digits",
			ArgsUsage: "value...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "method",
					Value: bindigits.Len.String(),
					Usage: "bit counting method used for sizing {len, rshift, lshift, log}",
				},
			},
			Action: ne.binary,
		},
		{
			Name:      "inspect",
			Usage:     "show all counts of a value",
			ArgsUsage: "value",
			Action:    ne.inspect,
		},
		{
			Name:   "demo",
			Usage:  "show a table of sample values",
			Action: ne.demo,
		},
		{
			Name:  "verify",
			Usage: "check that all counting methods agree",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from",
					Value: strconv.FormatUint(def.VerifyFrom, 10),
					Usage: "first value to check",
				},
				cli.StringFlag{
					Name:  "to",
					Value: strconv.FormatUint(def.VerifyTo, 10),
					Usage: "last value to check",
				},
				cli.BoolFlag{
					Name:  "no-boundaries",
					Usage: "skip the powers of ten and two",
				},
			},
			Action: ne.verify,
		},
		{
			Name:    exitCommands[0],
			Aliases: exitCommands[1:],
			Usage:   "leave interactive mode",
			Action:  ne.exit,
		},
	}
}
