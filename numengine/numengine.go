// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numengine implements the command engine for numbase.
package numengine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mutecomm/numbase/def"
	"github.com/mutecomm/numbase/log"
	"github.com/mutecomm/numbase/util"
	"github.com/peterh/liner"
	"github.com/urfave/cli"
)

var exitCommands = []string{"exit", "quit"}

// NumEngine abstracts a numbase command engine.
type NumEngine struct {
	prepared    bool
	interactive bool
	in          io.Reader
	out         io.Writer
	line        *liner.State
	app         *cli.App
}

func (ne *NumEngine) prepare(c *cli.Context) error {
	if ne.prepared {
		return nil
	}
	logDir := c.GlobalString("logdir")
	if err := util.CreateDirs(logDir); err != nil {
		return err
	}
	err := log.Init(c.GlobalString("loglevel"), def.CmdPrefix, logDir,
		c.GlobalBool("logconsole"))
	if err != nil {
		return err
	}
	ne.prepared = true
	return nil
}

// reader returns a function which reads the next command line from ne.in.
// Terminals get a liner prompt with history and command completion.
func (ne *NumEngine) reader(commands []string) func() (string, error) {
	if !util.IsTerminal(ne.in) {
		scanner := bufio.NewScanner(ne.in)
		return func() (string, error) {
			if scanner.Scan() {
				return scanner.Text(), nil
			}
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
	}
	ne.line = liner.NewLiner()
	ne.line.SetCtrlCAborts(true)
	ne.line.SetCompleter(func(line string) (c []string) {
		for _, command := range commands {
			if strings.HasPrefix(command, line) {
				c = append(c, command)
			}
		}
		return
	})
	return func() (string, error) {
		ln, err := ne.line.Prompt(def.Prompt)
		if err == nil {
			ne.line.AppendHistory(ln)
		}
		return ln, err
	}
}

// loop runs the NumEngine in a loop and reads commands from ne.in until
// EOF or an exit command.
func (ne *NumEngine) loop(c *cli.Context) error {
	if len(c.Args()) > 0 {
		return log.Errorf("numengine: unknown command '%s', try 'help'",
			strings.Join(c.Args(), " "))
	}
	if ne.interactive {
		return log.Error("numengine: already in interactive mode")
	}
	ne.interactive = true
	defer func() { ne.interactive = false }()

	log.Info("numengine: starting")
	read := ne.reader(commandNames(c.App.Commands))
	defer ne.Close()
	for {
		ln, err := read()
		if err != nil {
			if err == io.EOF {
				log.Info("numengine: stopping (EOF)")
				return nil
			}
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(ne.out, "aborting...")
				log.Info("numengine: stopping (aborted)")
				return nil
			}
			log.Info("numengine: stopping (error)")
			return log.Error(err)
		}
		fields := strings.Fields(ln)
		if len(fields) == 0 {
			log.Debug("read empty line")
			continue
		}
		log.Infof("read: %s", ln)
		if util.ContainsString(exitCommands, fields[0]) {
			log.Info("numengine: stopping (exit requested)")
			return nil
		}
		args := append([]string{ne.app.Name}, fields...)
		if err := ne.app.Run(args); err != nil {
			// command execution failed -> issue status and continue
			log.Infof("command execution failed: %s", err)
			fmt.Fprintln(ne.out, err)
			continue
		}
		log.Info("command successful")
	}
}

func commandNames(commands []cli.Command) []string {
	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name)
		names = append(names, cmd.Aliases...)
	}
	return names
}

// Start starts the NumEngine with the given command-line arguments.
func (ne *NumEngine) Start(args []string) error {
	return ne.app.Run(args)
}

// Close the underlying terminal prompt of NumEngine, if any.
func (ne *NumEngine) Close() {
	if ne.line != nil {
		ne.line.Close()
	}
}

// New returns a new NumEngine which reads interactive commands from stdin
// and writes results to stdout.
func New() *NumEngine {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO returns a new NumEngine which reads interactive commands from in
// and writes results to out.
func NewWithIO(in io.Reader, out io.Writer) *NumEngine {
	ne := &NumEngine{in: in, out: out}
	ne.app = cli.NewApp()
	ne.app.Name = "numbase"
	ne.app.Usage = "count decimal and binary digits of non-negative integers"
	ne.app.Version = def.Version
	ne.app.Writer = out
	ne.app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "loglevel",
			Value: def.LogLevel,
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to console",
		},
	}
	ne.app.Before = ne.prepare
	ne.app.Action = ne.loop
	ne.app.Commands = ne.commands()
	return ne
}
