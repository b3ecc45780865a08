// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// numbase counts the decimal and binary digits of non-negative integers and
// converts them to binary.
package main

import (
	"os"

	"github.com/mutecomm/numbase/log"
	"github.com/mutecomm/numbase/numengine"
	"github.com/mutecomm/numbase/release"
	"github.com/mutecomm/numbase/util"
	"github.com/mutecomm/numbase/util/interrupt"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func numbaseMain() error {
	defer log.Flush()

	ne := numengine.New()
	defer ne.Close()

	interrupt.AddInterruptHandler(func() {
		log.Infof("gracefully shutting down...")
		ne.Close()
	})

	go func() {
		interrupt.ShutdownChannel <- ne.Start(os.Args)
	}()

	return <-interrupt.ShutdownChannel
}

func main() {
	// work around defer not working after os.Exit()
	if err := numbaseMain(); err != nil {
		util.Fatal(err)
	}
}
