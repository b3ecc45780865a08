// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package interrupt allows to handle interrupts.
package interrupt

import (
	"os"
	"os/signal"

	"github.com/mutecomm/numbase/log"
)

// ShutdownChannel is used to signal that shutdown is in progress.
var ShutdownChannel = make(chan error)

// interruptChannel is used to receive SIGINT (Ctrl+C) signals.
var interruptChannel chan os.Signal

// addHandlerChannel is used to add an interrupt handler to the list of
// handlers to be invoked on SIGINT (Ctrl+C) signals.
var addHandlerChannel = make(chan func())

// mainInterruptHandler runs the registered handlers on SIGINT and then
// signals shutdown on ShutdownChannel. It must be run as a goroutine.
func mainInterruptHandler() {
	var handlers []func()
	for {
		select {
		case <-interruptChannel:
			log.Infof("received SIGINT (Ctrl+C). Shutting down...")
			for _, handler := range handlers {
				handler()
			}
			ShutdownChannel <- nil

		case handler := <-addHandlerChannel:
			handlers = append(handlers, handler)
		}
	}
}

// AddInterruptHandler adds a handler to call when a SIGINT (Ctrl+C) is
// received. The first call starts listening for SIGINT.
func AddInterruptHandler(handler func()) {
	if interruptChannel == nil {
		interruptChannel = make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt)
		go mainInterruptHandler()
	}
	addHandlerChannel <- handler
}
