// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for a last attempt to log
// something before an internal assertion panics
//
// logger.Initialise must have been called first
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log the caller's position and a formatted message, then
// panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		critical("(%q:%d) %s", file, line, message)
	} else {
		critical("%s", message)
	}
	panic(message)
}

// Panic - log a message and panic
func Panic(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		critical("(%q:%d) %s", file, line, message)
	} else {
		critical("%s", message)
	}
	panic(message)
}

// internal routine to handle an uninitialised logger channel
func critical(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
