// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cihub/seelog"
)

// PrefixLen is the length of the command prefix written to every log line.
const PrefixLen = 5

// Levels lists the valid logging levels, from most to least verbose.
var Levels = []string{"trace", "debug", "info", "warn", "error", "critical"}

var logger seelog.LoggerInterface

func init() {
	// disable logger by default
	logger = seelog.Disabled
}

const config = `
<seelog type="sync" minlevel="%s">
	<outputs formatid="all">
		%s
		%s
	</outputs>
	<formats>
		<format id="all" format="%%UTCDate %%UTCTime [%s] [%%LEV] %%Msg%%n" />
	</formats>
</seelog>`

// Init initializes the logging framework to the given logging level.
// If logDir is not empty logging is done to a rolling logfile in that
// directory. If logToConsole is true the console logging is activated.
// Without either output logging stays disabled.
// cmdPrefix is padded with spaces (or cut) to PrefixLen characters.
// If the given level is invalid or the initialization fails, an error is
// returned.
func Init(logLevel, cmdPrefix, logDir string, logToConsole bool) error {
	if _, found := seelog.LogLevelFromString(logLevel); !found {
		return fmt.Errorf("log: level '%s' is invalid, use one of {%s}",
			logLevel, strings.Join(Levels, ", "))
	}
	var console string
	if logToConsole {
		console = "<console />"
	}
	var file string
	if logDir != "" {
		name := filepath.Base(os.Args[0]) + ".log"
		file = fmt.Sprintf("<rollingfile type=\"size\" filename=\"%s\" maxsize=\"10485760\" maxrolls=\"3\" />",
			filepath.Join(logDir, name))
	}
	if console == "" && file == "" {
		Disable()
		return nil
	}
	l, err := seelog.LoggerFromConfigAsString(fmt.Sprintf(config, logLevel,
		console, file, Prefix(cmdPrefix)))
	if err != nil {
		return err
	}
	l.SetAdditionalStackDepth(1)
	UseLogger(l)
	Infof("%s started (built with %s %s for %s/%s)", os.Args[0],
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Prefix returns cmdPrefix padded or cut to PrefixLen characters.
func Prefix(cmdPrefix string) string {
	if len(cmdPrefix) >= PrefixLen {
		return cmdPrefix[:PrefixLen]
	}
	return cmdPrefix + strings.Repeat(" ", PrefixLen-len(cmdPrefix))
}

// Flush flushes all the messages in the logger.
func Flush() {
	Infof("%s stopping", os.Args[0])
	logger.Flush()
}

// Critical formats message using the default formats for its operands and
// writes to default logger with log level = Critical.
// If v is a single error, that error is returned unchanged.
func Critical(v ...interface{}) error {
	if err := single(v); err != nil {
		logger.Critical(err)
		return err
	}
	return logger.Critical(v...)
}

// Criticalf formats message according to format specifier and writes to
// default logger with log level = Critical.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error formats message using the default formats for its operands and writes
// to default logger with log level = Error.
// If v is a single error, that error is returned unchanged.
func Error(v ...interface{}) error {
	if err := single(v); err != nil {
		logger.Error(err)
		return err
	}
	return logger.Error(v...)
}

// Errorf formats message according to format specifier and writes to default
// logger with log level = Error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn formats message using the default formats for its operands and writes
// to default logger with log level = Warn.
func Warn(v ...interface{}) error {
	if err := single(v); err != nil {
		logger.Warn(err)
		return err
	}
	return logger.Warn(v...)
}

// Warnf formats message according to format specifier and writes to default
// logger with log level = Warn.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info formats message using the default formats for its operands and writes
// to default logger with log level = Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof formats message according to format specifier and writes to default
// logger with log level = Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug formats message using the default formats for its operands and writes
// to default logger with log level = Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf formats message according to format specifier and writes to default
// logger with log level = Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// Trace formats message using the default formats for its operands and writes
// to default logger with log level = Trace.
func Trace(v ...interface{}) {
	logger.Trace(v...)
}

// Tracef formats message according to format specifier and writes to default
// logger with log level = Trace.
func Tracef(format string, params ...interface{}) {
	logger.Tracef(format, params...)
}

// single returns the error if v consists of exactly one, nil otherwise.
func single(v []interface{}) error {
	if len(v) != 1 {
		return nil
	}
	err, _ := v[0].(error)
	return err
}

// UseLogger replaces the package logger with newLogger.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// Disable turns logging off again.
func Disable() {
	UseLogger(seelog.Disabled)
}

// SetLogWriter logs every level to writer, without any formatting.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}
