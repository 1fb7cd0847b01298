// Copyright 2015 Ka-Hing Cheung
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger hands out named logrus loggers sharing one line oriented format:
//
//	2006/01/02 15:04:05.000000 hashroll[1234] <INFO>: message [function@file.go:42]
package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var mu sync.Mutex
var loggers = make(map[string]*LogHandle)

var framePlaceHolder = runtime.Frame{Function: "???", File: "???", Line: 0}

type LogHandle struct {
	logrus.Logger

	name     string
	pid      int
	colorful bool
}

func (l *LogHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvlStr := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.InfoLevel:
			color = 34 // blue
		default:
			color = 35 // magenta
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}

	const timeFormat = "2006/01/02 15:04:05.000000"
	caller := e.Caller
	if caller == nil {
		caller = &framePlaceHolder
	}

	str := fmt.Sprintf("%v %s[%d] <%v>: %v [%s@%s:%d]",
		e.Time.Format(timeFormat),
		l.name,
		l.pid,
		lvlStr,
		strings.TrimRight(e.Message, "\n"),
		MethodName(caller.Function),
		path.Base(caller.File),
		caller.Line)

	if len(e.Data) != 0 {
		str += " " + fmt.Sprint(e.Data)
	}
	return []byte(str + "\n"), nil
}

// MethodName strips the package path and closure suffixes from a runtime function name
func MethodName(fullFuncName string) string {
	if slash := strings.LastIndex(fullFuncName, "/"); slash != -1 && slash < len(fullFuncName)-1 {
		fullFuncName = fullFuncName[slash+1:]
	}

	lastDot := strings.LastIndex(fullFuncName, ".")
	if lastDot == -1 || lastDot == len(fullFuncName)-1 {
		return fullFuncName
	}

	method := fullFuncName[lastDot+1:]
	// func1, func2... are closures and a bare digit is a numbered init, name the enclosing function instead
	if isClosure(method) || (len(method) == 1 && method[0] >= '0' && method[0] <= '9') {
		if candidate := MethodName(fullFuncName[:lastDot]); candidate != "" {
			method = candidate
		}
	}
	return method
}

func isClosure(method string) bool {
	return len(method) > 4 && strings.HasPrefix(method, "func") && method[4] >= '0' && method[4] <= '9'
}

func newLogger(name string) *LogHandle {
	l := &LogHandle{
		Logger:   *logrus.New(),
		name:     name,
		pid:      os.Getpid(),
		colorful: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
	l.Formatter = l
	l.SetReportCaller(true)
	return l
}

// GetLogger returns the logger mapped to name, creating it on first use
func GetLogger(name string) *LogHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// SetLogLevel sets the level of every logger created so far
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.colorful = false
	}
}

// SetOutput redirects every logger created so far. Colour is kept only for terminals.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	colorful := false
	if f, ok := w.(*os.File); ok {
		colorful = isatty.IsTerminal(f.Fd())
	}

	for _, logger := range loggers {
		logger.SetOutput(w)
		logger.colorful = colorful
	}
}
