// Copyright 2026 xgfone
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

package sail

import (
	"fmt"
	"io"
	"log"
)

// Logger is the logger interface of the dispatcher.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLoggerFromWriter returns a Logger based on the stdlib log, which
// writes the log messages into w with the prefix.
func NewLoggerFromWriter(w io.Writer, prefix string, flags ...int) Logger {
	flag := log.LstdFlags | log.Lmicroseconds
	if len(flags) > 0 {
		flag = flags[0]
	}
	return stdlog{log.New(w, prefix, flag)}
}

type stdlog struct{ *log.Logger }

func (l stdlog) output(level, format string, args ...interface{}) {
	if l.Logger == nil {
		return
	} else if len(args) == 0 {
		l.Output(3, level+format)
	} else {
		l.Output(3, fmt.Sprintf(level+format, args...))
	}
}

func (l stdlog) Debugf(format string, args ...interface{}) {
	l.output("[D] ", format, args...)
}

func (l stdlog) Infof(format string, args ...interface{}) {
	l.output("[I] ", format, args...)
}

func (l stdlog) Warnf(format string, args ...interface{}) {
	l.output("[W] ", format, args...)
}

func (l stdlog) Errorf(format string, args ...interface{}) {
	l.output("[E] ", format, args...)
}
