/*
 * Copyright 2021-2026 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rotate

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration for the rotate file hook.
type Config struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Level      logrus.Level
	Formatter  logrus.Formatter
}

// File is the logrus hook that writes entries into the size-rotated file.
// Each entry is annotated with the source location of the logging call.
type File struct {
	config Config
	w      *lumberjack.Logger
}

// maxDepth bounds the stack walk when looking for the logging call site
const maxDepth = 25

// NewHook builds a new rotate file hook. It fails if the log file can't be
// opened for writing.
func NewHook(config Config) (*File, error) {
	if config.Filename == "" {
		return nil, errors.New("log file name is required")
	}
	if config.Formatter == nil {
		config.Formatter = &logrus.TextFormatter{}
	}
	f, err := os.OpenFile(config.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	_ = f.Close()

	return &File{
		config: config,
		w: &lumberjack.Logger{
			Filename:   config.Filename,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
		},
	}, nil
}

// Levels returns all levels up to the configured one.
func (hook *File) Levels() []logrus.Level {
	return logrus.AllLevels[:hook.config.Level+1]
}

// Fire formats the entry and writes it to the log file.
func (hook *File) Fire(entry *logrus.Entry) error {
	e := entry.WithField("source", callSite())
	e.Level = entry.Level
	e.Message = entry.Message
	e.Time = entry.Time
	b, err := hook.config.Formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = hook.w.Write(b)
	return err
}

// Close closes the underlying log file.
func (hook *File) Close() error { return hook.w.Close() }

// callSite returns the file and line of the first frame outside of logrus
// and this package.
func callSite() string {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			return fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

func skipFrame(function string) bool {
	return strings.Contains(function, "sirupsen/logrus") ||
		strings.Contains(function, "util/log/rotate")
}
