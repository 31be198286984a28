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

package log

import (
	"expvar"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/util/log/rotate"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// loggerErrors counts the failures of setting up the rotate hook
var loggerErrors = expvar.NewMap("logger.errors")

// DefaultPath returns the directory where the logs are stored unless the
// path is given in the config.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "seqatomic", "logs")
}

// InitFromConfig configures the standard logrus logger from config options. The
// log lines are written to the filename within the logs directory.
func InitFromConfig(c Config, filename string) error {
	if filename == "" {
		return errors.New("empty log file name")
	}
	path := c.Path
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return errors.Wrapf(err, "unable to create the %s logs directory", path)
	}
	file := filepath.Join(path, filename)

	var formatter logrus.Formatter
	switch c.Formatter {
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	logrus.SetFormatter(formatter)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if c.LogStdout {
		logrus.SetOutput(os.Stdout)
	} else {
		logrus.SetOutput(io.Discard)
	}

	hook, err := rotate.NewHook(rotate.Config{
		Filename:   file,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Level:      level,
		Formatter:  formatter,
	})
	if err != nil {
		loggerErrors.Add(err.Error(), 1)
		// plain file hook without rotation
		logrus.AddHook(lfshook.NewHook(file, formatter))
		logrus.Warnf("unable to initialize rotate file hook: %v", err)
		return nil
	}
	logrus.AddHook(hook)

	return nil
}
