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
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logLevel      = "logging.level"
	logMaxAge     = "logging.max-age"
	logMaxBackups = "logging.max-backups"
	logMaxSize    = "logging.max-size"
	logFormatter  = "logging.formatter"
	logPath       = "logging.path"
	logStdout     = "logging.log-stdout"
)

// Config controls where the log lines go and how they look.
type Config struct {
	// Level is the minimum level that gets logged.
	Level string `json:"logging.level" yaml:"logging.level"`
	// MaxAge is the number of days rotated files are kept for. Zero keeps them forever.
	MaxAge int `json:"logging.max-age" yaml:"logging.max-age"`
	// MaxBackups caps the number of rotated files.
	MaxBackups int `json:"logging.max-backups" yaml:"logging.max-backups"`
	// MaxSize is the size in megabytes that triggers the rotation.
	MaxSize int `json:"logging.max-size" yaml:"logging.max-size"`
	// Formatter is either json or text.
	Formatter string `json:"logging.formatter" yaml:"logging.formatter"`
	// Path is the logs directory. The user cache directory is used if empty.
	Path string `json:"logging.path" yaml:"logging.path"`
	// LogStdout mirrors the log lines to standard output.
	LogStdout bool `json:"logging.log-stdout" yaml:"logging.log-stdout"`
}

// InitFromViper initializes logging configuration from Viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.Level = v.GetString(logLevel)
	c.MaxAge = v.GetInt(logMaxAge)
	c.MaxBackups = v.GetInt(logMaxBackups)
	c.MaxSize = v.GetInt(logMaxSize)
	c.Formatter = v.GetString(logFormatter)
	c.Path = v.GetString(logPath)
	c.LogStdout = v.GetBool(logStdout)
}

// AddFlags registers persistent logging flags.
func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.String(logLevel, "info", "Specifies the minimum log level (trace|debug|info|warn|error)")
	flags.Int(logMaxAge, 0, "Number of days to keep rotated log files. By default rotated files are never removed")
	flags.Int(logMaxBackups, 5, "Maximum number of rotated log files to keep")
	flags.Int(logMaxSize, 50, "Size in megabytes of the log file that triggers the rotation")
	flags.String(logFormatter, "text", "Log line format (json|text)")
	flags.String(logPath, "", "Directory where the log files are written")
	flags.Bool(logStdout, false, "Mirrors log lines to standard output")
}
