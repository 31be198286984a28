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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rabbitstack/seqatomic/pkg/stress"
	"github.com/rabbitstack/seqatomic/pkg/util/log"
	"github.com/rabbitstack/seqatomic/pkg/util/multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "config-file"
	envPrefix  = "seqatomic"
)

// Config stores configuration options for fine-tuning the behaviour of the cell server and tools.
type Config struct {
	// API stores global HTTP API preferences
	API APIConfig `json:"api" yaml:"api"`
	// Stress contains the settings of the contention run
	Stress stress.Config `json:"stress" yaml:"stress"`
	// Cells are the cells created when the API server starts
	Cells []CellConfig `json:"cells" yaml:"cells"`
	// Log contains log-specific configuration options
	Log log.Config `json:"logging" yaml:"logging"`

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options determines which config flags are toggled depending on the command type.
type Options struct {
	serve  bool
	call   bool
	stress bool
}

// Option is the type alias for the config option.
type Option func(*Options)

// WithServe determines the serve command is executed.
func WithServe() Option {
	return func(o *Options) {
		o.serve = true
	}
}

// WithCall determines one of the API client commands is executed.
func WithCall() Option {
	return func(o *Options) {
		o.call = true
	}
}

// WithStress determines the stress command is executed.
func WithStress() Option {
	return func(o *Options) {
		o.stress = true
	}
}

// NewWithOpts builds a new configuration store from a variety of sources such as configuration files,
// environment variables or command line flags.
func NewWithOpts(options ...Option) *Config {
	opts := &Options{}

	for _, opt := range options {
		opt(opts)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	c := &Config{
		API:    APIConfig{},
		Stress: stress.Config{},
		Log:    log.Config{},
		viper:  v,
		flags:  new(pflag.FlagSet),
		opts:   opts,
	}

	c.addFlags()

	return c
}

// MustViperize adds the flag set to the Cobra command and binds them within the Viper flags.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Init setups the configuration state from Viper.
func (c *Config) Init() error {
	c.API.initFromViper(c.viper)
	c.Stress.InitFromViper(c.viper)
	c.Log.InitFromViper(c.viper)

	if c.opts.serve {
		if err := c.tryLoadCells(); err != nil {
			return err
		}
	}
	return nil
}

// TryLoadFile attempts to load the configuration file from specified path on the file system.
// The file is optional, so a missing file is not an error.
func (c *Config) TryLoadFile(file string) error {
	if file == "" {
		return nil
	}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil
	}
	c.viper.SetConfigFile(file)
	return c.viper.ReadInConfig()
}

// Validate ensures that all configuration options provided by user have the expected values. It returns
// a list of validation errors prefixed with the offending configuration property/flag.
func (c *Config) Validate() error {
	// we'll first validate the structure and values of the config file
	file := c.File()
	b, err := os.ReadFile(file)
	switch {
	case os.IsNotExist(err) || file == "":
	case err != nil:
		return err
	default:
		var out interface{}
		switch filepath.Ext(file) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(b, &out)
		case ".json":
			err = json.Unmarshal(b, &out)
		default:
			return fmt.Errorf("%s is not a supported config file extension", filepath.Ext(file))
		}
		if err != nil {
			return fmt.Errorf("couldn't read the config file: %v", err)
		}
		if valid, errs := validate(out); !valid || len(errs) > 0 {
			return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
		}
	}
	// now validate the Viper config flags
	if valid, errs := validate(c.viper.AllSettings()); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", multierror.Wrap(errs...))
	}
	return nil
}

// File returns the config file path.
func (c *Config) File() string { return c.viper.GetString(configFile) }

// DefaultFile returns the location of the configuration file unless it is overridden by the flag.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "seqatomic.yml")
	}
	return filepath.Join(dir, "seqatomic", "seqatomic.yml")
}

func (c *Config) addFlags() {
	c.flags.String(configFile, DefaultFile(), "Indicates the location of the configuration file")
	if c.opts.serve || c.opts.call {
		c.API.addFlags(c.flags, c.opts.serve)
	}
	if c.opts.stress {
		stress.AddFlags(c.flags)
	}
	c.Log.AddFlags(c.flags)
}
