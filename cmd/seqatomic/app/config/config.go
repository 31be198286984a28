/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rabbitstack/seqatomic/internal/bootstrap"
	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/util/rest"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "config",
	Short: "Show runtime config",
	RunE:  printConfig,
}

var (
	// config command options
	cfg = config.NewWithOpts(config.WithCall())

	local bool
)

func init() {
	cfg.MustViperize(Command)
	Command.Flags().BoolVarP(&local, "local", "l", false, "Print the local settings instead of querying the running server")
}

func printConfig(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg, "cli.log"); err != nil {
		return err
	}
	if local {
		_, err := fmt.Fprintln(os.Stdout, cfg.Print())
		return err
	}
	body, err := rest.Get(rest.WithTransport(cfg.API.Transport), rest.WithURI("config"), rest.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out.String())
	return err
}
