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

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/rabbitstack/seqatomic/cmd/seqatomic/common"
	"github.com/rabbitstack/seqatomic/internal/bootstrap"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/util/rest"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <cell> <op> [operands]",
	Short: "Invoke the operation on the cell of a running server",
	Args:  cobra.MinimumNArgs(2),
	RunE:  call,
	Example: `
	# Load the cell value
	seqatomic call hits load

	# Add to the cell and print the previous value
	seqatomic call hits fetch_add 5

	# Install 10 if the cell holds 7
	seqatomic call hits compare_exchange 7 10

	# Increment the cell modulo 16
	seqatomic call hits fetch_add_mod 1 16
	`,
}

var callConfig = config.NewWithOpts(config.WithCall())

func init() {
	callConfig.MustViperize(callCmd)
}

func call(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(callConfig, "cli.log"); err != nil {
		return err
	}
	c, err := common.ParseCall(args[1], args[2:])
	if err != nil {
		return err
	}
	body, err := rest.Post(
		rest.WithTransport(callConfig.API.Transport),
		rest.WithURI(path.Join("cells", args[0], string(c.Op))),
		rest.WithTimeout(callConfig.API.Timeout),
		rest.WithBody(c),
	)
	if err != nil {
		return err
	}
	var res cells.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}
	if res.Status != "" {
		_, err = fmt.Fprintf(os.Stdout, "%s %s\n", res.Status, res.Value)
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, res.Value)
	return err
}
