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

package cells

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/seqatomic/internal/bootstrap"
	"github.com/rabbitstack/seqatomic/pkg/api/handler"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/util/rest"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "cells",
	Short: "List, create, inspect or remove cells of a running server",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cells",
	Args:  cobra.NoArgs,
	RunE:  list,
}

var createCmd = &cobra.Command{
	Use:   "create <type> [value]",
	Short: "Create the cell of the given type",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  create,
	Example: `
	# Create a zeroed 64-bit counter under a generated name
	seqatomic cells create AtomicU64

	# Create a named boolean flag
	seqatomic cells create AtomicBool true --name ready
	`,
}

var getCmd = &cobra.Command{
	Use:   "get <cell>",
	Short: "Show the cell",
	Args:  cobra.ExactArgs(1),
	RunE:  get,
}

var removeCmd = &cobra.Command{
	Use:     "remove <cell>",
	Short:   "Remove the cell",
	Aliases: []string{"rm", "delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    remove,
}

var cfg = config.NewWithOpts(config.WithCall())

var name string

func init() {
	cfg.MustViperize(Command)

	createCmd.Flags().StringVarP(&name, "name", "n", "", "Name of the cell. A random name is generated if omitted")

	Command.AddCommand(listCmd)
	Command.AddCommand(createCmd)
	Command.AddCommand(getCmd)
	Command.AddCommand(removeCmd)
}

func opts(uri string, extra ...rest.Option) []rest.Option {
	return append([]rest.Option{
		rest.WithTransport(cfg.API.Transport),
		rest.WithURI(uri),
		rest.WithTimeout(cfg.API.Timeout),
	}, extra...)
}

func list(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg, "cli.log"); err != nil {
		return err
	}
	body, err := rest.Get(opts("cells")...)
	if err != nil {
		return err
	}
	var infos []handler.CellInfo
	if err := json.Unmarshal(body, &infos); err != nil {
		return err
	}
	render(os.Stdout, infos...)
	return nil
}

func create(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg, "cli.log"); err != nil {
		return err
	}
	req := handler.CreateRequest{Name: name, Type: args[0]}
	if len(args) > 1 {
		req.Value = cells.ParseValue(args[1])
	}
	body, err := rest.Post(opts("cells", rest.WithBody(req))...)
	if err != nil {
		return err
	}
	return renderOne(body)
}

func get(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg, "cli.log"); err != nil {
		return err
	}
	body, err := rest.Get(opts(path.Join("cells", args[0]))...)
	if err != nil {
		return err
	}
	return renderOne(body)
}

func remove(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg, "cli.log"); err != nil {
		return err
	}
	body, err := rest.Delete(opts(path.Join("cells", args[0]))...)
	if err != nil {
		return err
	}
	var info handler.CellInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return err
	}
	_, err = fmt.Fprintf(os.Stdout, "removed %s cell %s holding %s\n", info.Type, info.Name, info.Value)
	return err
}

func renderOne(body []byte) error {
	var info handler.CellInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return err
	}
	render(os.Stdout, info)
	return nil
}

func render(w io.Writer, infos ...handler.CellInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Type", "Value"})
	t.SetStyle(table.StyleLight)

	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Type, info.Value})
	}
	t.Render()
}
