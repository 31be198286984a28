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
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/seqatomic/pkg/api/handler"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List cell types and the operations they support",
	Run:   listTypes,
}

// listTypes renders a table with the exported cell types.
func listTypes(cmd *cobra.Command, args []string) {
	types := handler.NewTypes()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Go type", "Bits", "Signed", "Operations"})
	t.SetStyle(table.StyleLight)

	for _, typ := range types.Types {
		ops := make([]string, len(typ.Ops))
		for i, op := range typ.Ops {
			ops[i] = string(op)
		}
		t.AppendRow(table.Row{typ.Name, typ.GoType, typ.Bits, typ.Signed, strings.Join(ops, ", ")})
	}
	t.AppendSeparator()
	statuses := make([]string, len(types.Statuses))
	for i, s := range types.Statuses {
		statuses[i] = fmt.Sprintf("%s (%s)", s.Name, s.Alias)
	}
	t.AppendRow(table.Row{types.StatusType, "", "", "", strings.Join(statuses, ", ")})

	t.Render()
}
