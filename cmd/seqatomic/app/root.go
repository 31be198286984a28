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
	"github.com/rabbitstack/seqatomic/cmd/seqatomic/app/cells"
	"github.com/rabbitstack/seqatomic/cmd/seqatomic/app/config"
	"github.com/rabbitstack/seqatomic/cmd/seqatomic/app/stats"
	"github.com/spf13/cobra"
)

// RootCmd is the entrance to seqatomic CLI
var RootCmd = &cobra.Command{
	Use:   "seqatomic",
	Short: "Sequentially consistent atomic cells",
	Long: `
	seqatomic exposes fixed-width integer and boolean cells whose every operation
	is atomic and sequentially consistent. Cells are served over the HTTP API and
	can be inspected or mutated from the command line. The stress command verifies
	no update is lost when many workers race on the same cell.
	`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(callCmd)
	RootCmd.AddCommand(typesCmd)
	RootCmd.AddCommand(stressCmd)
	RootCmd.AddCommand(cells.Command)
	RootCmd.AddCommand(config.Command)
	RootCmd.AddCommand(stats.Command)
	RootCmd.AddCommand(versionCmd)
}
