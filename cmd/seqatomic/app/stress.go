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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/seqatomic/internal/bootstrap"
	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/stress"
	"github.com/rabbitstack/seqatomic/pkg/util/spinner"
	"github.com/spf13/cobra"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Race many workers on a single cell and verify no update is lost",
	RunE:  runStress,
	Example: `
	# Increment an AtomicU64 cell with fetch-add from all logical CPUs
	seqatomic stress

	# Race 16 workers through the weak compare-exchange loop on an 8-bit cell
	seqatomic stress --stress.kind=AtomicU8 --stress.workers=16 --stress.mode=weak-cas
	`,
}

var stressConfig = config.NewWithOpts(config.WithStress())

func init() {
	stressConfig.MustViperize(stressCmd)
}

func runStress(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(stressConfig, "stress.log"); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := stressConfig.Stress
	s := spinner.Show(os.Stderr, fmt.Sprintf("Hammering %s cell with %s", c.Kind, c.Mode))
	r, err := stress.Run(ctx, c)
	spinner.Stop(s, "")
	if err != nil {
		return fmt.Errorf("%v %v", emoji.DisappointedFace, err)
	}

	renderReport(os.Stdout, r)

	if r.Lost {
		return fmt.Errorf("%v updates were lost: expected %s but the cell holds %s", emoji.Warning, r.Expected, r.Actual)
	}
	fmt.Printf("%v No updates lost\n", emoji.Rocket)
	return nil
}

func renderReport(w io.Writer, r *stress.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Cell", r.Kind})
	t.AppendRow(table.Row{"Mode", r.Mode})
	t.AppendRow(table.Row{"Workers", r.Workers})
	t.AppendRow(table.Row{"Iterations", humanize.Comma(int64(r.Iterations))})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Expected", r.Expected})
	t.AppendRow(table.Row{"Actual", r.Actual})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Operations", humanize.Comma(int64(r.Ops))})
	t.AppendRow(table.Row{"Retries", humanize.Comma(int64(r.Retries))})
	t.AppendRow(table.Row{"Backoffs", humanize.Comma(int64(r.Backoffs))})
	t.AppendRow(table.Row{"Elapsed", r.Elapsed})
	t.AppendRow(table.Row{"Throughput", humanize.SIWithDigits(r.Throughput, 2, "ops/s")})

	t.Render()
}
