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
	"os"

	"github.com/rabbitstack/seqatomic/cmd/seqatomic/common"
	"github.com/rabbitstack/seqatomic/internal/bootstrap"
	"github.com/rabbitstack/seqatomic/pkg/api"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	"github.com/rabbitstack/seqatomic/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve atomic cells over the HTTP API",
	Aliases: []string{"run"},
	RunE:    serve,
	Example: `
	# Serve on the default transport
	seqatomic serve

	# Serve on a custom address and cap the request rate
	seqatomic serve --api.transport=0.0.0.0:9091 --api.rate-limit=500
	`,
}

var (
	// the serve command config
	serveConfig = config.NewWithOpts(config.WithServe())
)

func init() {
	serveConfig.MustViperize(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(serveConfig, "seqatomic.log"); err != nil {
		return err
	}
	// set up the signals
	stopCh := common.Signals()

	log.Infof("bootstrapping with pid %d", os.Getpid())

	store := cells.NewStore()
	if err := api.StartServer(serveConfig, store); err != nil {
		return err
	}

	<-stopCh

	log.Info("shutting down the API server")
	ctx, cancel := context.WithTimeout(context.Background(), serveConfig.API.Timeout)
	defer cancel()
	return api.CloseServer(ctx)
}
