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

package bootstrap

import (
	"os"

	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/util/log"
	"github.com/sirupsen/logrus"
)

// InitConfigAndLogger initializes the configuration and sets up the logger.
// The configuration file is optional. When it is absent, the flag values and
// the environment variables tweak the internal behaviours.
func InitConfigAndLogger(cfg *config.Config, logfile string) error {
	if err := cfg.TryLoadFile(cfg.File()); err != nil {
		return err
	}
	if err := cfg.Init(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := log.InitFromConfig(cfg.Log, logfile); err != nil {
		return err
	}
	if _, err := os.Stat(cfg.File()); err != nil {
		logrus.Debugf("configuration file %s not found. Falling back to default settings...", cfg.File())
	}
	return nil
}
