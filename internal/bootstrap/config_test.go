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
	"path/filepath"
	"testing"

	"github.com/rabbitstack/seqatomic/pkg/config"
	"github.com/rabbitstack/seqatomic/pkg/stress"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, args ...string) *config.Config {
	cfg := config.NewWithOpts(config.WithStress())
	cmd := &cobra.Command{}
	cfg.MustViperize(cmd)
	require.NoError(t, cmd.PersistentFlags().Parse(args))
	return cfg
}

func TestInitConfigAndLogger(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "seqatomic.yml")
	require.NoError(t, os.WriteFile(file, []byte("stress:\n  mode: cas\n  workers: 3\n"), 0o644))

	cfg := setup(t, "--config-file="+file, "--logging.path="+filepath.Join(dir, "logs"))
	require.NoError(t, InitConfigAndLogger(cfg, "stress.log"))

	assert.Equal(t, stress.CAS, cfg.Stress.Mode)
	assert.Equal(t, 3, cfg.Stress.Workers)

	logrus.Info("stress run configured")
	assert.FileExists(t, filepath.Join(dir, "logs", "stress.log"))
}

func TestInitConfigAndLoggerMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := setup(t, "--config-file="+filepath.Join(dir, "none.yml"), "--logging.path="+dir, "--stress.mode=weak-cas")
	require.NoError(t, InitConfigAndLogger(cfg, "stress.log"))
	assert.Equal(t, stress.WeakCAS, cfg.Stress.Mode)
}

func TestInitConfigAndLoggerInvalid(t *testing.T) {
	dir := t.TempDir()
	cfg := setup(t, "--config-file="+filepath.Join(dir, "none.yml"), "--logging.path="+dir, "--stress.mode=spin")
	require.Error(t, InitConfigAndLogger(cfg, "stress.log"))

	cfg = setup(t, "--config-file="+filepath.Join(dir, "none.yml"), "--logging.path="+dir, "--logging.level=loud")
	require.Error(t, InitConfigAndLogger(cfg, "stress.log"))
}
