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
	"fmt"
	"reflect"

	"github.com/rabbitstack/seqatomic/pkg/cells"
)

const cellsKey = "cells"

// CellConfig describes the cell that is created when the API server starts.
type CellConfig struct {
	// Name is the name the cell is registered under.
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// Type is the exported cell type name.
	Type cells.Kind `json:"type" yaml:"type" mapstructure:"type"`
	// Value is the initial value. The zero value of the type is used if omitted.
	Value cells.Value `json:"value" yaml:"value" mapstructure:"value"`
}

var errCellConfig = func(i int, err error) error { return fmt.Errorf("cells[%d] invalid config: %v", i, err) }

func (c *Config) tryLoadCells() error {
	raw := c.viper.Get(cellsKey)
	if raw == nil {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return fmt.Errorf("expected []interface{} type for cells but found %s", reflect.TypeOf(raw))
	}

	configs := make([]CellConfig, 0, len(list))
	for i, item := range list {
		var cellConfig CellConfig
		if err := decode(item, &cellConfig); err != nil {
			return errCellConfig(i, err)
		}
		if cellConfig.Name == "" {
			return errCellConfig(i, fmt.Errorf("cell name is required"))
		}
		configs = append(configs, cellConfig)
	}
	c.Cells = configs

	return nil
}
