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

package handler

import "github.com/rabbitstack/seqatomic/pkg/cells"

// TypeInfo describes the exported cell type.
type TypeInfo struct {
	Name   string     `json:"name"`
	GoType string     `json:"go_type"`
	Bits   int        `json:"bits"`
	Signed bool       `json:"signed"`
	Ops    []cells.Op `json:"ops"`
}

// StatusInfo is the member of the exported status type. The alias is
// accepted wherever the name is.
type StatusInfo struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// Types is the payload of the type listing.
type Types struct {
	Types      []TypeInfo   `json:"types"`
	StatusType string       `json:"status_type"`
	Statuses   []StatusInfo `json:"statuses"`
}

// CellInfo is the cell representation returned by the API.
type CellInfo struct {
	Name  string      `json:"name"`
	Type  cells.Kind  `json:"type"`
	Value cells.Value `json:"value"`
}

// CreateRequest is the body of the cell creation request.
type CreateRequest struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value cells.Value `json:"value"`
}

// ErrorResponse is returned along with the non-2xx status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTypes builds the type listing from the kind registry.
func NewTypes() Types {
	kinds := cells.Kinds()
	types := Types{
		Types:      make([]TypeInfo, 0, len(kinds)),
		StatusType: cells.StatusType,
	}
	for _, k := range kinds {
		types.Types = append(types.Types, TypeInfo{
			Name:   k.String(),
			GoType: k.GoType(),
			Bits:   k.Bits(),
			Signed: k.Signed(),
			Ops:    cells.Ops(k),
		})
	}
	for _, s := range cells.Statuses() {
		types.Statuses = append(types.Statuses, StatusInfo{Name: s.String(), Alias: s.Alias()})
	}
	return types
}
