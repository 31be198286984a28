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

import (
	"encoding/json"
	"errors"
	"expvar"
	"io"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const maxBodySize = 1 << 20

// cellsCount reflects the number of registered cells
var cellsCount = expvar.NewInt("cells.count")

// Cells serves the cell store over HTTP.
type Cells struct {
	store   *cells.Store
	metrics *Metrics
}

// NewCells creates the cell handlers on top of the store.
func NewCells(store *cells.Store, metrics *Metrics) *Cells {
	h := &Cells{store: store, metrics: metrics}
	h.sync()
	return h
}

func (h *Cells) sync() {
	n := h.store.Len()
	cellsCount.Set(int64(n))
	h.metrics.cells.Set(float64(n))
}

// Types lists the exported cell types with their operations.
func (h *Cells) Types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewTypes())
}

// List returns all cells sorted by name.
func (h *Cells) List(w http.ResponseWriter, r *http.Request) {
	names := h.store.Names()
	list := make([]CellInfo, 0, len(names))
	for _, name := range names {
		c, err := h.store.Get(name)
		if err != nil {
			// removed in the meantime
			continue
		}
		list = append(list, CellInfo{Name: name, Type: c.Kind(), Value: c.Load()})
	}
	writeJSON(w, http.StatusOK, list)
}

// Create registers a new cell.
func (h *Cells) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	kind, err := cells.ParseKind(req.Type)
	if err != nil {
		WriteError(w, err)
		return
	}
	name, c, err := h.store.Create(req.Name, kind, req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.sync()
	log.Debugf("created %s cell %s", kind, name)
	writeJSON(w, http.StatusCreated, CellInfo{Name: name, Type: kind, Value: c.Load()})
}

// Get loads the cell.
func (h *Cells) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c, err := h.store.Get(name)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CellInfo{Name: name, Type: c.Kind(), Value: c.Load()})
}

// Delete removes the cell and returns its last value.
func (h *Cells) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c, err := h.store.Remove(name)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.sync()
	log.Debugf("removed cell %s", name)
	writeJSON(w, http.StatusOK, CellInfo{Name: name, Type: c.Kind(), Value: c.Load()})
}

// Invoke runs the operation named in the path on the cell.
func (h *Cells) Invoke(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Get(r.PathValue("name"))
	if err != nil {
		WriteError(w, err)
		return
	}
	op, err := cells.ParseOp(r.PathValue("op"))
	if err != nil {
		WriteError(w, err)
		return
	}
	var call cells.Call
	if err := decodeBody(w, r, &call); err != nil {
		WriteError(w, err)
		return
	}
	call.Op = op

	res, err := cells.Invoke(c, call)
	if err != nil {
		h.metrics.ops.WithLabelValues(c.Kind().String(), string(op), "error").Inc()
		WriteError(w, err)
		return
	}
	status := res.Status
	if status == "" {
		status = "ok"
	}
	h.metrics.ops.WithLabelValues(c.Kind().String(), string(op), status).Inc()
	writeJSON(w, http.StatusOK, res)
}

// decodeBody decodes the JSON request body. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	var sizeErr *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &sizeErr):
		return err
	default:
		return pkgerrors.Wrapf(kerrors.ErrInvalidValue, "malformed request body: %v", err)
	}
}
