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
	"net/http"

	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/bytebufferpool"
)

// apiErrors counts the requests answered with the error status
var apiErrors = expvar.NewInt("api.errors")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.B); err != nil {
		log.Warnf("unable to write the response: %v", err)
	}
}

// WriteError writes the error response. The status code is derived from the error.
func WriteError(w http.ResponseWriter, err error) {
	WriteErrorStatus(w, StatusOf(err), err)
}

// WriteErrorStatus writes the error response with the given status code.
func WriteErrorStatus(w http.ResponseWriter, status int, err error) {
	apiErrors.Add(1)
	if status >= http.StatusInternalServerError {
		log.Errorf("API request failed: %v", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// StatusOf maps the error to the HTTP status code.
func StatusOf(err error) int {
	var sizeErr *http.MaxBytesError
	switch {
	case kerrors.IsCellNotFound(err):
		return http.StatusNotFound
	case kerrors.IsCellExists(err):
		return http.StatusConflict
	case kerrors.IsZeroModulus(err):
		return http.StatusUnprocessableEntity
	case kerrors.IsUnknownKind(err), kerrors.IsUnsupportedOp(err), kerrors.IsInvalidValue(err):
		return http.StatusBadRequest
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
