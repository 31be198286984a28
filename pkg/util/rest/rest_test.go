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

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.UserAgent(), "seqatomic/"))
		w.Write([]byte("test"))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := Get(WithURI("config"), WithTransport(fmt.Sprintf("localhost:%s", port(srv.URL))))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "test", string(resp))
}

func TestPostAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /cells/hits/fetch_add", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		w.Write(b)
	})
	mux.HandleFunc("DELETE /cells/hits", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"hits"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	addr := fmt.Sprintf("tcp://localhost:%s", port(srv.URL))

	resp, err := Post(WithURI("cells/hits/fetch_add"), WithTransport(addr), WithBody(map[string]int{"value": 2}))
	require.NoError(t, err)
	var body map[string]int
	require.NoError(t, json.Unmarshal(resp, &body))
	assert.Equal(t, 2, body["value"])

	resp, err = Delete(WithURI("cells/hits"), WithTransport(addr))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hits"}`, string(resp))
}

func TestStatusError(t *testing.T) {
	var calls int
	mux := http.NewServeMux()
	mux.HandleFunc("/cells/missing", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"cell not found"}`))
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	addr := fmt.Sprintf("localhost:%s", port(srv.URL))

	_, err := Get(WithURI("cells/missing"), WithTransport(addr))
	require.Error(t, err)
	var e *StatusError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusNotFound, e.Code)
	assert.Equal(t, "cell not found", e.Error())
	assert.Equal(t, 1, calls)

	_, err = Get(WithURI("plain"), WithTransport(addr))
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusInternalServerError, e.Code)
	assert.Equal(t, "boom", e.Message)
}

func TestServerUnavailable(t *testing.T) {
	p, err := freeport.GetFreePort()
	require.NoError(t, err)

	start := time.Now()
	_, err = Get(WithURI("types"), WithTransport(fmt.Sprintf("localhost:%d", p)), WithRetry(time.Millisecond*200))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seqatomic API server up and running on")
	assert.Less(t, time.Since(start), time.Second*5)

	_, err = Get(WithURI("types"))
	require.Error(t, err)
	assert.EqualError(t, err, "transport is not initialized")
}

func port(s string) string {
	i := strings.LastIndex(s, ":")
	if i == 0 {
		return ""
	}
	return s[i+1:]
}
