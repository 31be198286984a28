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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/util/version"
	log "github.com/sirupsen/logrus"
)

var transport = &http.Transport{
	DialContext: (&net.Dialer{Timeout: time.Second * 5}).DialContext,
}

type opts struct {
	addr        string
	uri         string
	contentType string
	timeout     time.Duration
	retry       time.Duration
	body        interface{}
}

// Option represents the option for the HTTP client.
type Option func(o *opts)

// WithTransport sets the address of the API server. The tcp:// scheme is optional.
func WithTransport(addr string) Option {
	return func(o *opts) {
		o.addr = strings.TrimPrefix(addr, "tcp://")
	}
}

// WithURI initializes the URI where the request is sent.
func WithURI(uri string) Option {
	return func(o *opts) {
		o.uri = uri
	}
}

// WithContentType sets the content type header for the HTTP requests.
func WithContentType(contentType string) Option {
	return func(o *opts) {
		o.contentType = contentType
	}
}

// WithTimeout sets the timeout of a single request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		o.timeout = timeout
	}
}

// WithRetry determines for how long the connection failures are retried.
func WithRetry(d time.Duration) Option {
	return func(o *opts) {
		o.retry = d
	}
}

// WithBody sets the value that is encoded as the JSON request body.
func WithBody(body interface{}) Option {
	return func(o *opts) {
		o.body = body
	}
}

// StatusError is returned when the server answers with the non-2xx status code.
type StatusError struct {
	Code    int
	Message string
}

// Error returns the error message.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

// Get performs the GET request.
func Get(opts ...Option) ([]byte, error) {
	return request(http.MethodGet, opts...)
}

// Post performs the POST request.
func Post(opts ...Option) ([]byte, error) {
	return request(http.MethodPost, opts...)
}

// Delete performs the DELETE request.
func Delete(opts ...Option) ([]byte, error) {
	return request(http.MethodDelete, opts...)
}

func request(method string, options ...Option) ([]byte, error) {
	opts := opts{retry: time.Second}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.addr == "" {
		return nil, fmt.Errorf("transport is not initialized")
	}

	timeout := opts.timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}

	contentType := opts.contentType
	if contentType == "" {
		contentType = "application/json"
	}

	var payload []byte
	if opts.body != nil {
		var err error
		payload, err = json.Marshal(opts.body)
		if err != nil {
			return nil, err
		}
	}

	client := http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	url := "http://" + path.Join(opts.addr, opts.uri)

	var body []byte
	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Add("Content-Type", contentType)
		req.Header.Set("User-Agent", version.ProductToken())
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return backoff.Permanent(statusError(resp.StatusCode, body))
		}
		return nil
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if opts.retry > 0 {
		b = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(time.Millisecond*50),
			backoff.WithMaxInterval(time.Millisecond*500),
			backoff.WithMaxElapsedTime(opts.retry),
		)
	}
	notify := func(err error, d time.Duration) {
		log.Debugf("%s %s failed: %v. Retrying in %v", method, url, err, d)
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		if _, ok := err.(*StatusError); ok {
			return body, err
		}
		return nil, kerrors.ErrHTTPServerUnavailable(opts.addr, err)
	}
	return body, nil
}

func statusError(code int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return &StatusError{Code: code, Message: strings.TrimSpace(string(body))}
	}
	return &StatusError{Code: code, Message: e.Error}
}
