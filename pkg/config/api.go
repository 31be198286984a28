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
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	transport = "api.transport"
	timeout   = "api.timeout"
	rateLimit = "api.rate-limit"
	rateBurst = "api.rate-burst"
)

// APIConfig contains API specific config options.
type APIConfig struct {
	// Transport is the TCP address the API HTTP server listens on.
	Transport string `json:"api.transport" yaml:"api.transport"`
	// Timeout determines the timeout for the API server responses.
	Timeout time.Duration `json:"api.timeout" yaml:"api.timeout"`
	// RateLimit is the number of requests per second the server accepts. Zero disables the limit.
	RateLimit float64 `json:"api.rate-limit" yaml:"api.rate-limit"`
	// RateBurst is the maximum burst of requests allowed above the rate limit.
	RateBurst int `json:"api.rate-burst" yaml:"api.rate-burst"`
}

// initFromViper initializes API configuration from Viper.
func (c *APIConfig) initFromViper(v *viper.Viper) {
	c.Transport = v.GetString(transport)
	c.Timeout = v.GetDuration(timeout)
	c.RateLimit = v.GetFloat64(rateLimit)
	c.RateBurst = v.GetInt(rateBurst)
}

func (c *APIConfig) addFlags(flags *pflag.FlagSet, server bool) {
	flags.String(transport, "localhost:8483", "Specifies the TCP address of the API HTTP server")
	flags.Duration(timeout, time.Second*15, "Determines the timeout for the API server responses")
	if server {
		flags.Float64(rateLimit, 0, "Specifies the number of API requests per second. By default, requests are not limited")
		flags.Int(rateBurst, 100, "Specifies the maximum burst of API requests above the rate limit")
	}
}
