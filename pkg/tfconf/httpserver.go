/*
 * Copyright © 2026 Kaleido, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package tfconf

import "github.com/alexmedkex/forkly-sub001/pkg/confutil"

type HTTPServerConfig struct {
	Address         *string `json:"address"`
	Port            *int    `json:"port"`
	ReadTimeout     *string `json:"readTimeout"`
	WriteTimeout    *string `json:"writeTimeout"`
	ShutdownTimeout *string `json:"shutdownTimeout"`
	// the Request-Timeout header of a request can extend the default up to the max
	DefaultRequestTimeout *string `json:"defaultRequestTimeout"`
	MaxRequestTimeout     *string `json:"maxRequestTimeout"`
}

var HTTPDefaults = &HTTPServerConfig{
	Address:               confutil.P("127.0.0.1"),
	ReadTimeout:           confutil.P("30s"),
	WriteTimeout:          confutil.P("2m"),
	ShutdownTimeout:       confutil.P("10s"),
	DefaultRequestTimeout: confutil.P("30s"),
	MaxRequestTimeout:     confutil.P("2m"),
}

var APIDefaults = &HTTPServerConfig{
	Port: confutil.P(8080),
}

type MetricsServerConfig struct {
	Enabled *bool `json:"enabled"`
	HTTPServerConfig
}

var MetricsServerDefaults = &MetricsServerConfig{
	Enabled: confutil.P(false),
	HTTPServerConfig: HTTPServerConfig{
		Port: confutil.P(9090),
	},
}
