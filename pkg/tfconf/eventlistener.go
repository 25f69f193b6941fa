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

type EventListenerConfig struct {
	Enabled          *bool       `json:"enabled"`
	PollInterval     *string     `json:"pollInterval"`
	BatchSize        *int        `json:"batchSize"`
	FromBlock        *uint64     `json:"fromBlock"`
	NotFoundAttempts *int        `json:"notFoundAttempts"`
	Retry            RetryConfig `json:"retry"`
}

var EventListenerDefaults = &EventListenerConfig{
	Enabled:          confutil.P(true),
	PollInterval:     confutil.P("1s"),
	BatchSize:        confutil.P(500),
	FromBlock:        confutil.P(uint64(0)),
	NotFoundAttempts: confutil.P(10),
}

type RetryConfig struct {
	InitialDelay *string  `json:"initialDelay"`
	MaxDelay     *string  `json:"maxDelay"`
	Factor       *float64 `json:"factor"`
	MaxAttempts  *int     `json:"maxAttempts"`
}

var RetryDefaults = &RetryConfig{
	InitialDelay: confutil.P("250ms"),
	MaxDelay:     confutil.P("30s"),
	Factor:       confutil.P(2.0),
	MaxAttempts:  confutil.P(0),
}
