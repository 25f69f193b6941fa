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

type RegistryConfig struct {
	// parties known to this node without a remote lookup
	Parties map[string]*RegistryPartyConfig `json:"parties"`
	// optional company registry service consulted for parties not configured statically
	Remote RemoteRegistryConfig `json:"remote"`
	Cache  CacheConfig          `json:"cache"`
}

type RegistryPartyConfig struct {
	DisplayName  string `json:"displayName"`
	TransportKey string `json:"transportKey"`
	Member       *bool  `json:"member"`
}

type RemoteRegistryConfig struct {
	Enabled          bool `json:"enabled"`
	HTTPClientConfig `json:",inline"`
}

type CacheConfig struct {
	Capacity *int `json:"capacity"`
	// entries older than this are looked up again, zero disables expiry
	TTL *string `json:"ttl"`
}

var RegistryCacheDefaults = &CacheConfig{
	Capacity: confutil.P(1000),
	TTL:      confutil.P("5m"),
}
