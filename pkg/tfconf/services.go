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

type ServicesConfig struct {
	Tasks     HTTPClientConfig `json:"tasks"`
	Documents HTTPClientConfig `json:"documents"`
	Timers    HTTPClientConfig `json:"timers"`
	Bridge    BridgeConfig     `json:"bridge"`
}

type BridgeConfig struct {
	Enabled bool `json:"enabled"`
	// instruments whose tradeSourceSystem matches are reported across the bridge
	SourceSystem     string `json:"sourceSystem"`
	HTTPClientConfig `json:",inline"`
}
