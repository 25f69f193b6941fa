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

package components

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
)

type BroadcastRequest struct {
	From       tftypes.EthAddress  `json:"from"`
	To         *tftypes.EthAddress `json:"to,omitempty"`
	Value      string              `json:"value"`
	Data       tftypes.HexBytes    `json:"data"`
	PrivateFor []string            `json:"privateFor,omitempty"`
}

// SigningGateway holds the signing key of the local party
type SigningGateway interface {
	ObtainKey(ctx context.Context) (tftypes.EthAddress, error)
	Sign(ctx context.Context, payload []byte) ([]byte, error)
	Broadcast(ctx context.Context, tx *BroadcastRequest) (tftypes.Bytes32, error)
}
