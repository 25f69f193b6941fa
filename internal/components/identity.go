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

// IdentityResolver answers questions about the parties of the network
type IdentityResolver interface {
	// ResolveTransportKeys maps every domain hashed party id to its transport
	// key, failing with MissingParty if any has no key
	ResolveTransportKeys(ctx context.Context, partyHashes []tftypes.Bytes32) ([]string, error)
	ResolveDisplayName(ctx context.Context, partyID string) (string, error)
	IsMember(ctx context.Context, partyID string) (bool, error)
	Register(ctx context.Context, partyID string) error
}
