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

package hashcodec

import (
	"context"
	"math/big"
	"strings"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	selectorLen = 4
	// v, r and s are the first three parameters of every signed contract call
	signatureSlotsLen = 3 * 32
)

// HashWithNonce binds a message to the contract that will verify it, and the
// replay counter that contract expects next:
//
//	keccak256(address || nonce-as-big-endian-bytes || keccak256(message))
func HashWithNonce(ctx context.Context, address []byte, nonce uint64, message []byte) (tftypes.Bytes32, error) {
	if len(address) != 20 {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgHashInvalidAddress, len(address))
	}
	if nonce == 0 {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgHashInvalidNonce, nonce)
	}
	if len(message) == 0 {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgHashEmptyMessage)
	}
	contentHash := tftypes.Keccak256(message)
	return tftypes.Keccak256(address, nonceBytes(nonce), contentHash[:]), nil
}

// HashWithCallData hashes call data with the signature slots removed, so the
// result is the same before and after the signature is embedded in the call
func HashWithCallData(ctx context.Context, address []byte, nonce uint64, callData []byte) (tftypes.Bytes32, error) {
	if len(callData) == 0 {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgHashEmptyCallData)
	}
	return HashWithNonce(ctx, address, nonce, StripSignatureSlots(callData))
}

func StripSignatureSlots(callData []byte) []byte {
	if len(callData) < selectorLen+signatureSlotsLen {
		return callData
	}
	stripped := make([]byte, 0, len(callData)-signatureSlotsLen)
	stripped = append(stripped, callData[:selectorLen]...)
	return append(stripped, callData[selectorLen+signatureSlotsLen:]...)
}

// nonceBytes is the even length hex rendering of the nonce, as bytes
func nonceBytes(nonce uint64) []byte {
	return new(big.Int).SetUint64(nonce).Bytes()
}

// DomainHash is the ENS style namehash of "<identifier>.<namespace>"
func DomainHash(identifier, namespace string) tftypes.Bytes32 {
	name := identifier
	if namespace != "" {
		name = identifier + "." + namespace
	}
	var node tftypes.Bytes32
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := tftypes.Keccak256([]byte(labels[i]))
		node = tftypes.Keccak256(node[:], labelHash[:])
	}
	return node
}

// StateID is the on-ledger identifier of a lifecycle state
func StateID(name string) tftypes.Bytes32 {
	return tftypes.Keccak256([]byte(strings.ToLower(name)))
}
