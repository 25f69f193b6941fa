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

package ethclient

import (
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

type TXReceiptJSONRPC struct {
	BlockHash       ethtypes.HexBytes0xPrefix `json:"blockHash"`
	BlockNumber     ethtypes.HexUint64        `json:"blockNumber"`
	ContractAddress *ethtypes.Address0xHex    `json:"contractAddress"`
	From            *ethtypes.Address0xHex    `json:"from"`
	Logs            []*LogJSONRPC             `json:"logs"`
	Status          *ethtypes.HexInteger      `json:"status"`
	To              *ethtypes.Address0xHex    `json:"to"`
	TransactionHash ethtypes.HexBytes0xPrefix `json:"transactionHash"`
}

type LogJSONRPC struct {
	Removed          bool                        `json:"removed"`
	LogIndex         ethtypes.HexUint64          `json:"logIndex"`
	TransactionIndex ethtypes.HexUint64          `json:"transactionIndex"`
	BlockNumber      ethtypes.HexUint64          `json:"blockNumber"`
	TransactionHash  ethtypes.HexBytes0xPrefix   `json:"transactionHash"`
	BlockHash        ethtypes.HexBytes0xPrefix   `json:"blockHash"`
	Address          *ethtypes.Address0xHex      `json:"address"`
	Data             ethtypes.HexBytes0xPrefix   `json:"data"`
	Topics           []ethtypes.HexBytes0xPrefix `json:"topics"`
}

// LogFilter is the eth_getLogs filter object. Topics are OR'd within each position.
type LogFilter struct {
	FromBlock ethtypes.HexUint64            `json:"fromBlock"`
	ToBlock   ethtypes.HexUint64            `json:"toBlock"`
	Address   []*ethtypes.Address0xHex      `json:"address,omitempty"`
	Topics    [][]ethtypes.HexBytes0xPrefix `json:"topics,omitempty"`
}
