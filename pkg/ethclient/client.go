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
	"context"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tfresty"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/rpcbackend"
)

// EthClient is the ledger transport: read-only calls, raw submission, and
// the log/receipt queries the event listener polls
type EthClient interface {
	CallContract(ctx context.Context, to *tftypes.EthAddress, data tftypes.HexBytes) (tftypes.HexBytes, error)
	GetTransactionCount(ctx context.Context, addr tftypes.EthAddress) (uint64, error)
	SendRawTransaction(ctx context.Context, rawTX tftypes.HexBytes) (*tftypes.Bytes32, error)
	BlockNumber(ctx context.Context) (uint64, error)
	GetLogs(ctx context.Context, filter *LogFilter) ([]*LogJSONRPC, error)
	GetTransactionReceipt(ctx context.Context, txHash tftypes.Bytes32) (*TXReceiptJSONRPC, error)
}

type ethClient struct {
	rpc rpcbackend.RPC
}

func NewEthClient(ctx context.Context, conf *tfconf.EthClientConfig) (EthClient, error) {
	restyClient, err := tfresty.New(ctx, &conf.HTTP)
	if err != nil {
		return nil, err
	}
	return WrapRPCClient(rpcbackend.NewRPCClient(restyClient)), nil
}

func WrapRPCClient(rpc rpcbackend.RPC) EthClient {
	return &ethClient{rpc: rpc}
}

func (ec *ethClient) CallContract(ctx context.Context, to *tftypes.EthAddress, data tftypes.HexBytes) (tftypes.HexBytes, error) {
	tx := &ethsigner.Transaction{
		To:   to.Address0xHex(),
		Data: ethtypes.HexBytes0xPrefix(data),
	}
	var res ethtypes.HexBytes0xPrefix
	if rpcErr := ec.rpc.CallRPC(ctx, &res, "eth_call", tx, "latest"); rpcErr != nil {
		log.L(ctx).Errorf("eth_call to %s failed: %+v", to, rpcErr)
		return nil, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_call")
	}
	return tftypes.HexBytes(res), nil
}

func (ec *ethClient) GetTransactionCount(ctx context.Context, addr tftypes.EthAddress) (uint64, error) {
	var count ethtypes.HexUint64
	if rpcErr := ec.rpc.CallRPC(ctx, &count, "eth_getTransactionCount", addr.Address0xHex(), "latest"); rpcErr != nil {
		log.L(ctx).Errorf("eth_getTransactionCount(%s) failed: %+v", addr, rpcErr)
		return 0, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_getTransactionCount")
	}
	return count.Uint64(), nil
}

func (ec *ethClient) SendRawTransaction(ctx context.Context, rawTX tftypes.HexBytes) (*tftypes.Bytes32, error) {
	var txHash ethtypes.HexBytes0xPrefix
	if rpcErr := ec.rpc.CallRPC(ctx, &txHash, "eth_sendRawTransaction", ethtypes.HexBytes0xPrefix(rawTX)); rpcErr != nil {
		log.L(ctx).Errorf("eth_sendRawTransaction failed: %+v", rpcErr)
		return nil, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_sendRawTransaction")
	}
	hash := tftypes.NewBytes32FromSlice(txHash)
	return &hash, nil
}

func (ec *ethClient) BlockNumber(ctx context.Context) (uint64, error) {
	var blockNumber ethtypes.HexUint64
	if rpcErr := ec.rpc.CallRPC(ctx, &blockNumber, "eth_blockNumber"); rpcErr != nil {
		log.L(ctx).Errorf("eth_blockNumber failed: %+v", rpcErr)
		return 0, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_blockNumber")
	}
	return blockNumber.Uint64(), nil
}

func (ec *ethClient) GetLogs(ctx context.Context, filter *LogFilter) ([]*LogJSONRPC, error) {
	var logs []*LogJSONRPC
	if rpcErr := ec.rpc.CallRPC(ctx, &logs, "eth_getLogs", filter); rpcErr != nil {
		log.L(ctx).Errorf("eth_getLogs(%d-%d) failed: %+v", filter.FromBlock, filter.ToBlock, rpcErr)
		return nil, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_getLogs")
	}
	return logs, nil
}

func (ec *ethClient) GetTransactionReceipt(ctx context.Context, txHash tftypes.Bytes32) (*TXReceiptJSONRPC, error) {
	var receipt *TXReceiptJSONRPC
	if rpcErr := ec.rpc.CallRPC(ctx, &receipt, "eth_getTransactionReceipt", txHash); rpcErr != nil {
		log.L(ctx).Errorf("eth_getTransactionReceipt(%s) failed: %+v", txHash, rpcErr)
		return nil, i18n.WrapError(ctx, rpcErr.Error(), msgs.MsgLedgerRPCFailed, "eth_getTransactionReceipt")
	}
	if receipt == nil {
		return nil, i18n.NewError(ctx, msgs.MsgLedgerTxNotFound, txHash)
	}
	return receipt, nil
}
