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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcMethod func(params []json.RawMessage) (interface{}, error)

type jsonRPCRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func newTestClientAndServer(t *testing.T, methods map[string]rpcMethod) (context.Context, EthClient, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req jsonRPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		res := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		fn := methods[req.Method]
		if fn == nil {
			res["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
		} else if result, err := fn(req.Params); err != nil {
			res["error"] = map[string]interface{}{"code": -32000, "message": err.Error()}
		} else {
			res["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}))
	ctx := context.Background()
	ec, err := NewEthClient(ctx, &tfconf.EthClientConfig{HTTP: tfconf.HTTPClientConfig{URL: server.URL}})
	require.NoError(t, err)
	return ctx, ec, server.Close
}

func TestCallContract(t *testing.T) {
	to := tftypes.RandAddress()
	ctx, ec, done := newTestClientAndServer(t, map[string]rpcMethod{
		"eth_call": func(params []json.RawMessage) (interface{}, error) {
			var tx map[string]interface{}
			require.NoError(t, json.Unmarshal(params[0], &tx))
			assert.Equal(t, to.String(), tx["to"])
			assert.Equal(t, "0xfeedbeef", tx["data"])
			assert.JSONEq(t, `"latest"`, string(params[1]))
			return "0x0000000000000000000000000000000000000000000000000000000000000001", nil
		},
	})
	defer done()

	res, err := ec.CallContract(ctx, to, tftypes.MustParseHexBytes("0xfeedbeef"))
	require.NoError(t, err)
	assert.Len(t, res, 32)
	assert.Equal(t, byte(1), res[31])
}

func TestCallContractFail(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, map[string]rpcMethod{
		"eth_call": func(params []json.RawMessage) (interface{}, error) {
			return nil, fmt.Errorf("execution reverted")
		},
	})
	defer done()

	_, err := ec.CallContract(ctx, tftypes.RandAddress(), tftypes.HexBytes{0x01})
	assert.Regexp(t, "TF010303.*eth_call.*execution reverted", err)
}

func TestTransactionCountAndSend(t *testing.T) {
	from := tftypes.RandAddress()
	txHash := tftypes.RandBytes32()
	ctx, ec, done := newTestClientAndServer(t, map[string]rpcMethod{
		"eth_getTransactionCount": func(params []json.RawMessage) (interface{}, error) {
			var addr ethtypes.Address0xHex
			require.NoError(t, json.Unmarshal(params[0], &addr))
			assert.Equal(t, from.String(), addr.String())
			return "0x2a", nil
		},
		"eth_sendRawTransaction": func(params []json.RawMessage) (interface{}, error) {
			assert.JSONEq(t, `"0x0102"`, string(params[0]))
			return txHash.String(), nil
		},
		"eth_blockNumber": func(params []json.RawMessage) (interface{}, error) {
			return "0x10", nil
		},
	})
	defer done()

	count, err := ec.GetTransactionCount(ctx, *from)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), count)

	sent, err := ec.SendRawTransaction(ctx, tftypes.HexBytes{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, txHash, *sent)

	bn, err := ec.BlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), bn)
}

func TestGetLogsAndReceipt(t *testing.T) {
	addr := tftypes.RandAddress()
	topic := tftypes.RandBytes32()
	ctx, ec, done := newTestClientAndServer(t, map[string]rpcMethod{
		"eth_getLogs": func(params []json.RawMessage) (interface{}, error) {
			var filter map[string]interface{}
			require.NoError(t, json.Unmarshal(params[0], &filter))
			assert.Equal(t, "0x1", filter["fromBlock"])
			assert.Equal(t, "0x5", filter["toBlock"])
			return []map[string]interface{}{{
				"blockNumber":     "0x3",
				"logIndex":        "0x0",
				"address":         addr.String(),
				"transactionHash": topic.String(),
				"topics":          []string{topic.String()},
				"data":            "0x",
			}}, nil
		},
		"eth_getTransactionReceipt": func(params []json.RawMessage) (interface{}, error) {
			if string(params[0]) == fmt.Sprintf(`"%s"`, topic) {
				return map[string]interface{}{"contractAddress": addr.String(), "blockNumber": "0x3", "status": "0x1"}, nil
			}
			return nil, nil
		},
	})
	defer done()

	logs, err := ec.GetLogs(ctx, &LogFilter{
		FromBlock: 1,
		ToBlock:   5,
		Topics:    [][]ethtypes.HexBytes0xPrefix{{topic[:]}},
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, uint64(3), logs[0].BlockNumber.Uint64())
	assert.Equal(t, addr.String(), logs[0].Address.String())

	receipt, err := ec.GetTransactionReceipt(ctx, topic)
	require.NoError(t, err)
	assert.Equal(t, addr.String(), receipt.ContractAddress.String())

	_, err = ec.GetTransactionReceipt(ctx, tftypes.RandBytes32())
	assert.Regexp(t, "TF010306", err)
}

func TestMethodNotFound(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, map[string]rpcMethod{})
	defer done()
	_, err := ec.BlockNumber(ctx)
	assert.Regexp(t, "TF010303.*method not found", err)
	_, err = ec.GetTransactionCount(ctx, *tftypes.RandAddress())
	assert.Regexp(t, "TF010303", err)
	_, err = ec.SendRawTransaction(ctx, tftypes.HexBytes{0x00})
	assert.Regexp(t, "TF010303", err)
	_, err = ec.GetLogs(ctx, &LogFilter{})
	assert.Regexp(t, "TF010303", err)
	_, err = ec.GetTransactionReceipt(ctx, tftypes.RandBytes32())
	assert.Regexp(t, "TF010303", err)
}
