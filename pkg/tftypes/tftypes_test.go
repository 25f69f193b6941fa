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

package tftypes

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEthAddressJSONAndDB(t *testing.T) {
	addr := MustEthAddress("0x4e5a0e8b8ea7f46bd1a9b1b4091a787dd6c0a0f1")
	b, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"0x4e5a0e8b8ea7f46bd1a9b1b4091a787dd6c0a0f1"`, string(b))

	var addr2 EthAddress
	require.NoError(t, json.Unmarshal(b, &addr2))
	assert.True(t, addr.Equals(&addr2))

	v, err := addr.Value()
	require.NoError(t, err)
	assert.Equal(t, "4e5a0e8b8ea7f46bd1a9b1b4091a787dd6c0a0f1", v)

	var addr3 EthAddress
	require.NoError(t, addr3.Scan(v))
	assert.Equal(t, *addr, addr3)
	require.NoError(t, addr3.Scan(addr[:]))
	assert.Regexp(t, "TF010125", addr3.Scan(12345))
	assert.Regexp(t, "TF010119", addr3.Scan("not an address"))

	assert.True(t, (*EthAddress)(nil).IsZero())
	assert.False(t, RandAddress().IsZero())
	assert.False(t, addr.Equals(nil))
}

func TestHexBytes(t *testing.T) {
	hb := MustParseHexBytes("0xfeedbeef")
	assert.Equal(t, "0xfeedbeef", hb.String())
	assert.Equal(t, "feedbeef", hb.HexString())
	assert.Equal(t, "", HexBytes(nil).String())

	var hb2 HexBytes
	require.NoError(t, json.Unmarshal([]byte(`"0xFEEDBEEF"`), &hb2))
	assert.True(t, hb.Equals(hb2))

	_, err := ParseHexBytes(context.Background(), "0xzz")
	assert.Regexp(t, "TF010118", err)

	var hb3 HexBytes
	require.NoError(t, hb3.Scan("feedbeef"))
	assert.Equal(t, hb, hb3)
	require.NoError(t, hb3.Scan(nil))
	assert.Nil(t, hb3)
}

func TestBytes32(t *testing.T) {
	k := Keccak256([]byte("hello"))
	assert.Equal(t, "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8", k.String())
	parsed, err := ParseBytes32(context.Background(), k.String())
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	_, err = ParseBytes32(context.Background(), "0x1234")
	assert.Regexp(t, "TF010120", err)

	var b Bytes32
	require.NoError(t, b.Scan(k.HexString()))
	assert.Equal(t, k, b)
	assert.False(t, b.IsZero())
	assert.True(t, Bytes32{}.IsZero())
}

func TestTimestamp(t *testing.T) {
	ts, err := ParseTimeString("2024-01-02T03:04:05Z")
	require.NoError(t, err)
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02T03:04:05Z"`, string(b))

	var ts2 Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1704164645`), &ts2))
	assert.Equal(t, ts, ts2)

	_, err = ParseTimeString("yesterday")
	assert.Regexp(t, "TF010126", err)
}

func TestRawJSON(t *testing.T) {
	type wrapper struct {
		Terms RawJSON `json:"terms"`
	}
	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"terms":{"a":1}}`), &w))
	assert.JSONEq(t, `{"a":1}`, w.Terms.String())
	b, err := json.Marshal(&wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"terms":null}`, string(b))
}
