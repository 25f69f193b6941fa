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
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/crypto/sha3"
)

// Bytes32 holds hashes, domain hashes and on-ledger state ids
type Bytes32 [32]byte

func ParseBytes32(ctx context.Context, s string) (Bytes32, error) {
	b, err := ParseHexBytes(ctx, s)
	if err != nil {
		return Bytes32{}, err
	}
	if len(b) != 32 {
		return Bytes32{}, i18n.NewError(ctx, msgs.MsgInvalidBytes32, len(b))
	}
	return Bytes32(b), nil
}

func MustParseBytes32(s string) Bytes32 {
	b, err := ParseBytes32(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return b
}

func NewBytes32FromSlice(b []byte) Bytes32 {
	var b32 Bytes32
	copy(b32[:], b)
	return b32
}

// Keccak256 is the ledger content hash
func Keccak256(data ...[]byte) Bytes32 {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return NewBytes32FromSlice(h.Sum(nil))
}

func RandBytes32() Bytes32 {
	return NewBytes32FromSlice(RandBytes(32))
}

func (b Bytes32) Bytes() []byte {
	return b[:]
}

func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

func (b Bytes32) HexString() string {
	return hex.EncodeToString(b[:])
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBytes32(context.Background(), s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b *Bytes32) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = Bytes32{}
		return nil
	case string:
		parsed, err := ParseBytes32(context.Background(), v)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	case []byte:
		if len(v) == 32 {
			*b = NewBytes32FromSlice(v)
			return nil
		}
		parsed, err := ParseBytes32(context.Background(), string(v))
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	default:
		return i18n.NewError(context.Background(), msgs.MsgTypesScanFail, src, b)
	}
}

func (b Bytes32) Value() (driver.Value, error) {
	return b.HexString(), nil
}
