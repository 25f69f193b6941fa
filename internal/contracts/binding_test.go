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

package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/mocks/ethclientmocks"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLCBinding(t *testing.T) (context.Context, *LCBinding, *ethclientmocks.EthClient) {
	ctx := context.Background()
	ledger := ethclientmocks.NewEthClient(t)
	b, err := NewBinding(ctx, LetterOfCredit, tftypes.MustParseHexBytes("0x60806040"), ledger)
	require.NoError(t, err)
	return ctx, b, ledger
}

func uint256Word(v uint64) tftypes.HexBytes {
	word := make([]byte, 32)
	new(big.Int).SetUint64(v).FillBytes(word)
	return word
}

func TestNewBindingsAllDefinitions(t *testing.T) {
	ctx := context.Background()
	ledger := ethclientmocks.NewEthClient(t)
	b, err := NewBindings(ctx, &tfconf.ContractsConfig{
		LetterOfCredit: tfconf.ContractArtifactConfig{Bytecode: "0x6080"},
	}, ledger)
	require.NoError(t, err)
	assert.Equal(t, "LetterOfCredit", b.LetterOfCredit.Name())
	assert.Equal(t, "StandbyLetterOfCredit", b.StandbyLetterOfCredit.Name())
	assert.Equal(t, "Amendment", b.Amendment.Name())
}

func TestNewBindingBadABI(t *testing.T) {
	_, err := NewBinding(context.Background(), &Definition[LCAction, tfapi.InstrumentState]{
		Name: "broken",
		ABI:  []byte(`{!`),
	}, nil, nil)
	assert.Regexp(t, "TF010004", err)
}

func TestNewBindingMissingAction(t *testing.T) {
	_, err := NewBinding(context.Background(), &Definition[LCAction, tfapi.InstrumentState]{
		Name:         "LetterOfCredit",
		ABI:          letterOfCreditABI,
		Actions:      []LCAction{"notThere"},
		CreatedEvent: "LetterOfCreditCreated",
	}, nil, nil)
	assert.Regexp(t, "TF010107", err)
}

func TestNewBindingMissingCreatedEvent(t *testing.T) {
	_, err := NewBinding(context.Background(), &Definition[LCAction, tfapi.InstrumentState]{
		Name:         "LetterOfCredit",
		ABI:          letterOfCreditABI,
		CreatedEvent: "Unknown",
	}, nil, nil)
	assert.Regexp(t, "TF010004", err)
}

func TestStateMapping(t *testing.T) {
	ctx, b, _ := newTestLCBinding(t)

	s, err := b.State(ctx, hashcodec.StateID("issued"))
	require.NoError(t, err)
	assert.Equal(t, tfapi.StateIssued, s)

	s, err = b.State(ctx, hashcodec.StateID("Acknowledged"))
	require.NoError(t, err)
	assert.Equal(t, tfapi.StateAcknowledged, s)

	_, err = b.State(ctx, tftypes.RandBytes32())
	assert.Regexp(t, "TF010113", err)
}

func TestUnboundBinding(t *testing.T) {
	ctx, b, _ := newTestLCBinding(t)

	_, err := b.CurrentState(ctx)
	assert.Regexp(t, "TF010106", err)

	_, err = b.Nonce(ctx)
	assert.Regexp(t, "TF010106", err)

	_, err = b.HashedCallFor(ctx, LCAdvise, nil, nil)
	assert.Regexp(t, "TF010106", err)
}

func TestBindAddressReturnsCopy(t *testing.T) {
	_, b, _ := newTestLCBinding(t)
	addr := tftypes.RandAddress()
	bound := b.BindAddress(addr)
	assert.Nil(t, b.Address())
	assert.Equal(t, addr, bound.Address())
}

func TestCurrentStateAndNonce(t *testing.T) {
	ctx, b, ledger := newTestLCBinding(t)
	addr := tftypes.RandAddress()
	bound := b.BindAddress(addr)

	stateSelector := tftypes.HexBytes(bound.abi.Functions()["getCurrentStateId"].FunctionSelectorBytes())
	nonceSelector := tftypes.HexBytes(bound.abi.Functions()["nonce"].FunctionSelectorBytes())
	issued := hashcodec.StateID("issued")

	ledger.On("CallContract", mock.Anything, addr, stateSelector).Return(tftypes.HexBytes(issued[:]), nil)
	ledger.On("CallContract", mock.Anything, addr, nonceSelector).Return(uint256Word(12345), nil)

	stateID, err := bound.CurrentState(ctx)
	require.NoError(t, err)
	assert.Equal(t, issued, stateID)

	nonce, err := bound.Nonce(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), nonce)
}

func TestCurrentStateLedgerFailure(t *testing.T) {
	ctx, b, ledger := newTestLCBinding(t)
	bound := b.BindAddress(tftypes.RandAddress())
	ledger.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("pop"))

	_, err := bound.CurrentState(ctx)
	assert.Regexp(t, "TF010302.*getCurrentStateId.*pop", err)
}

func TestNonceBadResult(t *testing.T) {
	ctx, b, ledger := newTestLCBinding(t)
	bound := b.BindAddress(tftypes.RandAddress())
	ledger.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(tftypes.HexBytes{0x01}, nil)

	_, err := bound.Nonce(ctx)
	assert.Regexp(t, "TF010109", err)
}

func TestHashedCallExcludesSignature(t *testing.T) {
	ctx, b, _ := newTestLCBinding(t)
	bound := b.BindAddress(tftypes.RandAddress())
	args := map[string]interface{}{"comments": "wrong beneficiary"}
	nonce := uint64(3)

	hash, err := bound.HashedCallFor(ctx, LCRequestReject, &nonce, args)
	require.NoError(t, err)

	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)
	sig, err := kp.SignDirect(hash[:])
	require.NoError(t, err)

	callData, err := bound.EncodedCallFromSignature(ctx, LCRequestReject, sig.CompactRSV(), args)
	require.NoError(t, err)

	rehash, err := hashcodec.HashWithCallData(ctx, bound.Address()[:], nonce, callData)
	require.NoError(t, err)
	assert.Equal(t, hash, rehash)

	// Different arguments must produce a different payload
	other, err := bound.HashedCallFor(ctx, LCRequestReject, &nonce, map[string]interface{}{"comments": "other"})
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestHashedCallFetchesNonce(t *testing.T) {
	ctx, b, ledger := newTestLCBinding(t)
	addr := tftypes.RandAddress()
	bound := b.BindAddress(addr)
	ledger.On("CallContract", mock.Anything, addr, mock.Anything).Return(uint256Word(7), nil)

	hash, err := bound.HashedCallFor(ctx, LCAdvise, nil, nil)
	require.NoError(t, err)

	nonce := uint64(7)
	expected, err := bound.HashedCallFor(ctx, LCAdvise, &nonce, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, hash)
}

func TestHashedCallErrors(t *testing.T) {
	ctx, b, ledger := newTestLCBinding(t)
	bound := b.BindAddress(tftypes.RandAddress())

	_, err := bound.HashedCallFor(ctx, "unknown", nil, nil)
	assert.Regexp(t, "TF010107", err)

	_, err = bound.HashedCallFor(ctx, LCIssue, nil, map[string]interface{}{"swiftReference": "ref"})
	assert.Regexp(t, "TF010108", err)

	ledger.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("pop"))
	_, err = bound.HashedCallFor(ctx, LCAdvise, nil, nil)
	assert.Regexp(t, "TF010302", err)
}

func TestParseSignature(t *testing.T) {
	ctx := context.Background()

	_, err := ParseSignature(ctx, make([]byte, 64))
	assert.Regexp(t, "TF010105", err)

	raw := make([]byte, 65)
	raw[31] = 0x01
	raw[63] = 0x02
	raw[64] = 1
	sig, err := ParseSignature(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(28), sig.V)
	assert.Equal(t, byte(0x01), sig.R[31])
	assert.Equal(t, byte(0x02), sig.S[31])

	raw[64] = 27
	sig, err = ParseSignature(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(27), sig.V)

	raw[64] = 35
	_, err = ParseSignature(ctx, raw)
	assert.Regexp(t, "TF010104", err)
}

func TestEncodeDeploy(t *testing.T) {
	ctx, b, _ := newTestLCBinding(t)
	parties := []string{tftypes.RandBytes32().String(), tftypes.RandBytes32().String()}
	sig := make([]byte, 65)
	sig[64] = 27

	data, err := b.EncodeDeploy(ctx, sig, map[string]interface{}{
		"parties": parties,
		"data":    "0xfeedbeef",
	})
	require.NoError(t, err)
	assert.Equal(t, "60806040", data[0:4].HexString())
	assert.Greater(t, len(data), 4+5*32)
}

func TestEncodeDeployNoBytecode(t *testing.T) {
	ctx := context.Background()
	b, err := NewBinding(ctx, Amendment, nil, nil)
	require.NoError(t, err)
	_, err = b.EncodeDeploy(ctx, make([]byte, 65), nil)
	assert.Regexp(t, "TF010005", err)
}

func TestDecodeCreatedAndTransition(t *testing.T) {
	ctx, b, _ := newTestLCBinding(t)

	createdData, err := b.created.Inputs.EncodeABIDataJSONCtx(ctx, []byte(`{"data":"0xc0ffee"}`))
	require.NoError(t, err)
	data, err := b.DecodeCreated(ctx, &ethclient.LogJSONRPC{
		Topics: []ethtypes.HexBytes0xPrefix{b.CreatedTopic()},
		Data:   createdData,
	})
	require.NoError(t, err)
	assert.Equal(t, "c0ffee", tftypes.HexBytes(data).HexString())

	advised := hashcodec.StateID("advised")
	transitionJSON, err := json.Marshal(map[string]interface{}{"stateId": advised.String(), "nonce": "4"})
	require.NoError(t, err)
	transitionData, err := b.transition.Inputs.EncodeABIDataJSONCtx(ctx, transitionJSON)
	require.NoError(t, err)
	tl, err := b.DecodeTransition(ctx, &ethclient.LogJSONRPC{
		Topics: []ethtypes.HexBytes0xPrefix{b.TransitionTopic()},
		Data:   transitionData,
	})
	require.NoError(t, err)
	assert.Equal(t, advised, tl.StateID)
	assert.Equal(t, uint64(4), tl.Nonce)

	_, err = b.DecodeTransition(ctx, &ethclient.LogJSONRPC{
		Topics: []ethtypes.HexBytes0xPrefix{b.TransitionTopic()},
		Data:   ethtypes.HexBytes0xPrefix{0x01},
	})
	assert.Regexp(t, "TF010112", err)
}

func TestLoadBytecode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	artifact := filepath.Join(dir, "lc.json")
	require.NoError(t, os.WriteFile(artifact, []byte(`{"abi":[],"bytecode":"0x6080"}`), 0644))
	code, err := LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{ArtifactFile: artifact})
	require.NoError(t, err)
	assert.Equal(t, "0x6080", code.String())

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"abi":[]}`), 0644))
	_, err = LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{ArtifactFile: empty})
	assert.Regexp(t, "TF010005", err)

	_, err = LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{ArtifactFile: filepath.Join(dir, "missing.json")})
	assert.Regexp(t, "TF010004", err)

	code, err = LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{Bytecode: "0x60"})
	require.NoError(t, err)
	assert.Equal(t, "0x60", code.String())

	_, err = LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{Bytecode: "zz"})
	assert.Regexp(t, "TF010004", err)

	code, err = LoadBytecode(ctx, "LetterOfCredit", &tfconf.ContractArtifactConfig{})
	require.NoError(t, err)
	assert.Nil(t, code)
}
