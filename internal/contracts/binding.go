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
	"strconv"

	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
)

// Enum is the constraint for action and state names. Action values are the
// ABI function names, and state values hash to the on-ledger state id.
type Enum interface {
	~string
}

type Definition[A Enum, S Enum] struct {
	Name         string
	ABI          []byte
	Actions      []A
	States       []S
	CreatedEvent string
}

// Signature is a compact recoverable signature split into contract call parameters
type Signature struct {
	V uint8
	R tftypes.Bytes32
	S tftypes.Bytes32
}

type TransitionLog struct {
	StateID tftypes.Bytes32
	Nonce   uint64
}

// Binding maps a typed action enum onto the ABI of one contract type.
// A Binding is immutable, BindAddress returns a copy scoped to one deployed instance.
type Binding[A Enum, S Enum] struct {
	name        string
	abi         abi.ABI
	functions   map[A]*abi.Entry
	states      map[tftypes.Bytes32]S
	constructor *abi.Entry
	created     *abi.Entry
	transition  *abi.Entry
	stateFn     *abi.Entry
	nonceFn     *abi.Entry
	bytecode    tftypes.HexBytes
	ledger      ethclient.EthClient
	address     *tftypes.EthAddress
}

func NewBinding[A Enum, S Enum](ctx context.Context, def *Definition[A, S], bytecode tftypes.HexBytes, ledger ethclient.EthClient) (*Binding[A, S], error) {
	var a abi.ABI
	if err := json.Unmarshal(def.ABI, &a); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgContractArtifactLoad, "abi", def.Name)
	}
	b := &Binding[A, S]{
		name:        def.Name,
		abi:         a,
		functions:   make(map[A]*abi.Entry, len(def.Actions)),
		states:      make(map[tftypes.Bytes32]S, len(def.States)),
		constructor: a.Constructor(),
		bytecode:    bytecode,
		ledger:      ledger,
	}
	functions := a.Functions()
	events := a.Events()
	for _, action := range def.Actions {
		fn := functions[string(action)]
		if fn == nil {
			return nil, i18n.NewError(ctx, msgs.MsgBindingUnknownAction, action, def.Name)
		}
		b.functions[action] = fn
	}
	for _, s := range def.States {
		b.states[hashcodec.StateID(string(s))] = s
	}
	b.stateFn = functions["getCurrentStateId"]
	b.nonceFn = functions["nonce"]
	b.created = events[def.CreatedEvent]
	b.transition = events["Transition"]
	if b.stateFn == nil || b.nonceFn == nil || b.created == nil || b.transition == nil || b.constructor == nil {
		return nil, i18n.NewError(ctx, msgs.MsgContractArtifactLoad, "abi", def.Name)
	}
	return b, nil
}

func (b *Binding[A, S]) Name() string {
	return b.name
}

func (b *Binding[A, S]) ABI() abi.ABI {
	return b.abi
}

func (b *Binding[A, S]) BindAddress(address *tftypes.EthAddress) *Binding[A, S] {
	bound := *b
	bound.address = address
	return &bound
}

func (b *Binding[A, S]) Address() *tftypes.EthAddress {
	return b.address
}

// State maps an on-ledger state id to the local enum
func (b *Binding[A, S]) State(ctx context.Context, stateID tftypes.Bytes32) (S, error) {
	s, ok := b.states[stateID]
	if !ok {
		return s, i18n.NewError(ctx, msgs.MsgUnknownLedgerState, stateID, b.name)
	}
	return s, nil
}

func (b *Binding[A, S]) CurrentState(ctx context.Context) (tftypes.Bytes32, error) {
	var res struct {
		StateID tftypes.Bytes32 `json:"stateId"`
	}
	if err := b.call(ctx, b.stateFn, &res); err != nil {
		return tftypes.Bytes32{}, err
	}
	return res.StateID, nil
}

func (b *Binding[A, S]) Nonce(ctx context.Context) (uint64, error) {
	var res struct {
		Nonce string `json:"nonce"`
	}
	if err := b.call(ctx, b.nonceFn, &res); err != nil {
		return 0, err
	}
	nonce, err := strconv.ParseUint(res.Nonce, 10, 64)
	if err != nil {
		return 0, i18n.WrapError(ctx, err, msgs.MsgBindingDecodeFailed, b.nonceFn.Name, b.address)
	}
	return nonce, nil
}

func (b *Binding[A, S]) call(ctx context.Context, fn *abi.Entry, result interface{}) error {
	if b.address == nil {
		return i18n.NewError(ctx, msgs.MsgBindingNotBound, b.name)
	}
	callData, err := fn.EncodeCallDataJSONCtx(ctx, []byte(`{}`))
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgBindingEncodeFailed, fn.Name)
	}
	data, err := b.ledger.CallContract(ctx, b.address, callData)
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgLedgerCallFailed, fn.Name, b.address)
	}
	cv, err := fn.Outputs.DecodeABIDataCtx(ctx, data, 0)
	if err == nil {
		var jsonData []byte
		jsonData, err = tftypes.StandardABISerializer().SerializeJSONCtx(ctx, cv)
		if err == nil {
			err = json.Unmarshal(jsonData, result)
		}
	}
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgBindingDecodeFailed, fn.Name, b.address)
	}
	return nil
}

// HashedCallFor is the payload the signer must sign to authorize the action.
// The call is encoded with zeroed signature parameters, which the hash excludes.
func (b *Binding[A, S]) HashedCallFor(ctx context.Context, action A, nonce *uint64, args map[string]interface{}) (tftypes.Bytes32, error) {
	if b.address == nil {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgBindingNotBound, b.name)
	}
	callData, err := b.encodeCall(ctx, action, &Signature{}, args)
	if err != nil {
		return tftypes.Bytes32{}, err
	}
	if nonce == nil {
		ledgerNonce, err := b.Nonce(ctx)
		if err != nil {
			return tftypes.Bytes32{}, err
		}
		nonce = &ledgerNonce
	}
	log.L(ctx).Debugf("Hashing %s.%s for %s with nonce %d", b.name, action, b.address, *nonce)
	return hashcodec.HashWithCallData(ctx, b.address[:], *nonce, callData)
}

func (b *Binding[A, S]) EncodedCallFromSignature(ctx context.Context, action A, signature []byte, args map[string]interface{}) (tftypes.HexBytes, error) {
	sig, err := b.ParseSignature(ctx, signature)
	if err != nil {
		return nil, err
	}
	return b.encodeCall(ctx, action, sig, args)
}

func (b *Binding[A, S]) encodeCall(ctx context.Context, action A, sig *Signature, args map[string]interface{}) (tftypes.HexBytes, error) {
	fn := b.functions[action]
	if fn == nil {
		return nil, i18n.NewError(ctx, msgs.MsgBindingUnknownAction, action, b.name)
	}
	jsonArgs, err := json.Marshal(withSignature(sig, args))
	if err == nil {
		var callData []byte
		callData, err = fn.EncodeCallDataJSONCtx(ctx, jsonArgs)
		if err == nil {
			return callData, nil
		}
	}
	return nil, i18n.WrapError(ctx, err, msgs.MsgBindingEncodeFailed, action)
}

// EncodeDeploy is the bytecode followed by the ABI encoded constructor arguments
func (b *Binding[A, S]) EncodeDeploy(ctx context.Context, signature []byte, args map[string]interface{}) (tftypes.HexBytes, error) {
	if len(b.bytecode) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgContractArtifactNoBytecode, b.name)
	}
	sig, err := b.ParseSignature(ctx, signature)
	if err != nil {
		return nil, err
	}
	jsonArgs, err := json.Marshal(withSignature(sig, args))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgBindingEncodeFailed, "constructor")
	}
	ctorData, err := b.constructor.Inputs.EncodeABIDataJSONCtx(ctx, jsonArgs)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgBindingEncodeFailed, "constructor")
	}
	data := make(tftypes.HexBytes, 0, len(b.bytecode)+len(ctorData))
	data = append(data, b.bytecode...)
	return append(data, ctorData...), nil
}

func withSignature(sig *Signature, args map[string]interface{}) map[string]interface{} {
	withSig := make(map[string]interface{}, len(args)+3)
	for k, v := range args {
		withSig[k] = v
	}
	withSig["v"] = sig.V
	withSig["r"] = sig.R.String()
	withSig["s"] = sig.S.String()
	return withSig
}

// ParseSignature splits a 65 byte R,S,V signature, moving recovery ids 0/1 to 27/28
func (b *Binding[A, S]) ParseSignature(ctx context.Context, signature []byte) (*Signature, error) {
	return ParseSignature(ctx, signature)
}

func ParseSignature(ctx context.Context, signature []byte) (*Signature, error) {
	if len(signature) != 65 {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidSignatureLength, len(signature))
	}
	sig, err := secp256k1.DecodeCompactRSV(ctx, signature)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgInvalidSignature)
	}
	v := sig.V.Uint64()
	if v < 27 {
		v += 27
	}
	if v != 27 && v != 28 {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidSignature)
	}
	parsed := &Signature{V: uint8(v)}
	sig.R.FillBytes(parsed.R[:])
	sig.S.FillBytes(parsed.S[:])
	return parsed, nil
}

func (b *Binding[A, S]) CreatedTopic() ethtypes.HexBytes0xPrefix {
	return b.created.SignatureHashBytes()
}

func (b *Binding[A, S]) TransitionTopic() ethtypes.HexBytes0xPrefix {
	return b.transition.SignatureHashBytes()
}

// DecodeCreated returns the application data embedded in the creation event
func (b *Binding[A, S]) DecodeCreated(ctx context.Context, l *ethclient.LogJSONRPC) ([]byte, error) {
	var res struct {
		Data tftypes.HexBytes `json:"data"`
	}
	if err := b.decodeEvent(ctx, b.created, l, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (b *Binding[A, S]) DecodeTransition(ctx context.Context, l *ethclient.LogJSONRPC) (*TransitionLog, error) {
	var res struct {
		StateID tftypes.Bytes32 `json:"stateId"`
		Nonce   string          `json:"nonce"`
	}
	if err := b.decodeEvent(ctx, b.transition, l, &res); err != nil {
		return nil, err
	}
	nonce, err := strconv.ParseUint(res.Nonce, 10, 64)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgInvalidEventData, b.transition.Name)
	}
	return &TransitionLog{StateID: res.StateID, Nonce: nonce}, nil
}

func (b *Binding[A, S]) decodeEvent(ctx context.Context, event *abi.Entry, l *ethclient.LogJSONRPC, result interface{}) error {
	cv, err := event.DecodeEventDataCtx(ctx, l.Topics, l.Data)
	if err == nil {
		var jsonData []byte
		jsonData, err = tftypes.StandardABISerializer().SerializeJSONCtx(ctx, cv)
		if err == nil {
			err = json.Unmarshal(jsonData, result)
		}
	}
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgInvalidEventData, event.Name)
	}
	return nil
}

// KnownStates is a copy of the state id to state enum mapping
func (b *Binding[A, S]) KnownStates() map[tftypes.Bytes32]S {
	known := make(map[tftypes.Bytes32]S, len(b.states))
	for id, s := range b.states {
		known[id] = s
	}
	return known
}
