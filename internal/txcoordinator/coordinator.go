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

package txcoordinator

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/rlp"
)

// deployVerifierNonce is the nonce the constructor of every instrument
// contract verifies the embedded data signature against
const deployVerifierNonce = 1

// NonceSource returns the nonce an invocation of the contract must be signed
// with, or nil if it must be read from the ledger
type NonceSource func(ctx context.Context, contract tftypes.EthAddress) (*uint64, error)

// LedgerNonce always defers to the ledger
func LedgerNonce(ctx context.Context, contract tftypes.EthAddress) (*uint64, error) {
	return nil, nil
}

// StoreNonce uses the nonce cached from the last transition the store observed,
// falling back to the ledger for contracts that have not transitioned yet
func StoreNonce(store components.Store) NonceSource {
	return func(ctx context.Context, contract tftypes.EthAddress) (*uint64, error) {
		nonce, err := store.GetNonce(ctx, contract)
		if err != nil || nonce == 0 {
			return nil, err
		}
		return &nonce, nil
	}
}

type Dependencies struct {
	SigningGateway components.SigningGateway
	Identity       components.IdentityResolver
	EthClient      ethclient.EthClient
	Compressor     hashcodec.Compressor
	Metrics        metrics.Metrics
	SelfPartyID    string
	Namespace      string
}

func DependenciesOf(c components.PreInitComponents) *Dependencies {
	return &Dependencies{
		SigningGateway: c.SigningGateway(),
		Identity:       c.IdentityResolver(),
		EthClient:      c.EthClient(),
		Compressor:     c.Compressor(),
		Metrics:        c.Metrics(),
		SelfPartyID:    c.SelfPartyID(),
		Namespace:      c.Namespace(),
	}
}

// Result describes a broadcast transaction. For a deploy the contract address
// is the predicted address of the new contract.
type Result struct {
	TransactionHash tftypes.Bytes32
	From            tftypes.EthAddress
	ContractAddress tftypes.EthAddress
	Nonce           uint64
}

// Coordinator signs and broadcasts the transactions of one contract type
type Coordinator[A contracts.Enum, S contracts.Enum] struct {
	binding     *contracts.Binding[A, S]
	deps        *Dependencies
	selfHash    tftypes.Bytes32
	nonceSource NonceSource
}

func NewCoordinator[A contracts.Enum, S contracts.Enum](binding *contracts.Binding[A, S], deps *Dependencies, nonceSource NonceSource) *Coordinator[A, S] {
	if nonceSource == nil {
		nonceSource = LedgerNonce
	}
	return &Coordinator[A, S]{
		binding:     binding,
		deps:        deps,
		selfHash:    hashcodec.DomainHash(deps.SelfPartyID, deps.Namespace),
		nonceSource: nonceSource,
	}
}

func (c *Coordinator[A, S]) Binding() *contracts.Binding[A, S] {
	return c.binding
}

// DomainHashes maps party ids to their on-ledger handles
func (c *Coordinator[A, S]) DomainHashes(partyIDs []string) []tftypes.Bytes32 {
	hashes := make([]tftypes.Bytes32, len(partyIDs))
	for i, id := range partyIDs {
		hashes[i] = hashcodec.DomainHash(id, c.deps.Namespace)
	}
	return hashes
}

// RemoveSelfFromParties filters every occurrence of the local party out of the list, keeping the order
func (c *Coordinator[A, S]) RemoveSelfFromParties(partyHashes []tftypes.Bytes32) []tftypes.Bytes32 {
	others := make([]tftypes.Bytes32, 0, len(partyHashes))
	for _, h := range partyHashes {
		if h != c.selfHash {
			others = append(others, h)
		}
	}
	return others
}

// PredictContractAddress is the address a contract deployed by the sender at the given transaction count will have
func PredictContractAddress(sender tftypes.EthAddress, txCount uint64) tftypes.EthAddress {
	encoded := rlp.List{
		rlp.WrapAddress(sender.Address0xHex()),
		rlp.WrapInt(new(big.Int).SetUint64(txCount)),
	}.Encode()
	hash := tftypes.Keccak256(encoded)
	return *tftypes.EthAddressBytes(hash[12:])
}

// Deploy creates a new instance of the contract, embedding the compressed JSON
// of the application data with a signature bound to the predicted contract address.
// The prediction assumes no other transaction from the signing key is submitted
// between reading the transaction count and the deploy being mined.
func (c *Coordinator[A, S]) Deploy(ctx context.Context, appData interface{}, counterpartyIDs []string) (res *Result, err error) {
	ctx = log.WithLogField(ctx, "contract", c.binding.Name())
	log.L(ctx).Debugf("Deploying %s with %d parties", c.binding.Name(), len(counterpartyIDs))
	defer func() {
		c.deps.Metrics.LedgerTransaction(c.binding.Name(), "deploy", err)
		if err != nil {
			log.L(ctx).Errorf("Deploy of %s failed: %s", c.binding.Name(), err)
		}
	}()

	key, err := c.deps.SigningGateway.ObtainKey(ctx)
	if err != nil {
		return nil, err
	}
	parties := c.RemoveSelfFromParties(c.DomainHashes(counterpartyIDs))

	txCount, err := c.deps.EthClient.GetTransactionCount(ctx, key)
	if err != nil {
		return nil, err
	}
	predicted := PredictContractAddress(key, txCount)

	jsonData, err := json.Marshal(appData)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgBindingEncodeFailed, "constructor")
	}
	payload, err := c.deps.Compressor.Compress(ctx, jsonData)
	if err != nil {
		return nil, err
	}
	hash, err := hashcodec.HashWithNonce(ctx, predicted[:], deployVerifierNonce, payload)
	if err != nil {
		return nil, err
	}
	signature, err := c.deps.SigningGateway.Sign(ctx, hash[:])
	if err != nil {
		return nil, err
	}

	partyArgs := make([]string, len(parties))
	for i, p := range parties {
		partyArgs[i] = p.String()
	}
	deployData, err := c.binding.EncodeDeploy(ctx, signature, map[string]interface{}{
		"parties": partyArgs,
		"data":    tftypes.HexBytes(payload).HexString0xPrefix(),
	})
	if err != nil {
		return nil, err
	}

	txHash, err := c.broadcast(ctx, key, nil, deployData, parties)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Deploy of %s submitted tx=%s predictedAddress=%s", c.binding.Name(), txHash, predicted)
	return &Result{
		TransactionHash: txHash,
		From:            key,
		ContractAddress: predicted,
		Nonce:           deployVerifierNonce,
	}, nil
}

// Invoke signs the intent of the action against the current contract nonce, and broadcasts the signed call
func (c *Coordinator[A, S]) Invoke(ctx context.Context, contract tftypes.EthAddress, action A, args map[string]interface{}, counterpartyIDs []string) (res *Result, err error) {
	ctx = log.WithLogField(ctx, "contract", contract.String())
	log.L(ctx).Debugf("Invoking %s.%s", c.binding.Name(), action)
	defer func() {
		c.deps.Metrics.LedgerTransaction(c.binding.Name(), string(action), err)
		if err != nil {
			log.L(ctx).Errorf("Invoke of %s.%s failed: %s", c.binding.Name(), action, err)
		}
	}()

	bound := c.binding.BindAddress(&contract)
	nonce, err := c.nonceSource(ctx, contract)
	if err != nil {
		return nil, err
	}
	if nonce == nil {
		ledgerNonce, err := bound.Nonce(ctx)
		if err != nil {
			return nil, err
		}
		nonce = &ledgerNonce
	}

	key, err := c.deps.SigningGateway.ObtainKey(ctx)
	if err != nil {
		return nil, err
	}
	hash, err := bound.HashedCallFor(ctx, action, nonce, args)
	if err != nil {
		return nil, err
	}
	signature, err := c.deps.SigningGateway.Sign(ctx, hash[:])
	if err != nil {
		return nil, err
	}
	callData, err := bound.EncodedCallFromSignature(ctx, action, signature, args)
	if err != nil {
		return nil, err
	}

	txHash, err := c.broadcast(ctx, key, &contract, callData, c.RemoveSelfFromParties(c.DomainHashes(counterpartyIDs)))
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Invoke of %s.%s submitted tx=%s nonce=%d", c.binding.Name(), action, txHash, *nonce)
	return &Result{
		TransactionHash: txHash,
		From:            key,
		ContractAddress: contract,
		Nonce:           *nonce,
	}, nil
}

func (c *Coordinator[A, S]) broadcast(ctx context.Context, from tftypes.EthAddress, to *tftypes.EthAddress, data tftypes.HexBytes, parties []tftypes.Bytes32) (tftypes.Bytes32, error) {
	privateFor, err := c.deps.Identity.ResolveTransportKeys(ctx, parties)
	if err != nil {
		return tftypes.Bytes32{}, err
	}
	return c.deps.SigningGateway.Broadcast(ctx, &components.BroadcastRequest{
		From:       from,
		To:         to,
		Value:      "0",
		Data:       data,
		PrivateFor: privateFor,
	})
}
