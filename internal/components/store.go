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

	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
)

// InstrumentSelector looks an instrument up by exactly one of its keys
type InstrumentSelector struct {
	ID              *uuid.UUID
	ContractAddress *tftypes.EthAddress
	Reference       string
	// Type narrows a reference lookup, as references are unique per type
	Type tfapi.InstrumentType
}

type InstrumentField string

const (
	FieldTransactionHash InstrumentField = "transaction_hash"
	FieldContractAddress InstrumentField = "contract_address"
	FieldNonce           InstrumentField = "nonce"
	FieldIssueDueTimerID InstrumentField = "issue_due_timer_id"
)

// Store is the party-local cache of instruments and amendments.
// Getters return nil, nil when no record matches.
type Store interface {
	GetInstrument(ctx context.Context, sel *InstrumentSelector) (*tfapi.Instrument, error)
	InsertInstrument(ctx context.Context, inst *tfapi.Instrument) error
	// UpsertInstrumentByReference inserts the instrument, or merges the ledger
	// derived fields into the existing record with the same type and reference.
	// A record already bound to another contract is returned unchanged.
	UpsertInstrumentByReference(ctx context.Context, inst *tfapi.Instrument) (*tfapi.Instrument, error)
	UpdateInstrumentField(ctx context.Context, id uuid.UUID, field InstrumentField, value interface{}) error
	// ClaimDestinationState atomically marks a transition to dest in flight.
	// It returns false while any other transition is marked.
	ClaimDestinationState(ctx context.Context, id uuid.UUID, dest tfapi.InstrumentState) (bool, error)
	ReleaseDestinationState(ctx context.Context, id uuid.UUID, dest tfapi.InstrumentState) error
	AppendHistoryAndSetStatus(ctx context.Context, id uuid.UUID, status tfapi.InstrumentState, performer string, nonce *uint64) error
	GetNonce(ctx context.Context, address tftypes.EthAddress) (uint64, error)

	GetAmendment(ctx context.Context, staticID uuid.UUID) (*tfapi.Amendment, error)
	GetAmendmentByAddress(ctx context.Context, address tftypes.EthAddress) (*tfapi.Amendment, error)
	ListAmendments(ctx context.Context, lcStaticID uuid.UUID) ([]*tfapi.Amendment, error)
	InsertAmendment(ctx context.Context, a *tfapi.Amendment) error
	UpdateAmendment(ctx context.Context, staticID uuid.UUID, update *AmendmentUpdate) error
	ClaimAmendmentDestination(ctx context.Context, staticID uuid.UUID, dest tfapi.AmendmentStatus) (bool, error)
	ReleaseAmendmentDestination(ctx context.Context, staticID uuid.UUID, dest tfapi.AmendmentStatus) error
	AppendAmendmentHistoryAndSetStatus(ctx context.Context, staticID uuid.UUID, status tfapi.AmendmentStatus, performer string) error

	GetCheckpoint(ctx context.Context, listener string) (*uint64, error)
	SetCheckpoint(ctx context.Context, listener string, blockNumber uint64) error
}

// AmendmentUpdate sets each non-nil field
type AmendmentUpdate struct {
	Status          *tfapi.AmendmentStatus
	ContractAddress *tftypes.EthAddress
	TransactionHash *tftypes.Bytes32
}
