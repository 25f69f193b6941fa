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

package store

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/persistence"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type store struct {
	p persistence.Persistence
}

func NewStore(p persistence.Persistence) components.Store {
	return &store{p: p}
}

func orderedHistory(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}

func (s *store) GetInstrument(ctx context.Context, sel *components.InstrumentSelector) (*tfapi.Instrument, error) {
	q := s.p.DB().WithContext(ctx).Preload("History", orderedHistory)
	switch {
	case sel.ID != nil:
		q = q.Where("id = ?", *sel.ID)
	case sel.ContractAddress != nil:
		q = q.Where("contract_address = ?", *sel.ContractAddress)
	case sel.Reference != "":
		q = q.Where("reference = ?", sel.Reference)
		if sel.Type != "" {
			q = q.Where("type = ?", string(sel.Type))
		}
	default:
		return nil, i18n.NewError(ctx, msgs.MsgInvalidInstrument, "empty selector")
	}
	var instruments []*dbInstrument
	if err := q.Limit(1).Find(&instruments).Error; err != nil {
		return nil, err
	}
	if len(instruments) == 0 {
		return nil, nil
	}
	return instruments[0].toAPI(), nil
}

func (s *store) InsertInstrument(ctx context.Context, inst *tfapi.Instrument) error {
	now := tftypes.TimestampNow()
	inst.Created = now
	inst.Updated = now
	return s.p.DB().WithContext(ctx).Omit("History").Create(instrumentToDB(inst)).Error
}

func (s *store) UpsertInstrumentByReference(ctx context.Context, inst *tfapi.Instrument) (result *tfapi.Instrument, err error) {
	err = s.p.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var existing []*dbInstrument
		if err := tx.Where("type = ? AND reference = ?", string(inst.Type), inst.Reference).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		now := tftypes.TimestampNow()
		if len(existing) == 0 {
			log.L(ctx).Infof("Inserting instrument %s (%s) from the ledger", inst.Reference, inst.ID)
			inst.Created = now
			inst.Updated = now
			return tx.Omit("History").Create(instrumentToDB(inst)).Error
		}
		if existing[0].ContractAddress != nil && inst.ContractAddress != nil && *existing[0].ContractAddress != *inst.ContractAddress {
			// The record stays bound to its original contract
			log.L(ctx).Warnf("Ignoring contract %s for %s %s already bound to %s", inst.ContractAddress, inst.Type, inst.Reference, existing[0].ContractAddress)
			inst.ID = existing[0].ID
			return nil
		}
		// Only the ledger derived fields are merged, and the status never moves
		// backwards if later transitions have already been observed
		updates := map[string]interface{}{"updated": now}
		if inst.ContractAddress != nil && existing[0].ContractAddress == nil {
			updates["contract_address"] = inst.ContractAddress
		}
		if inst.TransactionHash != nil && existing[0].TransactionHash == nil {
			updates["transaction_hash"] = inst.TransactionHash
		}
		if existing[0].Status == string(tfapi.StateInitialising) {
			updates["status"] = string(inst.Status)
		}
		inst.ID = existing[0].ID
		return tx.Table("instruments").Where("id = ?", existing[0].ID).Updates(updates).Error
	})
	if err == nil {
		result, err = s.GetInstrument(ctx, &components.InstrumentSelector{ID: &inst.ID})
	}
	return result, err
}

func (s *store) UpdateInstrumentField(ctx context.Context, id uuid.UUID, field components.InstrumentField, value interface{}) error {
	switch field {
	case components.FieldTransactionHash, components.FieldContractAddress, components.FieldNonce, components.FieldIssueDueTimerID:
	default:
		return i18n.NewError(ctx, msgs.MsgInvalidInstrument, field)
	}
	return s.p.DB().WithContext(ctx).
		Table("instruments").
		Where("id = ?", id).
		Updates(map[string]interface{}{
			string(field): value,
			"updated":     tftypes.TimestampNow(),
		}).
		Error
}

func (s *store) ClaimDestinationState(ctx context.Context, id uuid.UUID, dest tfapi.InstrumentState) (bool, error) {
	res := s.p.DB().WithContext(ctx).
		Table("instruments").
		Where("id = ?", id).
		// a marker the instrument has already reached is stale
		Where("destination_state IS NULL OR destination_state = status").
		Updates(map[string]interface{}{
			"destination_state": string(dest),
			"updated":           tftypes.TimestampNow(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *store) ReleaseDestinationState(ctx context.Context, id uuid.UUID, dest tfapi.InstrumentState) error {
	return s.p.DB().WithContext(ctx).
		Table("instruments").
		Where("id = ? AND destination_state = ?", id, string(dest)).
		Update("destination_state", nil).
		Error
}

func (s *store) AppendHistoryAndSetStatus(ctx context.Context, id uuid.UUID, status tfapi.InstrumentState, performer string, nonce *uint64) error {
	return s.p.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var existing []*dbInstrument
		if err := tx.Where("id = ?", id).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) == 0 {
			return i18n.NewError(ctx, msgs.MsgInstrumentNotFound, id)
		}
		current := existing[0]
		now := tftypes.TimestampNow()
		if err := tx.Create(&dbHistory{
			InstrumentID: id,
			FromState:    current.Status,
			ToState:      string(status),
			Performer:    performer,
			Timestamp:    now,
		}).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"status":  string(status),
			"updated": now,
		}
		if current.DestinationState != nil && *current.DestinationState == string(status) {
			updates["destination_state"] = nil
		}
		if nonce != nil && *nonce > current.Nonce {
			updates["nonce"] = *nonce
		}
		return tx.Table("instruments").Where("id = ?", id).Updates(updates).Error
	})
}

// GetNonce returns zero for an address that is not in the cache
func (s *store) GetNonce(ctx context.Context, address tftypes.EthAddress) (uint64, error) {
	var nonces []uint64
	err := s.p.DB().WithContext(ctx).
		Table("instruments").
		Where("contract_address = ?", address).
		Limit(1).
		Pluck("nonce", &nonces).
		Error
	if err != nil || len(nonces) == 0 {
		return 0, err
	}
	return nonces[0], nil
}

func (s *store) GetCheckpoint(ctx context.Context, listener string) (*uint64, error) {
	var checkpoints []*dbCheckpoint
	err := s.p.DB().WithContext(ctx).
		Where("listener = ?", listener).
		Limit(1).
		Find(&checkpoints).
		Error
	if err != nil || len(checkpoints) == 0 {
		return nil, err
	}
	return &checkpoints[0].BlockNumber, nil
}

func (s *store) SetCheckpoint(ctx context.Context, listener string, blockNumber uint64) error {
	return s.p.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listener"}},
			DoUpdates: clause.AssignmentColumns([]string{"block_number"}),
		}).
		Create(&dbCheckpoint{Listener: listener, BlockNumber: blockNumber}).
		Error
}
