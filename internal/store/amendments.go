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
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

func (s *store) findAmendment(ctx context.Context, where string, arg interface{}) (*tfapi.Amendment, error) {
	var amendments []*dbAmendment
	err := s.p.DB().WithContext(ctx).
		Preload("History", orderedHistory).
		Where(where, arg).
		Limit(1).
		Find(&amendments).
		Error
	if err != nil || len(amendments) == 0 {
		return nil, err
	}
	return amendments[0].toAPI(), nil
}

func (s *store) GetAmendment(ctx context.Context, staticID uuid.UUID) (*tfapi.Amendment, error) {
	return s.findAmendment(ctx, "static_id = ?", staticID)
}

func (s *store) GetAmendmentByAddress(ctx context.Context, address tftypes.EthAddress) (*tfapi.Amendment, error) {
	return s.findAmendment(ctx, "contract_address = ?", address)
}

func (s *store) ListAmendments(ctx context.Context, lcStaticID uuid.UUID) ([]*tfapi.Amendment, error) {
	var amendments []*dbAmendment
	err := s.p.DB().WithContext(ctx).
		Preload("History", orderedHistory).
		Where("lc_static_id = ?", lcStaticID).
		Order("version").
		Find(&amendments).
		Error
	if err != nil {
		return nil, err
	}
	results := make([]*tfapi.Amendment, len(amendments))
	for i, a := range amendments {
		results[i] = a.toAPI()
	}
	return results, nil
}

func (s *store) InsertAmendment(ctx context.Context, a *tfapi.Amendment) error {
	now := tftypes.TimestampNow()
	a.Created = now
	a.Updated = now
	return s.p.DB().WithContext(ctx).Omit("History").Create(amendmentToDB(a)).Error
}

func (s *store) UpdateAmendment(ctx context.Context, staticID uuid.UUID, update *components.AmendmentUpdate) error {
	updates := map[string]interface{}{"updated": tftypes.TimestampNow()}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.ContractAddress != nil {
		updates["contract_address"] = update.ContractAddress
	}
	if update.TransactionHash != nil {
		updates["transaction_hash"] = update.TransactionHash
	}
	return s.p.DB().WithContext(ctx).
		Table("amendments").
		Where("static_id = ?", staticID).
		Updates(updates).
		Error
}

func (s *store) ClaimAmendmentDestination(ctx context.Context, staticID uuid.UUID, dest tfapi.AmendmentStatus) (bool, error) {
	res := s.p.DB().WithContext(ctx).
		Table("amendments").
		Where("static_id = ?", staticID).
		Where("destination_status IS NULL OR destination_status = status").
		Updates(map[string]interface{}{
			"destination_status": string(dest),
			"updated":            tftypes.TimestampNow(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *store) ReleaseAmendmentDestination(ctx context.Context, staticID uuid.UUID, dest tfapi.AmendmentStatus) error {
	return s.p.DB().WithContext(ctx).
		Table("amendments").
		Where("static_id = ? AND destination_status = ?", staticID, string(dest)).
		Update("destination_status", nil).
		Error
}

func (s *store) AppendAmendmentHistoryAndSetStatus(ctx context.Context, staticID uuid.UUID, status tfapi.AmendmentStatus, performer string) error {
	return s.p.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var existing []*dbAmendment
		if err := tx.Where("static_id = ?", staticID).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) == 0 {
			return i18n.NewError(ctx, msgs.MsgAmendmentNotFound, staticID)
		}
		now := tftypes.TimestampNow()
		if err := tx.Create(&dbAmendmentHistory{
			AmendmentID: staticID,
			FromState:   existing[0].Status,
			ToState:     string(status),
			Performer:   performer,
			Timestamp:   now,
		}).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"status":  string(status),
			"updated": now,
		}
		if existing[0].DestinationStatus != nil && *existing[0].DestinationStatus == string(status) {
			updates["destination_status"] = nil
		}
		return tx.Table("amendments").Where("static_id = ?", staticID).Updates(updates).Error
	})
}
