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
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
)

type dbInstrument struct {
	ID                  uuid.UUID           `gorm:"column:id;primaryKey"`
	Type                string              `gorm:"column:type"`
	Reference           string              `gorm:"column:reference"`
	ContractAddress     *tftypes.EthAddress `gorm:"column:contract_address"`
	TransactionHash     *tftypes.Bytes32    `gorm:"column:transaction_hash"`
	ApplicantID         string              `gorm:"column:applicant_id"`
	BeneficiaryID       string              `gorm:"column:beneficiary_id"`
	IssuingBankID       string              `gorm:"column:issuing_bank_id"`
	BeneficiaryBankID   string              `gorm:"column:beneficiary_bank_id"`
	BeneficiaryBankRole string              `gorm:"column:beneficiary_bank_role"`
	Direct              bool                `gorm:"column:direct"`
	Currency            string              `gorm:"column:currency"`
	Amount              string              `gorm:"column:amount"`
	ExpiryDate          tftypes.Timestamp   `gorm:"column:expiry_date"`
	Terms               tftypes.RawJSON     `gorm:"column:terms"`
	TradeSourceSystem   string              `gorm:"column:trade_source_system"`
	Status              string              `gorm:"column:status"`
	DestinationState    *string             `gorm:"column:destination_state"`
	Nonce               uint64              `gorm:"column:nonce"`
	IssueDueDate        *tftypes.Timestamp  `gorm:"column:issue_due_date"`
	IssueDueTimerID     *string             `gorm:"column:issue_due_timer_id"`
	Created             tftypes.Timestamp   `gorm:"column:created"`
	Updated             tftypes.Timestamp   `gorm:"column:updated"`
	History             []*dbHistory        `gorm:"foreignKey:InstrumentID;references:ID"`
}

func (dbInstrument) TableName() string {
	return "instruments"
}

type dbHistory struct {
	Seq          *int64            `gorm:"column:seq;primaryKey;autoIncrement"`
	InstrumentID uuid.UUID         `gorm:"column:instrument_id"`
	FromState    string            `gorm:"column:from_state"`
	ToState      string            `gorm:"column:to_state"`
	Performer    string            `gorm:"column:performer"`
	Timestamp    tftypes.Timestamp `gorm:"column:timestamp"`
}

func (dbHistory) TableName() string {
	return "instrument_history"
}

type dbAmendment struct {
	StaticID          uuid.UUID             `gorm:"column:static_id;primaryKey"`
	LCStaticID        uuid.UUID             `gorm:"column:lc_static_id"`
	LCReference       string                `gorm:"column:lc_reference"`
	Version           int                   `gorm:"column:version"`
	Diffs             tftypes.RawJSON       `gorm:"column:diffs"`
	Status            string                `gorm:"column:status"`
	DestinationStatus *string               `gorm:"column:destination_status"`
	ContractAddress   *tftypes.EthAddress   `gorm:"column:contract_address"`
	TransactionHash   *tftypes.Bytes32      `gorm:"column:transaction_hash"`
	Created           tftypes.Timestamp     `gorm:"column:created"`
	Updated           tftypes.Timestamp     `gorm:"column:updated"`
	History           []*dbAmendmentHistory `gorm:"foreignKey:AmendmentID;references:StaticID"`
}

func (dbAmendment) TableName() string {
	return "amendments"
}

type dbAmendmentHistory struct {
	Seq         *int64            `gorm:"column:seq;primaryKey;autoIncrement"`
	AmendmentID uuid.UUID         `gorm:"column:amendment_id"`
	FromState   string            `gorm:"column:from_state"`
	ToState     string            `gorm:"column:to_state"`
	Performer   string            `gorm:"column:performer"`
	Timestamp   tftypes.Timestamp `gorm:"column:timestamp"`
}

func (dbAmendmentHistory) TableName() string {
	return "amendment_history"
}

type dbCheckpoint struct {
	Listener    string `gorm:"column:listener;primaryKey"`
	BlockNumber uint64 `gorm:"column:block_number"`
}

func (dbCheckpoint) TableName() string {
	return "listener_checkpoints"
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromDBHistory(from, to, performer string, ts tftypes.Timestamp) *tfapi.StateHistoryEntry {
	return &tfapi.StateHistoryEntry{FromState: from, ToState: to, Performer: performer, Timestamp: ts}
}

func (dbi *dbInstrument) toAPI() *tfapi.Instrument {
	inst := &tfapi.Instrument{
		ID:                  dbi.ID,
		Type:                tfapi.InstrumentType(dbi.Type),
		Reference:           dbi.Reference,
		ContractAddress:     dbi.ContractAddress,
		TransactionHash:     dbi.TransactionHash,
		ApplicantID:         dbi.ApplicantID,
		BeneficiaryID:       dbi.BeneficiaryID,
		IssuingBankID:       dbi.IssuingBankID,
		BeneficiaryBankID:   dbi.BeneficiaryBankID,
		BeneficiaryBankRole: tfapi.IntermediaryRole(dbi.BeneficiaryBankRole),
		Direct:              dbi.Direct,
		Currency:            dbi.Currency,
		Amount:              dbi.Amount,
		ExpiryDate:          dbi.ExpiryDate,
		Terms:               dbi.Terms,
		TradeSourceSystem:   dbi.TradeSourceSystem,
		Status:              tfapi.InstrumentState(dbi.Status),
		Nonce:               dbi.Nonce,
		Created:             dbi.Created,
		Updated:             dbi.Updated,
	}
	if dbi.DestinationState != nil {
		dest := tfapi.InstrumentState(*dbi.DestinationState)
		inst.DestinationState = &dest
	}
	if dbi.IssueDueDate != nil {
		inst.IssueDueDate = &tfapi.IssueDueDate{DueDate: *dbi.IssueDueDate}
		if dbi.IssueDueTimerID != nil {
			inst.IssueDueDate.TimerID = *dbi.IssueDueTimerID
		}
	}
	for _, h := range dbi.History {
		inst.StateHistory = append(inst.StateHistory, fromDBHistory(h.FromState, h.ToState, h.Performer, h.Timestamp))
	}
	return inst
}

func instrumentToDB(inst *tfapi.Instrument) *dbInstrument {
	dbi := &dbInstrument{
		ID:                  inst.ID,
		Type:                string(inst.Type),
		Reference:           inst.Reference,
		ContractAddress:     inst.ContractAddress,
		TransactionHash:     inst.TransactionHash,
		ApplicantID:         inst.ApplicantID,
		BeneficiaryID:       inst.BeneficiaryID,
		IssuingBankID:       inst.IssuingBankID,
		BeneficiaryBankID:   inst.BeneficiaryBankID,
		BeneficiaryBankRole: string(inst.BeneficiaryBankRole),
		Direct:              inst.Direct,
		Currency:            inst.Currency,
		Amount:              inst.Amount,
		ExpiryDate:          inst.ExpiryDate,
		Terms:               inst.Terms,
		TradeSourceSystem:   inst.TradeSourceSystem,
		Status:              string(inst.Status),
		Nonce:               inst.Nonce,
		Created:             inst.Created,
		Updated:             inst.Updated,
	}
	if inst.DestinationState != nil {
		dbi.DestinationState = optString(string(*inst.DestinationState))
	}
	if inst.IssueDueDate != nil {
		dueDate := inst.IssueDueDate.DueDate
		dbi.IssueDueDate = &dueDate
		dbi.IssueDueTimerID = optString(inst.IssueDueDate.TimerID)
	}
	return dbi
}

func (dba *dbAmendment) toAPI() *tfapi.Amendment {
	a := &tfapi.Amendment{
		StaticID:        dba.StaticID,
		LCStaticID:      dba.LCStaticID,
		LCReference:     dba.LCReference,
		Version:         dba.Version,
		Diffs:           dba.Diffs,
		Status:          tfapi.AmendmentStatus(dba.Status),
		ContractAddress: dba.ContractAddress,
		TransactionHash: dba.TransactionHash,
		Created:         dba.Created,
		Updated:         dba.Updated,
	}
	if dba.DestinationStatus != nil {
		dest := tfapi.AmendmentStatus(*dba.DestinationStatus)
		a.DestinationStatus = &dest
	}
	for _, h := range dba.History {
		a.StateHistory = append(a.StateHistory, fromDBHistory(h.FromState, h.ToState, h.Performer, h.Timestamp))
	}
	return a
}

func amendmentToDB(a *tfapi.Amendment) *dbAmendment {
	dba := &dbAmendment{
		StaticID:        a.StaticID,
		LCStaticID:      a.LCStaticID,
		LCReference:     a.LCReference,
		Version:         a.Version,
		Diffs:           a.Diffs,
		Status:          string(a.Status),
		ContractAddress: a.ContractAddress,
		TransactionHash: a.TransactionHash,
		Created:         a.Created,
		Updated:         a.Updated,
	}
	if a.DestinationStatus != nil {
		dba.DestinationStatus = optString(string(*a.DestinationStatus))
	}
	return dba
}
