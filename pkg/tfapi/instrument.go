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

package tfapi

import (
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
)

type InstrumentType string

const (
	InstrumentTypeLC   InstrumentType = "LC"
	InstrumentTypeSBLC InstrumentType = "SBLC"
)

func (t InstrumentType) Options() []string {
	return []string{string(InstrumentTypeLC), string(InstrumentTypeSBLC)}
}

type InstrumentState string

const (
	StateInitialising    InstrumentState = "Initialising"
	StateRequested       InstrumentState = "Requested"
	StateRequestRejected InstrumentState = "RequestRejected"
	StateIssued          InstrumentState = "Issued"
	StateIssuedRejected  InstrumentState = "IssuedRejected"
	StateAdvised         InstrumentState = "Advised"
	StateAcknowledged    InstrumentState = "Acknowledged"
)

// IntermediaryRole tags the bank that sits between the issuing bank and the beneficiary
type IntermediaryRole string

const (
	IntermediaryAdvising    IntermediaryRole = "Advising"
	IntermediaryNegotiating IntermediaryRole = "Negotiating"
)

type IssueDueDate struct {
	DueDate tftypes.Timestamp `json:"dueDate"`
	TimerID string            `json:"timerId,omitempty"`
}

type StateHistoryEntry struct {
	FromState string            `json:"fromState"`
	ToState   string            `json:"toState"`
	Performer string            `json:"performer"`
	Timestamp tftypes.Timestamp `json:"timestamp"`
}

type Instrument struct {
	ID                  uuid.UUID            `json:"id"`
	Type                InstrumentType       `json:"type"`
	Reference           string               `json:"reference"`
	ContractAddress     *tftypes.EthAddress  `json:"contractAddress,omitempty"`
	TransactionHash     *tftypes.Bytes32     `json:"transactionHash,omitempty"`
	ApplicantID         string               `json:"applicantId"`
	BeneficiaryID       string               `json:"beneficiaryId"`
	IssuingBankID       string               `json:"issuingBankId"`
	BeneficiaryBankID   string               `json:"beneficiaryBankId,omitempty"`
	BeneficiaryBankRole IntermediaryRole     `json:"beneficiaryBankRole,omitempty"`
	Direct              bool                 `json:"direct"`
	Currency            string               `json:"currency"`
	Amount              string               `json:"amount"`
	ExpiryDate          tftypes.Timestamp    `json:"expiryDate,omitempty"`
	Terms               tftypes.RawJSON      `json:"terms,omitempty"`
	TradeSourceSystem   string               `json:"tradeSourceSystem,omitempty"`
	Status              InstrumentState      `json:"status"`
	DestinationState    *InstrumentState     `json:"destinationState,omitempty"`
	Nonce               uint64               `json:"nonce"`
	IssueDueDate        *IssueDueDate        `json:"issueDueDate,omitempty"`
	StateHistory        []*StateHistoryEntry `json:"stateHistory,omitempty"`
	Created             tftypes.Timestamp    `json:"created"`
	Updated             tftypes.Timestamp    `json:"updated"`
}

// InstrumentData is the part of an instrument that is embedded in the deploy
// transaction, and rebuilt by every counterparty from the creation event
type InstrumentData struct {
	ID                  uuid.UUID         `json:"id"`
	Type                InstrumentType    `json:"type"`
	Reference           string            `json:"reference"`
	ApplicantID         string            `json:"applicantId"`
	BeneficiaryID       string            `json:"beneficiaryId"`
	IssuingBankID       string            `json:"issuingBankId"`
	BeneficiaryBankID   string            `json:"beneficiaryBankId,omitempty"`
	BeneficiaryBankRole IntermediaryRole  `json:"beneficiaryBankRole,omitempty"`
	Direct              bool              `json:"direct"`
	Currency            string            `json:"currency"`
	Amount              string            `json:"amount"`
	ExpiryDate          tftypes.Timestamp `json:"expiryDate,omitempty"`
	Terms               tftypes.RawJSON   `json:"terms,omitempty"`
	TradeSourceSystem   string            `json:"tradeSourceSystem,omitempty"`
	IssueDueDate        tftypes.Timestamp `json:"issueDueDate,omitempty"`
}

func (i *Instrument) LedgerData() *InstrumentData {
	d := &InstrumentData{
		ID:                  i.ID,
		Type:                i.Type,
		Reference:           i.Reference,
		ApplicantID:         i.ApplicantID,
		BeneficiaryID:       i.BeneficiaryID,
		IssuingBankID:       i.IssuingBankID,
		BeneficiaryBankID:   i.BeneficiaryBankID,
		BeneficiaryBankRole: i.BeneficiaryBankRole,
		Direct:              i.Direct,
		Currency:            i.Currency,
		Amount:              i.Amount,
		ExpiryDate:          i.ExpiryDate,
		Terms:               i.Terms,
		TradeSourceSystem:   i.TradeSourceSystem,
	}
	if i.IssueDueDate != nil {
		d.IssueDueDate = i.IssueDueDate.DueDate
	}
	return d
}

func (d *InstrumentData) Instrument() *Instrument {
	i := &Instrument{
		ID:                  d.ID,
		Type:                d.Type,
		Reference:           d.Reference,
		ApplicantID:         d.ApplicantID,
		BeneficiaryID:       d.BeneficiaryID,
		IssuingBankID:       d.IssuingBankID,
		BeneficiaryBankID:   d.BeneficiaryBankID,
		BeneficiaryBankRole: d.BeneficiaryBankRole,
		Direct:              d.Direct,
		Currency:            d.Currency,
		Amount:              d.Amount,
		ExpiryDate:          d.ExpiryDate,
		Terms:               d.Terms,
		TradeSourceSystem:   d.TradeSourceSystem,
	}
	if d.IssueDueDate != 0 {
		i.IssueDueDate = &IssueDueDate{DueDate: d.IssueDueDate}
	}
	return i
}

// Parties returns every party id on the instrument, omitting the unset intermediary
func (i *Instrument) Parties() []string {
	parties := []string{i.ApplicantID, i.BeneficiaryID, i.IssuingBankID}
	if i.BeneficiaryBankID != "" {
		parties = append(parties, i.BeneficiaryBankID)
	}
	return parties
}

// HasIntermediary is true when the beneficiary is reached through an advising or negotiating bank
func (i *Instrument) HasIntermediary() bool {
	return !i.Direct && i.BeneficiaryBankID != ""
}

func (i *Instrument) IDString() string {
	if i.ID == uuid.Nil {
		return i.Reference
	}
	return i.ID.String()
}

// TaskContext identifies the instrument in tasks, notifications and documents
func (i *Instrument) TaskContext() TaskContext {
	return TaskContext{
		"type": string(i.Type),
		"id":   i.ID.String(),
	}
}
