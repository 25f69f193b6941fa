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

type AmendmentStatus string

const (
	AmendmentPending               AmendmentStatus = "Pending"
	AmendmentRequested             AmendmentStatus = "Requested"
	AmendmentFailed                AmendmentStatus = "Failed"
	AmendmentRejectedByIssuingBank AmendmentStatus = "RejectedByIssuingBank"
	AmendmentApproved              AmendmentStatus = "Approved"
)

type Amendment struct {
	StaticID          uuid.UUID            `json:"staticId"`
	LCStaticID        uuid.UUID            `json:"lcStaticId"`
	LCReference       string               `json:"lcReference"`
	Version           int                  `json:"version"`
	Diffs             tftypes.RawJSON      `json:"diffs,omitempty"`
	Status            AmendmentStatus      `json:"status"`
	DestinationStatus *AmendmentStatus     `json:"destinationStatus,omitempty"`
	ContractAddress   *tftypes.EthAddress  `json:"contractAddress,omitempty"`
	TransactionHash   *tftypes.Bytes32     `json:"transactionHash,omitempty"`
	StateHistory      []*StateHistoryEntry `json:"stateHistory,omitempty"`
	Created           tftypes.Timestamp    `json:"created"`
	Updated           tftypes.Timestamp    `json:"updated"`
}

// AmendmentData is embedded in the amendment deploy transaction
type AmendmentData struct {
	StaticID    uuid.UUID       `json:"staticId"`
	LCStaticID  uuid.UUID       `json:"lcStaticId"`
	LCReference string          `json:"lcReference"`
	Version     int             `json:"version"`
	Diffs       tftypes.RawJSON `json:"diffs,omitempty"`
}

func (a *Amendment) TaskContext() TaskContext {
	return TaskContext{
		"type":        "LC.Amendment",
		"lcId":        a.LCStaticID.String(),
		"amendmentId": a.StaticID.String(),
	}
}
