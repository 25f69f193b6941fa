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

package lcmgr

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/transitions"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

const (
	DocumentTypeSBLCIssuance = "SBLC-Issuance"
	DocumentTypeSBLCDraft    = "SBLC-Draft"
)

// sblcRecipients receive the issuance document of a standby LC, including any intermediary bank
func sblcRecipients(inst *tfapi.Instrument) []string {
	recipients := []string{inst.ApplicantID, inst.BeneficiaryID}
	if inst.BeneficiaryBankID != "" {
		recipients = append(recipients, inst.BeneficiaryBankID)
	}
	return recipients
}

var standbyLetterOfCredit = &lifecycle[contracts.SBLCAction]{
	kind:          tfapi.InstrumentTypeSBLC,
	issuedDocType: DocumentTypeSBLCIssuance,
	draftDocType:  DocumentTypeSBLCDraft,
	binding: func(b *contracts.Bindings) *contracts.SBLCBinding {
		return b.StandbyLetterOfCredit
	},
	actions: []*action[contracts.SBLCAction]{
		{
			name:             "issue",
			ledgerAction:     contracts.SBLCIssue,
			requiredState:    tfapi.StateRequested,
			requiredRole:     tfapi.RoleIssuingBank,
			destinationState: tfapi.StateIssued,
			task:             tfapi.TaskReviewRequestedSBLC,
			args: argsFrom(
				argSpec{key: "issuanceDocumentReference", arg: "issuanceDocumentReference"},
				argSpec{key: "documentHash", arg: "documentHash", bytes32: true},
			),
		},
		{
			name:             "rejectRequest",
			ledgerAction:     contracts.SBLCRequestReject,
			requiredState:    tfapi.StateRequested,
			requiredRole:     tfapi.RoleIssuingBank,
			destinationState: tfapi.StateRequestRejected,
			task:             tfapi.TaskReviewRequestedSBLC,
			args:             commentsArg,
		},
	},
	performers: []*transitions.PerformerRule{
		{State: tfapi.StateRequested, Role: tfapi.RoleApplicant},
		{State: tfapi.StateRequestRejected, Role: tfapi.RoleIssuingBank},
		{State: tfapi.StateIssued, Role: tfapi.RoleIssuingBank},
	},
	rules: func(h *handlers) map[tfapi.InstrumentState][]*transitions.Rule {
		return map[tfapi.InstrumentState][]*transitions.Rule{
			tfapi.StateRequested: {
				{Role: tfapi.RoleIssuingBank, Handler: h.armIssueDueTimer, CreateTask: &transitions.TaskCreation{Type: tfapi.TaskReviewRequestedSBLC}},
				{Role: tfapi.RoleApplicant, Bridge: true},
			},
			tfapi.StateRequestRejected: {
				{Role: tfapi.RoleIssuingBank, Handler: h.disarmIssueDueTimer, ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewRequestedSBLC, Outcome: false}},
				{Role: tfapi.RoleApplicant, Handler: h.deleteDraft, Notify: true, Bridge: true},
			},
			tfapi.StateIssued: {
				{
					Role:        tfapi.RoleIssuingBank,
					Handler:     chain(h.disarmIssueDueTimer, h.shareIssuedDocument(sblcRecipients)),
					ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewRequestedSBLC, Outcome: true},
				},
				{Role: tfapi.RoleApplicant, Notify: true, Bridge: true},
				{Role: tfapi.RoleBeneficiary, Notify: true},
				{Role: tfapi.RoleAdvisingBank, Notify: true},
				{Role: tfapi.RoleNegotiatingBank, Notify: true},
			},
		}
	},
}

// NewSBLCManager manages the standby letters of credit the local party is a party to
func NewSBLCManager(bgCtx context.Context, conf *tfconf.InstrumentsConfig) components.InstrumentManager {
	return newManager(bgCtx, conf, standbyLetterOfCredit)
}
