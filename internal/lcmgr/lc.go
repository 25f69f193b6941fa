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
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

// Document types of the LC in the document service
const (
	DocumentTypeLCSwift = "SWIFT-LC"
	DocumentTypeLCDraft = "LC-Draft"
)

// acknowledgeable is the state check of the beneficiary actions on an issued LC
func acknowledgeable(inst *tfapi.Instrument) bool {
	return inst.Status == tfapi.StateAdvised || (inst.Status == tfapi.StateIssued && !inst.HasIntermediary())
}

func hasIntermediary(inst *tfapi.Instrument) bool { return inst.HasIntermediary() }

func withoutIntermediary(inst *tfapi.Instrument) bool { return !inst.HasIntermediary() }

var letterOfCredit = &lifecycle[contracts.LCAction]{
	kind:          tfapi.InstrumentTypeLC,
	issuedDocType: DocumentTypeLCSwift,
	draftDocType:  DocumentTypeLCDraft,
	binding: func(b *contracts.Bindings) *contracts.LCBinding {
		return b.LetterOfCredit
	},
	actions: []*action[contracts.LCAction]{
		{
			name:             "issue",
			ledgerAction:     contracts.LCIssue,
			requiredState:    tfapi.StateRequested,
			requiredRole:     tfapi.RoleIssuingBank,
			destinationState: tfapi.StateIssued,
			task:             tfapi.TaskReviewRequestedLC,
			args: argsFrom(
				argSpec{key: "swiftReference", arg: "swiftReference"},
				argSpec{key: "documentHash", arg: "documentHash", bytes32: true},
			),
		},
		{
			name:             "rejectRequest",
			ledgerAction:     contracts.LCRequestReject,
			requiredState:    tfapi.StateRequested,
			requiredRole:     tfapi.RoleIssuingBank,
			destinationState: tfapi.StateRequestRejected,
			task:             tfapi.TaskReviewRequestedLC,
			args:             commentsArg,
		},
		{
			name:             "advise",
			ledgerAction:     contracts.LCAdvise,
			requiredState:    tfapi.StateIssued,
			requiredRole:     tfapi.RoleAdvisingBank,
			destinationState: tfapi.StateAdvised,
			task:             tfapi.TaskReviewIssuedLC,
		},
		{
			name:             "rejectByAdvisingBank",
			ledgerAction:     contracts.LCRejectByAdvisingBank,
			requiredState:    tfapi.StateIssued,
			requiredRole:     tfapi.RoleAdvisingBank,
			destinationState: tfapi.StateIssuedRejected,
			task:             tfapi.TaskReviewIssuedLC,
			args:             commentsArg,
		},
		{
			name:             "acknowledge",
			ledgerAction:     contracts.LCAcknowledge,
			requiredState:    tfapi.StateAdvised,
			requiredRole:     tfapi.RoleBeneficiary,
			destinationState: tfapi.StateAcknowledged,
			stateCheck:       acknowledgeable,
			task:             tfapi.TaskReviewIssuedLC,
		},
		{
			name:             "rejectByBeneficiary",
			ledgerAction:     contracts.LCRejectByBeneficiary,
			requiredState:    tfapi.StateAdvised,
			requiredRole:     tfapi.RoleBeneficiary,
			destinationState: tfapi.StateIssuedRejected,
			stateCheck:       acknowledgeable,
			task:             tfapi.TaskReviewIssuedLC,
			args:             commentsArg,
		},
	},
	performers: []*transitions.PerformerRule{
		{State: tfapi.StateRequested, Role: tfapi.RoleApplicant},
		{State: tfapi.StateRequestRejected, Role: tfapi.RoleIssuingBank},
		{State: tfapi.StateIssued, Role: tfapi.RoleIssuingBank},
		{State: tfapi.StateAdvised, Role: tfapi.RoleAdvisingBank},
		{State: tfapi.StateAcknowledged, Role: tfapi.RoleBeneficiary},
		{State: tfapi.StateIssuedRejected, Prior: tfapi.StateAdvised, Role: tfapi.RoleBeneficiary},
		{State: tfapi.StateIssuedRejected, Direct: confutil.P(true), Role: tfapi.RoleBeneficiary},
		{State: tfapi.StateIssuedRejected, Role: tfapi.RoleAdvisingBank},
	},
	rules: func(h *handlers) map[tfapi.InstrumentState][]*transitions.Rule {
		reviewRequested := &transitions.TaskCreation{Type: tfapi.TaskReviewRequestedLC}
		reviewIssued := &transitions.TaskCreation{Type: tfapi.TaskReviewIssuedLC}
		return map[tfapi.InstrumentState][]*transitions.Rule{
			tfapi.StateRequested: {
				{Role: tfapi.RoleIssuingBank, Handler: h.armIssueDueTimer, CreateTask: reviewRequested},
				{Role: tfapi.RoleApplicant, Bridge: true},
			},
			tfapi.StateRequestRejected: {
				{Role: tfapi.RoleIssuingBank, Handler: h.disarmIssueDueTimer, ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewRequestedLC, Outcome: false}},
				{Role: tfapi.RoleApplicant, Handler: h.deleteDraft, Notify: true, Bridge: true},
			},
			tfapi.StateIssued: {
				{
					Role:        tfapi.RoleIssuingBank,
					Handler:     chain(h.disarmIssueDueTimer, h.shareIssuedDocument(issuedRecipients)),
					ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewRequestedLC, Outcome: true},
				},
				{Role: tfapi.RoleApplicant, Notify: true, Bridge: true},
				{Role: tfapi.RoleAdvisingBank, If: hasIntermediary, CreateTask: reviewIssued},
				{Role: tfapi.RoleNegotiatingBank, If: hasIntermediary, Notify: true},
				{Role: tfapi.RoleBeneficiary, If: withoutIntermediary, CreateTask: reviewIssued},
			},
			tfapi.StateAdvised: {
				{
					Role:        tfapi.RoleAdvisingBank,
					Handler:     h.shareIssuedDocument(beneficiaryOnly),
					ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewIssuedLC, Outcome: true},
				},
				{Role: tfapi.RoleBeneficiary, CreateTask: reviewIssued},
				{Role: tfapi.RoleApplicant, Notify: true, Bridge: true},
				{Role: tfapi.RoleIssuingBank, Notify: true},
			},
			tfapi.StateAcknowledged: {
				{Role: tfapi.RoleBeneficiary, ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewIssuedLC, Outcome: true}},
				{Role: tfapi.RoleApplicant, Notify: true, Bridge: true},
				{Role: tfapi.RoleIssuingBank, Notify: true},
				{Role: tfapi.RoleAdvisingBank, Notify: true},
			},
			tfapi.StateIssuedRejected: {
				{Role: tfapi.RoleBeneficiary, ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewIssuedLC, Outcome: false}},
				{Role: tfapi.RoleAdvisingBank, ResolveTask: &transitions.TaskResolution{Type: tfapi.TaskReviewIssuedLC, Outcome: false}, Notify: true},
				{Role: tfapi.RoleApplicant, Notify: true, Bridge: true},
				{Role: tfapi.RoleIssuingBank, Notify: true},
			},
		}
	},
}

// NewLCManager manages the letters of credit the local party is a party to
func NewLCManager(bgCtx context.Context, conf *tfconf.InstrumentsConfig) components.InstrumentManager {
	return newManager(bgCtx, conf, letterOfCredit)
}
