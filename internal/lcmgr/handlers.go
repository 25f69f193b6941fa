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
	"fmt"
	"time"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/internal/transitions"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// handlers are the role specific side effects of transitions, shared by the LC and SBLC tables
type handlers struct {
	deps          *Dependencies
	kind          tfapi.InstrumentType
	issuedDocType string
	draftDocType  string
}

func chain(hs ...transitions.Handler) transitions.Handler {
	return func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
		for _, h := range hs {
			if err := h(ctx, inst, event); err != nil {
				return err
			}
		}
		return nil
	}
}

// armIssueDueTimer reminds the issuing bank ahead of the issue due date of a new request
func (h *handlers) armIssueDueTimer(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
	if inst.IssueDueDate == nil || inst.IssueDueDate.DueDate == 0 || inst.IssueDueDate.TimerID != "" {
		return nil
	}
	timerID, err := h.deps.Timers.Arm(ctx, &tfapi.TimerRequest{
		DueAt: inst.IssueDueDate.DueDate,
		Notifications: []*tfapi.TimerNotification{{
			Before:  h.deps.ReminderBefore.String(),
			Message: fmt.Sprintf("%s %s is due to be issued by %s", h.kind, inst.Reference, inst.IssueDueDate.DueDate.Time().UTC().Format(time.RFC3339)),
		}},
		Context: inst.TaskContext(),
	})
	if err != nil {
		return err
	}
	inst.IssueDueDate.TimerID = timerID
	if err := h.deps.Store.UpdateInstrumentField(ctx, inst.ID, components.FieldIssueDueTimerID, timerID); err != nil {
		log.L(ctx).Warnf("Failed to record issue due timer %s: %s", timerID, err)
		h.deps.Metrics.BookkeepingFailure("timer")
	}
	return nil
}

// disarmIssueDueTimer stops the reminder once the request has been answered
func (h *handlers) disarmIssueDueTimer(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
	if inst.IssueDueDate == nil || inst.IssueDueDate.TimerID == "" {
		return nil
	}
	if err := h.deps.Timers.Disarm(ctx, inst.IssueDueDate.TimerID); err != nil {
		return err
	}
	inst.IssueDueDate.TimerID = ""
	if err := h.deps.Store.UpdateInstrumentField(ctx, inst.ID, components.FieldIssueDueTimerID, ""); err != nil {
		log.L(ctx).Warnf("Failed to clear issue due timer: %s", err)
		h.deps.Metrics.BookkeepingFailure("timer")
	}
	return nil
}

// shareIssuedDocument sends the issued document of the instrument to the recipients
func (h *handlers) shareIssuedDocument(recipients func(inst *tfapi.Instrument) []string) transitions.Handler {
	return func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
		doc, err := h.deps.Documents.GetDocument(ctx, h.deps.ProductID, h.issuedDocType, inst.TaskContext())
		if err != nil {
			return err
		}
		if doc == nil {
			return i18n.NewError(ctx, msgs.MsgDocumentNotFound, h.issuedDocType, inst.IDString())
		}
		companies := recipients(inst)
		return h.deps.Documents.ShareDocument(ctx, &tfapi.ShareDocumentRequest{
			ProductID:  h.deps.ProductID,
			DocumentID: doc.ID,
			Companies:  companies,
			Context:    inst.TaskContext(),
		})
	}
}

// deleteDraft removes the draft application once the request is rejected
func (h *handlers) deleteDraft(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
	doc, err := h.deps.Documents.GetDocument(ctx, h.deps.ProductID, h.draftDocType, inst.TaskContext())
	if err != nil || doc == nil {
		return err
	}
	log.L(ctx).Infof("Deleting draft %s of rejected %s %s", doc.ID, h.kind, inst.Reference)
	return h.deps.Documents.DeleteDocument(ctx, h.deps.ProductID, doc.ID)
}

// issuedRecipients are the parties the issuing bank sends the issued instrument to.
// An intermediary bank receives it in place of the beneficiary.
func issuedRecipients(inst *tfapi.Instrument) []string {
	if inst.HasIntermediary() {
		return []string{inst.ApplicantID, inst.BeneficiaryBankID}
	}
	return []string{inst.ApplicantID, inst.BeneficiaryID}
}

func beneficiaryOnly(inst *tfapi.Instrument) []string {
	return []string{inst.BeneficiaryID}
}
