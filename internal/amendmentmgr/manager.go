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

package amendmentmgr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/internal/txcoordinator"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type amendmentLedger interface {
	Binding() *contracts.AmendmentBinding
	Deploy(ctx context.Context, appData interface{}, counterpartyIDs []string) (*txcoordinator.Result, error)
	Invoke(ctx context.Context, contract tftypes.EthAddress, action contracts.AmendmentAction, args map[string]interface{}, counterpartyIDs []string) (*txcoordinator.Result, error)
}

type Dependencies struct {
	SelfPartyID string
	ProductID   string
	Store       components.Store
	Identity    components.IdentityResolver
	Tasks       components.TaskManager
	Compressor  hashcodec.Compressor
	Metrics     metrics.Metrics
}

// decision is an action of the issuing bank on a requested amendment
type decision struct {
	name        string
	action      contracts.AmendmentAction
	destination tfapi.AmendmentStatus
}

var (
	approve = &decision{name: "approve", action: contracts.AmendmentApprove, destination: tfapi.AmendmentApproved}
	reject  = &decision{name: "reject", action: contracts.AmendmentReject, destination: tfapi.AmendmentRejectedByIssuingBank}
)

type amendmentManager struct {
	bgCtx  context.Context
	conf   *tfconf.InstrumentsConfig
	deps   *Dependencies
	ledger amendmentLedger

	createdTopic    tftypes.Bytes32
	transitionTopic tftypes.Bytes32
}

func NewAmendmentManager(bgCtx context.Context, conf *tfconf.InstrumentsConfig) components.AmendmentManager {
	return &amendmentManager{
		bgCtx: log.WithLogField(bgCtx, "mgr", "amendment"),
		conf:  conf,
	}
}

func (am *amendmentManager) PostInit(c components.AllComponents) error {
	// amendment contracts are invoked rarely, so their nonce is always read from the ledger
	coordinator := txcoordinator.NewCoordinator(c.Contracts().Amendment, txcoordinator.DependenciesOf(c), txcoordinator.LedgerNonce)
	am.init(&Dependencies{
		SelfPartyID: c.SelfPartyID(),
		ProductID:   confutil.StringNotEmpty(am.conf.ProductID, *tfconf.InstrumentsDefaults.ProductID),
		Store:       c.Store(),
		Identity:    c.IdentityResolver(),
		Tasks:       c.TaskManager(),
		Compressor:  c.Compressor(),
		Metrics:     c.Metrics(),
	}, coordinator)
	return nil
}

func (am *amendmentManager) init(deps *Dependencies, ledger amendmentLedger) {
	am.deps = deps
	am.ledger = ledger
	am.createdTopic = tftypes.NewBytes32FromSlice(ledger.Binding().CreatedTopic())
	am.transitionTopic = tftypes.NewBytes32FromSlice(ledger.Binding().TransitionTopic())
}

func (am *amendmentManager) Start() error { return nil }

func (am *amendmentManager) Stop() {}

func (am *amendmentManager) Name() string {
	return am.ledger.Binding().Name()
}

func (am *amendmentManager) Topics() []tftypes.Bytes32 {
	return []tftypes.Bytes32{am.createdTopic, am.transitionTopic}
}

func (am *amendmentManager) parentOf(ctx context.Context, lcStaticID uuid.UUID) (*tfapi.Instrument, error) {
	parent, err := am.deps.Store.GetInstrument(ctx, &components.InstrumentSelector{ID: &lcStaticID})
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, i18n.NewError(ctx, msgs.MsgAmendmentParentNotFound, lcStaticID)
	}
	return parent, nil
}

func (am *amendmentManager) nextVersion(ctx context.Context, lcStaticID uuid.UUID) (int, error) {
	existing, err := am.deps.Store.ListAmendments(ctx, lcStaticID)
	if err != nil {
		return 0, err
	}
	version := 1
	for _, a := range existing {
		if a.Version >= version {
			version = a.Version + 1
		}
	}
	return version, nil
}

// CreateAmendment persists the amendment as Pending and deploys its contract.
// The amendment is marked Failed if the deploy cannot be submitted.
func (am *amendmentManager) CreateAmendment(ctx context.Context, a *tfapi.Amendment) (*tfapi.Amendment, error) {
	if a.LCStaticID == uuid.Nil {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidAmendment, "lcStaticId")
	}
	parent, err := am.parentOf(ctx, a.LCStaticID)
	if err != nil {
		return nil, err
	}
	for name, id := range map[string]string{
		"applicantId":   parent.ApplicantID,
		"beneficiaryId": parent.BeneficiaryID,
		"issuingBankId": parent.IssuingBankID,
	} {
		if id == "" {
			return nil, i18n.NewError(ctx, msgs.MsgMissingMandatoryParty, name)
		}
	}
	if role := tfapi.RoleOf(am.deps.SelfPartyID, parent); role != tfapi.RoleApplicant {
		return nil, i18n.NewError(ctx, msgs.MsgForbiddenRole, am.deps.SelfPartyID, role, "amend", tfapi.RoleApplicant)
	}

	if a.StaticID == uuid.Nil {
		a.StaticID = uuid.New()
	}
	if a.Version == 0 {
		if a.Version, err = am.nextVersion(ctx, a.LCStaticID); err != nil {
			return nil, err
		}
	}
	ctx = log.WithLogField(ctx, "amendment", a.StaticID.String())
	a.LCReference = parent.Reference
	a.Status = tfapi.AmendmentPending
	a.DestinationStatus = nil
	a.ContractAddress = nil
	a.TransactionHash = nil
	a.StateHistory = nil
	if err := am.deps.Store.InsertAmendment(ctx, a); err != nil {
		return nil, err
	}

	res, err := am.ledger.Deploy(ctx, &tfapi.AmendmentData{
		StaticID:    a.StaticID,
		LCStaticID:  a.LCStaticID,
		LCReference: a.LCReference,
		Version:     a.Version,
		Diffs:       a.Diffs,
	}, parent.Parties())
	if err != nil {
		log.L(ctx).Errorf("Deploy of amendment %d of %s failed: %s", a.Version, a.LCReference, err)
		a.Status = tfapi.AmendmentFailed
		if uErr := am.deps.Store.UpdateAmendment(ctx, a.StaticID, &components.AmendmentUpdate{Status: &a.Status}); uErr != nil {
			log.L(ctx).Errorf("Failed to mark amendment failed: %s", uErr)
			am.deps.Metrics.BookkeepingFailure("amendment")
		}
		return nil, err
	}
	a.TransactionHash = &res.TransactionHash
	if err := am.deps.Store.UpdateAmendment(ctx, a.StaticID, &components.AmendmentUpdate{TransactionHash: a.TransactionHash}); err != nil {
		log.L(ctx).Warnf("Failed to record deploy transaction %s: %s", res.TransactionHash, err)
		am.deps.Metrics.BookkeepingFailure("transactionHash")
	}
	log.L(ctx).Infof("Amendment %d of %s submitted for deploy tx=%s", a.Version, a.LCReference, res.TransactionHash)
	return a, nil
}

func (am *amendmentManager) GetAmendment(ctx context.Context, staticID uuid.UUID) (*tfapi.Amendment, error) {
	return am.deps.Store.GetAmendment(ctx, staticID)
}

func (am *amendmentManager) Approve(ctx context.Context, staticID uuid.UUID) (*tftypes.Bytes32, error) {
	return am.decide(ctx, staticID, approve, map[string]interface{}{})
}

func (am *amendmentManager) Reject(ctx context.Context, staticID uuid.UUID, comments string) (*tftypes.Bytes32, error) {
	return am.decide(ctx, staticID, reject, map[string]interface{}{"comments": comments})
}

func (am *amendmentManager) decide(ctx context.Context, staticID uuid.UUID, d *decision, args map[string]interface{}) (*tftypes.Bytes32, error) {
	ctx = log.WithLogField(ctx, "amendment", staticID.String())
	ctx = log.WithLogField(ctx, "action", d.name)
	a, err := am.deps.Store.GetAmendment(ctx, staticID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, i18n.NewError(ctx, msgs.MsgAmendmentNotFound, staticID)
	}
	parent, err := am.parentOf(ctx, a.LCStaticID)
	if err != nil {
		return nil, err
	}
	if role := tfapi.RoleOf(am.deps.SelfPartyID, parent); role != tfapi.RoleIssuingBank {
		return nil, i18n.NewError(ctx, msgs.MsgForbiddenRole, am.deps.SelfPartyID, role, d.name, tfapi.RoleIssuingBank)
	}
	if a.Status != tfapi.AmendmentRequested {
		return nil, i18n.NewError(ctx, msgs.MsgAmendmentInvalidState, staticID, a.Status, d.name, tfapi.AmendmentRequested)
	}
	if a.DestinationStatus != nil && *a.DestinationStatus == d.destination {
		return nil, i18n.NewError(ctx, msgs.MsgAmendmentAlreadyProgress, staticID, d.destination)
	}
	if a.ContractAddress == nil {
		return nil, i18n.NewError(ctx, msgs.MsgBindingNotBound, am.ledger.Binding().Name())
	}

	claimed, err := am.deps.Store.ClaimAmendmentDestination(ctx, staticID, d.destination)
	switch {
	case err != nil:
		log.L(ctx).Warnf("Failed to record destination status %s: %s", d.destination, err)
	case !claimed:
		return nil, i18n.NewError(ctx, msgs.MsgAmendmentAlreadyProgress, staticID, d.destination)
	}
	am.setTaskStatus(ctx, a, tfapi.TaskStatusPending)

	res, err := am.ledger.Invoke(ctx, *a.ContractAddress, d.action, args, parent.Parties())
	if err != nil {
		if claimed {
			if rErr := am.deps.Store.ReleaseAmendmentDestination(ctx, staticID, d.destination); rErr != nil {
				log.L(ctx).Warnf("Failed to release destination status %s: %s", d.destination, rErr)
			}
		}
		am.setTaskStatus(ctx, a, tfapi.TaskStatusToDo)
		return nil, err
	}
	dest := d.destination
	a.DestinationStatus = &dest
	log.L(ctx).Infof("Submitted amendment %s tx=%s", d.name, res.TransactionHash)
	return &res.TransactionHash, nil
}

func (am *amendmentManager) setTaskStatus(ctx context.Context, a *tfapi.Amendment, status tfapi.TaskStatus) {
	if err := am.deps.Tasks.UpdateTaskStatus(ctx, tfapi.TaskReviewAmendment, a.TaskContext(), status); err != nil {
		log.L(ctx).Warnf("Failed to set %s task to %s: %s", tfapi.TaskReviewAmendment, status, err)
	}
}

func (am *amendmentManager) HandleLog(ctx context.Context, l *ethclient.LogJSONRPC) error {
	if len(l.Topics) == 0 || l.Address == nil {
		return nil
	}
	switch tftypes.NewBytes32FromSlice(l.Topics[0]) {
	case am.createdTopic:
		return am.onCreated(ctx, l)
	case am.transitionTopic:
		return am.onTransition(ctx, l)
	}
	return nil
}

func (am *amendmentManager) onCreated(ctx context.Context, l *ethclient.LogJSONRPC) error {
	address := tftypes.EthAddress(*l.Address)
	ctx = log.WithLogField(ctx, "contract", address.String())
	payload, err := am.ledger.Binding().DecodeCreated(ctx, l)
	if err != nil {
		return err
	}
	jsonData, err := am.deps.Compressor.Decompress(ctx, payload)
	if err != nil {
		return err
	}
	var data tfapi.AmendmentData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgInvalidEventData, am.ledger.Binding().Name())
	}
	if data.StaticID == uuid.Nil || data.LCStaticID == uuid.Nil {
		return i18n.NewError(ctx, msgs.MsgInvalidAmendment, "staticId")
	}
	parent, err := am.parentOf(ctx, data.LCStaticID)
	if err != nil {
		return err
	}

	txHash := tftypes.NewBytes32FromSlice(l.TransactionHash)
	a, err := am.deps.Store.GetAmendment(ctx, data.StaticID)
	if err != nil {
		return err
	}
	switch {
	case a == nil:
		a = &tfapi.Amendment{
			StaticID:        data.StaticID,
			LCStaticID:      data.LCStaticID,
			LCReference:     data.LCReference,
			Version:         data.Version,
			Diffs:           data.Diffs,
			Status:          tfapi.AmendmentPending,
			ContractAddress: &address,
			TransactionHash: &txHash,
		}
		if err := am.deps.Store.InsertAmendment(ctx, a); err != nil {
			return err
		}
	case a.Status == tfapi.AmendmentPending || a.Status == tfapi.AmendmentFailed:
		// the deploy may have been mined after the local submission reported a failure
		a.ContractAddress = &address
		a.TransactionHash = &txHash
		if err := am.deps.Store.UpdateAmendment(ctx, a.StaticID, &components.AmendmentUpdate{ContractAddress: &address, TransactionHash: &txHash}); err != nil {
			return err
		}
	default:
		log.L(ctx).Infof("Ignoring creation of amendment %s already in status %s", a.StaticID, a.Status)
		return nil
	}
	return am.onStatus(ctx, a, parent, tfapi.AmendmentRequested, uint64(l.BlockNumber))
}

func (am *amendmentManager) onTransition(ctx context.Context, l *ethclient.LogJSONRPC) error {
	address := tftypes.EthAddress(*l.Address)
	a, err := am.deps.Store.GetAmendmentByAddress(ctx, address)
	if err != nil {
		return err
	}
	if a == nil {
		log.L(ctx).Tracef("Transition of contract %s is not a cached amendment", address)
		return nil
	}
	transition, err := am.ledger.Binding().DecodeTransition(ctx, l)
	if err != nil {
		return err
	}
	status, ok := am.ledger.Binding().KnownStates()[transition.StateID]
	if !ok {
		return i18n.NewError(ctx, msgs.MsgUnknownLedgerState, transition.StateID, am.ledger.Binding().Name())
	}
	if status == a.Status {
		log.L(ctx).Debugf("Amendment %s already in status %s", a.StaticID, status)
		return nil
	}
	parent, err := am.parentOf(ctx, a.LCStaticID)
	if err != nil {
		return err
	}
	return am.onStatus(ctx, a, parent, status, uint64(l.BlockNumber))
}

func performerOf(parent *tfapi.Instrument, status tfapi.AmendmentStatus) string {
	if status == tfapi.AmendmentRequested {
		return parent.ApplicantID
	}
	return parent.IssuingBankID
}

// onStatus records the new status of the amendment and runs the side effects for the local party
func (am *amendmentManager) onStatus(ctx context.Context, a *tfapi.Amendment, parent *tfapi.Instrument, status tfapi.AmendmentStatus, blockNumber uint64) error {
	ctx = log.WithLogField(ctx, "amendment", a.StaticID.String())
	prior := a.Status
	performer := performerOf(parent, status)
	log.L(ctx).Infof("Amendment transition %s -> %s by '%s' (block=%d)", prior, status, performer, blockNumber)
	if err := am.deps.Store.AppendAmendmentHistoryAndSetStatus(ctx, a.StaticID, status, performer); err != nil {
		log.L(ctx).Errorf("Failed to record transition to %s: %s", status, err)
		am.deps.Metrics.BookkeepingFailure("history")
	}
	a.StateHistory = append(a.StateHistory, &tfapi.StateHistoryEntry{
		FromState: string(prior),
		ToState:   string(status),
		Performer: performer,
		Timestamp: tftypes.TimestampNow(),
	})
	a.Status = status
	if a.DestinationStatus != nil && *a.DestinationStatus == status {
		a.DestinationStatus = nil
	}
	am.deps.Metrics.TransitionObserved("Amendment", string(status))

	role := tfapi.RoleOf(am.deps.SelfPartyID, parent)
	switch {
	case role == tfapi.RoleIssuingBank && status == tfapi.AmendmentRequested:
		return am.createReviewTask(ctx, a, parent)
	case role == tfapi.RoleIssuingBank:
		if err := am.deps.Tasks.ResolveTask(ctx, tfapi.TaskReviewAmendment, a.TaskContext(), status == tfapi.AmendmentApproved); err != nil {
			log.L(ctx).Warnf("Failed to resolve %s task: %s", tfapi.TaskReviewAmendment, err)
			am.deps.Metrics.BookkeepingFailure("task")
		}
	case performer != am.deps.SelfPartyID && role != tfapi.RoleNotParty:
		am.notify(ctx, a, performer)
	}
	return nil
}

func (am *amendmentManager) createReviewTask(ctx context.Context, a *tfapi.Amendment, parent *tfapi.Instrument) error {
	existing, err := am.deps.Tasks.FindTasks(ctx, tfapi.TaskReviewAmendment, a.TaskContext())
	if err != nil {
		return err
	}
	for _, t := range existing {
		if t.Status == tfapi.TaskStatusToDo || t.Status == tfapi.TaskStatusPending {
			log.L(ctx).Debugf("Task %s already open (id=%s)", tfapi.TaskReviewAmendment, t.ID)
			return nil
		}
	}
	_, err = am.deps.Tasks.CreateTask(ctx, &tfapi.NewTask{
		Type:    tfapi.TaskReviewAmendment,
		Context: a.TaskContext(),
		Role:    tfapi.RoleIssuingBank,
		Summary: fmt.Sprintf("Review amendment %d of %s %s", a.Version, parent.Type, parent.Reference),
	})
	return err
}

func (am *amendmentManager) notify(ctx context.Context, a *tfapi.Amendment, performer string) {
	name := performer
	if resolved, err := am.deps.Identity.ResolveDisplayName(ctx, performer); err == nil {
		name = resolved
	}
	err := am.deps.Tasks.CreateNotification(ctx, &tfapi.Notification{
		ProductID: am.deps.ProductID,
		Type:      "LC.Amendment.StateTransition",
		Level:     tfapi.NotificationInfo,
		Message:   fmt.Sprintf("Amendment %d of %s %s by %s", a.Version, a.LCReference, a.Status, name),
		Context:   a.TaskContext(),
	})
	if err != nil {
		log.L(ctx).Warnf("Failed to notify amendment transition to %s: %s", a.Status, err)
		am.deps.Metrics.BookkeepingFailure("notification")
	}
}
