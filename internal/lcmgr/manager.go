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
	"encoding/json"
	"time"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/internal/statemachine"
	"github.com/alexmedkex/forkly-sub001/internal/transitions"
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

// instrumentLedger is the part of the transaction coordinator the manager drives
type instrumentLedger[A contracts.Enum] interface {
	Binding() *contracts.Binding[A, tfapi.InstrumentState]
	Deploy(ctx context.Context, appData interface{}, counterpartyIDs []string) (*txcoordinator.Result, error)
	Invoke(ctx context.Context, contract tftypes.EthAddress, action A, args map[string]interface{}, counterpartyIDs []string) (*txcoordinator.Result, error)
}

type Dependencies struct {
	SelfPartyID    string
	ProductID      string
	ReminderBefore time.Duration
	Store          components.Store
	Identity       components.IdentityResolver
	Tasks          components.TaskManager
	Documents      components.DocumentManager
	Timers         components.TimerManager
	Bridge         components.Bridge
	Compressor     hashcodec.Compressor
	Metrics        metrics.Metrics
}

func dependenciesOf(conf *tfconf.InstrumentsConfig, c components.PreInitComponents) *Dependencies {
	return &Dependencies{
		SelfPartyID:    c.SelfPartyID(),
		ProductID:      confutil.StringNotEmpty(conf.ProductID, *tfconf.InstrumentsDefaults.ProductID),
		ReminderBefore: confutil.DurationMin(conf.IssueReminderBefore, 0, *tfconf.InstrumentsDefaults.IssueReminderBefore),
		Store:          c.Store(),
		Identity:       c.IdentityResolver(),
		Tasks:          c.TaskManager(),
		Documents:      c.DocumentManager(),
		Timers:         c.TimerManager(),
		Bridge:         c.Bridge(),
		Compressor:     c.Compressor(),
		Metrics:        c.Metrics(),
	}
}

// action is one lifecycle action offered to the local party
type action[A contracts.Enum] struct {
	name             string
	ledgerAction     A
	requiredState    tfapi.InstrumentState
	requiredRole     tfapi.PartyRole
	destinationState tfapi.InstrumentState
	stateCheck       func(inst *tfapi.Instrument) bool
	task             tfapi.TaskType
	args             func(ctx context.Context, name string, extra map[string]interface{}) (map[string]interface{}, error)
}

// lifecycle is the data that makes a manager handle one instrument type
type lifecycle[A contracts.Enum] struct {
	kind          tfapi.InstrumentType
	issuedDocType string
	draftDocType  string
	binding       func(b *contracts.Bindings) *contracts.Binding[A, tfapi.InstrumentState]
	actions       []*action[A]
	performers    []*transitions.PerformerRule
	rules         func(h *handlers) map[tfapi.InstrumentState][]*transitions.Rule
}

type manager[A contracts.Enum] struct {
	bgCtx    context.Context
	conf     *tfconf.InstrumentsConfig
	lc       *lifecycle[A]
	deps     *Dependencies
	ledger   instrumentLedger[A]
	machines map[string]*statemachine.Machine
	router   *transitions.Router

	createdTopic    tftypes.Bytes32
	transitionTopic tftypes.Bytes32
}

func newManager[A contracts.Enum](bgCtx context.Context, conf *tfconf.InstrumentsConfig, lc *lifecycle[A]) *manager[A] {
	return &manager[A]{
		bgCtx: log.WithLogField(bgCtx, "mgr", string(lc.kind)),
		conf:  conf,
		lc:    lc,
	}
}

func (m *manager[A]) PostInit(c components.AllComponents) error {
	binding := m.lc.binding(c.Contracts())
	coordinator := txcoordinator.NewCoordinator(binding, txcoordinator.DependenciesOf(c), txcoordinator.StoreNonce(c.Store()))
	m.init(dependenciesOf(m.conf, c), coordinator)
	return nil
}

// init builds the state machines and transition tables over the dependencies
func (m *manager[A]) init(deps *Dependencies, ledger instrumentLedger[A]) {
	m.deps = deps
	m.ledger = ledger
	binding := ledger.Binding()
	m.createdTopic = tftypes.NewBytes32FromSlice(binding.CreatedTopic())
	m.transitionTopic = tftypes.NewBytes32FromSlice(binding.TransitionTopic())

	m.machines = make(map[string]*statemachine.Machine, len(m.lc.actions))
	for _, a := range m.lc.actions {
		m.machines[a.name] = statemachine.New(&statemachine.Config{
			Name:             a.name,
			RequiredState:    a.requiredState,
			RequiredRole:     a.requiredRole,
			DestinationState: a.destinationState,
			StateCheck:       a.stateCheck,
			Task:             a.task,
			Invoke:           m.invokeFn(a),
		}, deps.SelfPartyID, deps.Store, deps.Tasks)
	}

	processorDeps := &transitions.Dependencies{
		SelfPartyID: deps.SelfPartyID,
		ProductID:   deps.ProductID,
		Tasks:       deps.Tasks,
		Identity:    deps.Identity,
		Bridge:      deps.Bridge,
		Metrics:     deps.Metrics,
	}
	h := &handlers{deps: deps, kind: m.lc.kind, issuedDocType: m.lc.issuedDocType, draftDocType: m.lc.draftDocType}
	var processors []*transitions.Processor
	for state, rules := range m.lc.rules(h) {
		processors = append(processors, transitions.NewProcessor(state, processorDeps, rules...))
	}
	m.router = transitions.NewRouter(binding.Name(), deps.Store, deps.Metrics, binding.KnownStates(), m.lc.performers, processors...)
}

func (m *manager[A]) Start() error { return nil }

func (m *manager[A]) Stop() {}

func (m *manager[A]) invokeFn(a *action[A]) statemachine.InvokeFn {
	return func(ctx context.Context, inst *tfapi.Instrument, extra map[string]interface{}) (*tftypes.Bytes32, error) {
		if inst.ContractAddress == nil {
			return nil, i18n.NewError(ctx, msgs.MsgBindingNotBound, m.ledger.Binding().Name())
		}
		args := map[string]interface{}{}
		if a.args != nil {
			var err error
			if args, err = a.args(ctx, a.name, extra); err != nil {
				return nil, err
			}
		}
		res, err := m.ledger.Invoke(ctx, *inst.ContractAddress, a.ledgerAction, args, inst.Parties())
		if err != nil {
			return nil, err
		}
		return &res.TransactionHash, nil
	}
}

func (m *manager[A]) Name() string {
	return m.ledger.Binding().Name()
}

func (m *manager[A]) Topics() []tftypes.Bytes32 {
	return []tftypes.Bytes32{m.createdTopic, m.transitionTopic}
}

func (m *manager[A]) validate(ctx context.Context, inst *tfapi.Instrument) error {
	if inst.Type == "" {
		inst.Type = m.lc.kind
	}
	if inst.Type != m.lc.kind {
		return i18n.NewError(ctx, msgs.MsgUnknownInstrumentType, inst.Type)
	}
	if inst.Reference == "" {
		return i18n.NewError(ctx, msgs.MsgInvalidInstrument, "reference")
	}
	for name, id := range map[string]string{
		"applicantId":   inst.ApplicantID,
		"beneficiaryId": inst.BeneficiaryID,
		"issuingBankId": inst.IssuingBankID,
	} {
		if id == "" {
			return i18n.NewError(ctx, msgs.MsgMissingMandatoryParty, name)
		}
	}
	if !inst.Direct && inst.BeneficiaryBankID == "" {
		return i18n.NewError(ctx, msgs.MsgMissingMandatoryParty, "beneficiaryBankId")
	}
	if inst.BeneficiaryBankID != "" && inst.BeneficiaryBankRole == "" {
		inst.BeneficiaryBankRole = tfapi.IntermediaryAdvising
	}
	if role := tfapi.RoleOf(m.deps.SelfPartyID, inst); role != tfapi.RoleApplicant {
		return i18n.NewError(ctx, msgs.MsgForbiddenRole, m.deps.SelfPartyID, role, "create", tfapi.RoleApplicant)
	}
	for _, party := range inst.Parties() {
		member, err := m.deps.Identity.IsMember(ctx, party)
		if err != nil {
			return err
		}
		if !member {
			return i18n.NewError(ctx, msgs.MsgNotMember, party)
		}
	}
	return nil
}

// CreateInstrument caches the instrument as Initialising and deploys its contract.
// The instrument becomes Requested when the creation event is observed.
func (m *manager[A]) CreateInstrument(ctx context.Context, inst *tfapi.Instrument) (*tfapi.Instrument, error) {
	if err := m.validate(ctx, inst); err != nil {
		log.L(ctx).Errorf("Invalid %s: %s", m.lc.kind, err)
		return nil, err
	}
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	ctx = log.WithLogField(ctx, "instrument", inst.ID.String())
	inst.Status = tfapi.StateInitialising
	inst.ContractAddress = nil
	inst.TransactionHash = nil
	inst.DestinationState = nil
	inst.Nonce = 0
	inst.StateHistory = nil
	if err := m.deps.Store.InsertInstrument(ctx, inst); err != nil {
		return nil, err
	}

	res, err := m.ledger.Deploy(ctx, inst.LedgerData(), inst.Parties())
	if err != nil {
		return nil, err
	}
	inst.TransactionHash = &res.TransactionHash
	if err := m.deps.Store.UpdateInstrumentField(ctx, inst.ID, components.FieldTransactionHash, res.TransactionHash); err != nil {
		log.L(ctx).Warnf("Failed to record deploy transaction %s: %s", res.TransactionHash, err)
		m.deps.Metrics.BookkeepingFailure("transactionHash")
	}
	log.L(ctx).Infof("%s %s submitted for deploy tx=%s", m.lc.kind, inst.Reference, res.TransactionHash)
	return inst, nil
}

// GetInstrument returns nil if no instrument of this type has the id
func (m *manager[A]) GetInstrument(ctx context.Context, id uuid.UUID) (*tfapi.Instrument, error) {
	inst, err := m.deps.Store.GetInstrument(ctx, &components.InstrumentSelector{ID: &id})
	if err != nil || inst == nil || inst.Type != m.lc.kind {
		return nil, err
	}
	return inst, nil
}

func (m *manager[A]) Execute(ctx context.Context, id uuid.UUID, actionName string, extra map[string]interface{}) (*tftypes.Bytes32, error) {
	machine := m.machines[actionName]
	if machine == nil {
		return nil, i18n.NewError(ctx, msgs.MsgUnknownAction, actionName, m.lc.kind)
	}
	inst, err := m.GetInstrument(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, i18n.NewError(ctx, msgs.MsgInstrumentNotFound, id)
	}
	return machine.Execute(ctx, inst, extra)
}

func (m *manager[A]) HandleLog(ctx context.Context, l *ethclient.LogJSONRPC) error {
	if len(l.Topics) == 0 || l.Address == nil {
		return nil
	}
	switch tftypes.NewBytes32FromSlice(l.Topics[0]) {
	case m.createdTopic:
		return m.onCreated(ctx, l)
	case m.transitionTopic:
		return m.onTransition(ctx, l)
	}
	return nil
}

func (m *manager[A]) onCreated(ctx context.Context, l *ethclient.LogJSONRPC) error {
	address := tftypes.EthAddress(*l.Address)
	ctx = log.WithLogField(ctx, "contract", address.String())
	payload, err := m.ledger.Binding().DecodeCreated(ctx, l)
	if err != nil {
		return err
	}
	jsonData, err := m.deps.Compressor.Decompress(ctx, payload)
	if err != nil {
		return err
	}
	var data tfapi.InstrumentData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgInvalidEventData, m.ledger.Binding().Name())
	}
	if data.Type != m.lc.kind || data.Reference == "" {
		return i18n.NewError(ctx, msgs.MsgInvalidInstrument, data.Reference)
	}

	fromLedger := data.Instrument()
	// without a beneficiary bank the instrument can only be handled directly
	fromLedger.Direct = fromLedger.Direct || fromLedger.BeneficiaryBankID == ""
	if fromLedger.ID == uuid.Nil {
		fromLedger.ID = uuid.New()
	}
	txHash := tftypes.NewBytes32FromSlice(l.TransactionHash)
	fromLedger.ContractAddress = &address
	fromLedger.TransactionHash = &txHash
	fromLedger.Status = tfapi.StateInitialising
	inst, err := m.deps.Store.UpsertInstrumentByReference(ctx, fromLedger)
	if err != nil {
		return err
	}
	if inst.ContractAddress == nil || *inst.ContractAddress != address {
		log.L(ctx).Warnf("Ignoring creation of %s %s by a contract other than %s", m.lc.kind, inst.Reference, inst.ContractAddress)
		return nil
	}
	if inst.Status != tfapi.StateInitialising {
		log.L(ctx).Infof("Ignoring creation of %s %s already in state %s", m.lc.kind, inst.Reference, inst.Status)
		return nil
	}
	return m.router.OnState(ctx, inst, tfapi.StateRequested, uint64(l.BlockNumber), nil)
}

func (m *manager[A]) onTransition(ctx context.Context, l *ethclient.LogJSONRPC) error {
	address := tftypes.EthAddress(*l.Address)
	inst, err := m.deps.Store.GetInstrument(ctx, &components.InstrumentSelector{ContractAddress: &address})
	if err != nil {
		return err
	}
	if inst == nil || inst.Type != m.lc.kind {
		log.L(ctx).Tracef("Transition of contract %s is not a cached %s", address, m.lc.kind)
		return nil
	}
	transition, err := m.ledger.Binding().DecodeTransition(ctx, l)
	if err != nil {
		return err
	}
	return m.router.OnTransition(ctx, inst, transition.StateID, uint64(l.BlockNumber), &transition.Nonce)
}
