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

package transitions

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/mocks/componentmocks"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	*Dependencies
	store    *componentmocks.Store
	tasks    *componentmocks.TaskManager
	identity *componentmocks.IdentityResolver
	bridge   *componentmocks.Bridge
}

func newTestDeps(t *testing.T, self string) *testDeps {
	td := &testDeps{
		store:    componentmocks.NewStore(t),
		tasks:    componentmocks.NewTaskManager(t),
		identity: componentmocks.NewIdentityResolver(t),
		bridge:   componentmocks.NewBridge(t),
	}
	td.Dependencies = &Dependencies{
		SelfPartyID: self,
		ProductID:   "tradeFinance",
		Tasks:       td.tasks,
		Identity:    td.identity,
		Bridge:      td.bridge,
		Metrics:     metrics.NewMetricsManager(context.Background()),
	}
	return td
}

func newTestInstrument() *tfapi.Instrument {
	return &tfapi.Instrument{
		ID:                uuid.New(),
		Type:              tfapi.InstrumentTypeLC,
		Reference:         "LC-001",
		ApplicantID:       "applicant1",
		BeneficiaryID:     "benef1",
		IssuingBankID:     "issuer1",
		BeneficiaryBankID: "bankA",
		Status:            tfapi.StateIssued,
	}
}

var testPerformers = []*PerformerRule{
	{State: tfapi.StateRequested, Role: tfapi.RoleApplicant},
	{State: tfapi.StateIssued, Role: tfapi.RoleIssuingBank},
	{State: tfapi.StateAdvised, Role: tfapi.RoleAdvisingBank},
	{State: tfapi.StateIssuedRejected, Direct: confutil.P(false), Prior: tfapi.StateIssued, Role: tfapi.RoleAdvisingBank},
	{State: tfapi.StateIssuedRejected, Role: tfapi.RoleBeneficiary},
}

func TestPerformer(t *testing.T) {
	inst := newTestInstrument()
	assert.Equal(t, "applicant1", Performer(testPerformers, inst, tfapi.StateRequested, tfapi.StateInitialising))
	assert.Equal(t, "bankA", Performer(testPerformers, inst, tfapi.StateAdvised, tfapi.StateIssued))
	assert.Equal(t, "bankA", Performer(testPerformers, inst, tfapi.StateIssuedRejected, tfapi.StateIssued))
	assert.Equal(t, "benef1", Performer(testPerformers, inst, tfapi.StateIssuedRejected, tfapi.StateAdvised))
	inst.Direct = true
	assert.Equal(t, "benef1", Performer(testPerformers, inst, tfapi.StateIssuedRejected, tfapi.StateIssued))
	assert.Equal(t, "", Performer(testPerformers, inst, tfapi.StateAcknowledged, tfapi.StateIssued))
}

func TestRouterUnknownState(t *testing.T) {
	td := newTestDeps(t, "benef1")
	r := NewRouter("LetterOfCredit", td.store, td.Metrics, map[tftypes.Bytes32]tfapi.InstrumentState{}, testPerformers)
	err := r.OnTransition(context.Background(), newTestInstrument(), tftypes.RandBytes32(), 10, nil)
	assert.Regexp(t, "TF010113", err)
}

func TestRouterUpdatesCacheAndDispatches(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "issuer1")
	inst := newTestInstrument()
	dest := tfapi.StateAdvised
	inst.DestinationState = &dest
	nonce := uint64(4)

	var applied *tfapi.TransitionEvent
	p := NewProcessor(tfapi.StateAdvised, td.Dependencies, &Rule{
		Role: tfapi.RoleIssuingBank,
		Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
			applied = event
			return nil
		},
	})
	states := map[tftypes.Bytes32]tfapi.InstrumentState{hashcodec.StateID("Advised"): tfapi.StateAdvised}
	r := NewRouter("LetterOfCredit", td.store, td.Metrics, states, testPerformers, p)
	assert.Equal(t, p, r.Processor(tfapi.StateAdvised))

	td.store.On("AppendHistoryAndSetStatus", mock.Anything, inst.ID, tfapi.StateAdvised, "bankA", &nonce).Return(nil)
	err := r.OnTransition(ctx, inst, hashcodec.StateID("advised"), 22, &nonce)
	require.NoError(t, err)

	require.NotNil(t, applied)
	assert.Equal(t, &tfapi.TransitionEvent{State: tfapi.StateAdvised, BlockNumber: 22, PerformerID: "bankA", Nonce: &nonce}, applied)
	assert.Equal(t, tfapi.StateAdvised, inst.Status)
	assert.Nil(t, inst.DestinationState)
	assert.Equal(t, uint64(4), inst.Nonce)
	require.Len(t, inst.StateHistory, 1)
	assert.Equal(t, "Issued", inst.StateHistory[0].FromState)
}

func TestRouterHistoryFailureContinues(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "issuer1")
	inst := newTestInstrument()
	called := false
	p := NewProcessor(tfapi.StateAdvised, td.Dependencies, &Rule{
		Role: tfapi.RoleIssuingBank,
		Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
			called = true
			return nil
		},
	})
	r := NewRouter("LetterOfCredit", td.store, td.Metrics, nil, testPerformers, p)
	td.store.On("AppendHistoryAndSetStatus", mock.Anything, inst.ID, tfapi.StateAdvised, "bankA", (*uint64)(nil)).Return(fmt.Errorf("db down"))
	err := r.OnState(ctx, inst, tfapi.StateAdvised, 22, nil)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRouterReplayedTransitionKeepsHistory(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "issuer1")
	inst := newTestInstrument()
	inst.Status = tfapi.StateIssuedRejected
	inst.StateHistory = []*tfapi.StateHistoryEntry{
		{FromState: "Requested", ToState: "Issued", Performer: "issuer1"},
		{FromState: "Issued", ToState: "IssuedRejected", Performer: "bankA"},
	}

	var performers []string
	p := NewProcessor(tfapi.StateIssuedRejected, td.Dependencies, &Rule{
		Role: tfapi.RoleIssuingBank,
		Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
			performers = append(performers, event.PerformerID)
			if len(performers) < 3 {
				return fmt.Errorf("pop")
			}
			return nil
		},
	})
	r := NewRouter("LetterOfCredit", td.store, td.Metrics, nil, testPerformers, p)

	// Every redelivery runs the processors again without a further history row
	for i := 0; i < 2; i++ {
		assert.Regexp(t, "pop", r.OnState(ctx, inst, tfapi.StateIssuedRejected, 22, nil))
	}
	require.NoError(t, r.OnState(ctx, inst, tfapi.StateIssuedRejected, 22, nil))
	assert.Equal(t, []string{"bankA", "bankA", "bankA"}, performers)
	assert.Len(t, inst.StateHistory, 2)
	td.store.AssertNotCalled(t, "AppendHistoryAndSetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouterNoProcessor(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "issuer1")
	inst := newTestInstrument()
	r := NewRouter("LetterOfCredit", td.store, td.Metrics, nil, testPerformers)
	td.store.On("AppendHistoryAndSetStatus", mock.Anything, inst.ID, tfapi.StateRequestRejected, "", (*uint64)(nil)).Return(nil)
	err := r.OnState(ctx, inst, tfapi.StateRequestRejected, 22, nil)
	require.NoError(t, err)
	assert.Equal(t, tfapi.StateRequestRejected, inst.Status)
}

func TestProcessorHandlerErrorPropagates(t *testing.T) {
	td := newTestDeps(t, "bankA")
	handlerErr := fmt.Errorf("share failed")
	p := NewProcessor(tfapi.StateAdvised, td.Dependencies, &Rule{
		Role: tfapi.RoleAdvisingBank,
		Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
			return handlerErr
		},
		ResolveTask: &TaskResolution{Type: tfapi.TaskReviewIssuedLC, Outcome: true},
	})
	err := p.Apply(context.Background(), newTestInstrument(), &tfapi.TransitionEvent{State: tfapi.StateAdvised, PerformerID: "bankA"})
	assert.Same(t, handlerErr, err)
}

func TestProcessorIdempotentTaskCreation(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "benef1")
	inst := newTestInstrument()
	inst.Status = tfapi.StateAdvised
	p := NewProcessor(tfapi.StateAdvised, td.Dependencies, &Rule{
		Role:        tfapi.RoleBeneficiary,
		ResolveTask: &TaskResolution{Type: tfapi.TaskReviewRequestedLC, Outcome: true},
		CreateTask:  &TaskCreation{Type: tfapi.TaskReviewIssuedLC},
		Notify:      true,
	})

	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}
	td.tasks.On("ResolveTask", mock.Anything, tfapi.TaskReviewRequestedLC, inst.TaskContext(), true).Run(record("resolve")).Return(nil)
	td.tasks.On("FindTasks", mock.Anything, tfapi.TaskReviewIssuedLC, inst.TaskContext()).Run(record("find")).Return([]*tfapi.Task{}, nil).Once()
	td.tasks.On("FindTasks", mock.Anything, tfapi.TaskReviewIssuedLC, inst.TaskContext()).Run(record("find")).Return([]*tfapi.Task{
		{ID: "task1", Type: tfapi.TaskReviewIssuedLC, Status: tfapi.TaskStatusToDo},
	}, nil).Once()
	td.tasks.On("CreateTask", mock.Anything, mock.MatchedBy(func(nt *tfapi.NewTask) bool {
		return nt.Type == tfapi.TaskReviewIssuedLC && nt.Role == tfapi.RoleBeneficiary && nt.Summary == "LC LC-001 is Advised"
	})).Run(record("create")).Return(&tfapi.Task{ID: "task1"}, nil).Once()
	td.identity.On("ResolveDisplayName", mock.Anything, "bankA").Return("Bank A", nil).Once()
	td.tasks.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *tfapi.Notification) bool {
		return n.Message == "LC LC-001 Advised by Bank A"
	})).Run(record("notify")).Return(nil).Once()

	event := &tfapi.TransitionEvent{State: tfapi.StateAdvised, BlockNumber: 5, PerformerID: "bankA"}
	require.NoError(t, p.Apply(ctx, inst, event))
	require.NoError(t, p.Apply(ctx, inst, event))
	assert.Equal(t, []string{"resolve", "find", "create", "resolve", "find", "notify"}, calls)
}

func TestProcessorTaskCreationFailurePropagates(t *testing.T) {
	td := newTestDeps(t, "benef1")
	inst := newTestInstrument()
	p := NewProcessor(tfapi.StateIssued, td.Dependencies, &Rule{
		Role:       tfapi.RoleBeneficiary,
		CreateTask: &TaskCreation{Type: tfapi.TaskReviewIssuedLC},
	})
	createErr := fmt.Errorf("inbox down")
	td.tasks.On("FindTasks", mock.Anything, tfapi.TaskReviewIssuedLC, inst.TaskContext()).Return(nil, nil)
	td.tasks.On("CreateTask", mock.Anything, mock.Anything).Return(nil, createErr)
	err := p.Apply(context.Background(), inst, &tfapi.TransitionEvent{State: tfapi.StateIssued, PerformerID: "issuer1"})
	assert.Same(t, createErr, err)

	findErr := fmt.Errorf("inbox down")
	td = newTestDeps(t, "benef1")
	p = NewProcessor(tfapi.StateIssued, td.Dependencies, &Rule{
		Role:       tfapi.RoleBeneficiary,
		CreateTask: &TaskCreation{Type: tfapi.TaskReviewIssuedLC},
	})
	td.tasks.On("FindTasks", mock.Anything, tfapi.TaskReviewIssuedLC, inst.TaskContext()).Return(nil, findErr)
	err = p.Apply(context.Background(), inst, &tfapi.TransitionEvent{State: tfapi.StateIssued, PerformerID: "issuer1"})
	assert.Same(t, findErr, err)
}

func TestProcessorBestEffortSideEffects(t *testing.T) {
	ctx := context.Background()
	td := newTestDeps(t, "applicant1")
	inst := newTestInstrument()
	inst.TradeSourceSystem = "VAKT"
	p := NewProcessor(tfapi.StateIssued, td.Dependencies, &Rule{
		Role:        tfapi.RoleApplicant,
		ResolveTask: &TaskResolution{Type: tfapi.TaskReviewRequestedLC, Outcome: true},
		Notify:      true,
		Bridge:      true,
	})
	td.tasks.On("ResolveTask", mock.Anything, tfapi.TaskReviewRequestedLC, inst.TaskContext(), true).Return(fmt.Errorf("pop"))
	td.identity.On("ResolveDisplayName", mock.Anything, "issuer1").Return("", fmt.Errorf("unknown"))
	td.tasks.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *tfapi.Notification) bool {
		return n.Message == "LC LC-001 Issued by issuer1" && n.Level == tfapi.NotificationInfo
	})).Return(fmt.Errorf("pop"))
	td.bridge.On("SourceSystem").Return("VAKT")
	td.bridge.On("Notify", mock.Anything, mock.MatchedBy(func(m *tfapi.BridgeMessage) bool {
		return m.Reference == "LC-001" && m.State == tfapi.StateIssued && m.Performer == "issuer1"
	})).Return(fmt.Errorf("pop"))

	err := p.Apply(ctx, inst, &tfapi.TransitionEvent{State: tfapi.StateIssued, PerformerID: "issuer1"})
	require.NoError(t, err)
}

func TestProcessorNoNotificationForOwnTransition(t *testing.T) {
	td := newTestDeps(t, "issuer1")
	inst := newTestInstrument()
	p := NewProcessor(tfapi.StateIssued, td.Dependencies, &Rule{
		Role:   tfapi.RoleIssuingBank,
		Notify: true,
		Bridge: true,
	})
	td.bridge.On("SourceSystem").Return("VAKT").Maybe()
	err := p.Apply(context.Background(), inst, &tfapi.TransitionEvent{State: tfapi.StateIssued, PerformerID: "issuer1"})
	require.NoError(t, err)
}

func TestProcessorRuleConditions(t *testing.T) {
	td := newTestDeps(t, "benef1")
	inst := newTestInstrument()
	directCalls, indirectCalls := 0, 0
	p := NewProcessor(tfapi.StateIssued, td.Dependencies,
		&Rule{
			Role: tfapi.RoleBeneficiary,
			If:   func(inst *tfapi.Instrument) bool { return inst.Direct },
			Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
				directCalls++
				return nil
			},
		},
		&Rule{
			Role: tfapi.RoleBeneficiary,
			Handler: func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
				indirectCalls++
				return nil
			},
		},
	)
	event := &tfapi.TransitionEvent{State: tfapi.StateIssued, PerformerID: "issuer1"}
	require.NoError(t, p.Apply(context.Background(), inst, event))
	inst.Direct = true
	require.NoError(t, p.Apply(context.Background(), inst, event))
	assert.Equal(t, 1, directCalls)
	assert.Equal(t, 1, indirectCalls)

	// no rule for the role of a party outside the instrument
	outsider := NewProcessor(tfapi.StateIssued, newTestDeps(t, "stranger").Dependencies, &Rule{Role: tfapi.RoleBeneficiary, Notify: true})
	require.NoError(t, outsider.Apply(context.Background(), inst, event))
}
