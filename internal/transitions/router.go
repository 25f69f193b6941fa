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

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// PerformerRule names the role that performs the transition into a state.
// Rules are matched in order, the first match wins.
type PerformerRule struct {
	State tfapi.InstrumentState
	// Direct matches the directness of the instrument when set
	Direct *bool
	// Prior matches the status before the transition when set
	Prior tfapi.InstrumentState
	Role  tfapi.PartyRole
}

func (pr *PerformerRule) matches(inst *tfapi.Instrument, state, prior tfapi.InstrumentState) bool {
	return pr.State == state &&
		(pr.Direct == nil || *pr.Direct == inst.Direct) &&
		(pr.Prior == "" || pr.Prior == prior)
}

// Performer returns the id of the party that performed the transition, or an empty string if no rule matches
func Performer(rules []*PerformerRule, inst *tfapi.Instrument, state, prior tfapi.InstrumentState) string {
	for _, pr := range rules {
		if pr.matches(inst, state, prior) {
			return tfapi.PartyFor(pr.Role, inst)
		}
	}
	return ""
}

// Router applies ledger transitions of one instrument type to the cache,
// and dispatches them to the processor registered for the new state
type Router struct {
	name       string
	store      components.Store
	metrics    metrics.Metrics
	states     map[tftypes.Bytes32]tfapi.InstrumentState
	performers []*PerformerRule
	processors map[tfapi.InstrumentState]*Processor
}

func NewRouter(name string, store components.Store, m metrics.Metrics, states map[tftypes.Bytes32]tfapi.InstrumentState, performers []*PerformerRule, processors ...*Processor) *Router {
	r := &Router{
		name:       name,
		store:      store,
		metrics:    m,
		states:     states,
		performers: performers,
		processors: make(map[tfapi.InstrumentState]*Processor, len(processors)),
	}
	for _, p := range processors {
		r.processors[p.State()] = p
	}
	return r
}

func (r *Router) Processor(state tfapi.InstrumentState) *Processor {
	return r.processors[state]
}

// OnTransition handles a transition of the contract of the instrument to a ledger state id
func (r *Router) OnTransition(ctx context.Context, inst *tfapi.Instrument, stateID tftypes.Bytes32, blockNumber uint64, nonce *uint64) error {
	state, ok := r.states[stateID]
	if !ok {
		return i18n.NewError(ctx, msgs.MsgUnknownLedgerState, stateID, r.name)
	}
	return r.OnState(ctx, inst, state, blockNumber, nonce)
}

// recordedPrior is the state the instrument left when it last entered state
func recordedPrior(inst *tfapi.Instrument, state tfapi.InstrumentState) tfapi.InstrumentState {
	for i := len(inst.StateHistory) - 1; i >= 0; i-- {
		if h := inst.StateHistory[i]; h.ToState == string(state) {
			return tfapi.InstrumentState(h.FromState)
		}
	}
	return inst.Status
}

func (r *Router) OnState(ctx context.Context, inst *tfapi.Instrument, state tfapi.InstrumentState, blockNumber uint64, nonce *uint64) error {
	ctx = log.WithLogField(ctx, "instrument", inst.IDString())
	prior, replayed := inst.Status, inst.Status == state
	if replayed {
		// the transition was recorded by an earlier delivery of the same event
		prior = recordedPrior(inst, state)
	}
	performer := Performer(r.performers, inst, state, prior)
	log.L(ctx).Infof("%s transition %s -> %s by '%s' (block=%d replayed=%t)", r.name, prior, state, performer, blockNumber, replayed)

	if !replayed {
		if err := r.store.AppendHistoryAndSetStatus(ctx, inst.ID, state, performer, nonce); err != nil {
			log.L(ctx).Errorf("Failed to record transition to %s: %s", state, err)
			r.metrics.BookkeepingFailure("history")
		}
		inst.StateHistory = append(inst.StateHistory, &tfapi.StateHistoryEntry{
			FromState: string(prior),
			ToState:   string(state),
			Performer: performer,
			Timestamp: tftypes.TimestampNow(),
		})
	}
	inst.Status = state
	if inst.DestinationState != nil && *inst.DestinationState == state {
		inst.DestinationState = nil
	}
	if nonce != nil && *nonce > inst.Nonce {
		inst.Nonce = *nonce
	}
	r.metrics.TransitionObserved(string(inst.Type), string(state))

	p := r.processors[state]
	if p == nil {
		log.L(ctx).Warnf("No processor registered for %s state %s", r.name, state)
		return nil
	}
	return p.Apply(ctx, inst, &tfapi.TransitionEvent{
		State:       state,
		BlockNumber: blockNumber,
		PerformerID: performer,
		Nonce:       nonce,
	})
}
