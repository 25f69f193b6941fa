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

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
)

// Handler runs the role specific side effects of a transition, such as sharing documents
type Handler func(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error

type TaskResolution struct {
	Type    tfapi.TaskType
	Outcome bool
}

type TaskCreation struct {
	Type    tfapi.TaskType
	Summary func(inst *tfapi.Instrument) string
}

// Rule is one row of the table of a processor
type Rule struct {
	Role tfapi.PartyRole
	// If narrows the rule to matching instruments when set
	If          func(inst *tfapi.Instrument) bool
	Handler     Handler
	ResolveTask *TaskResolution
	CreateTask  *TaskCreation
	Notify      bool
	Bridge      bool
}

type Dependencies struct {
	SelfPartyID string
	ProductID   string
	Tasks       components.TaskManager
	Identity    components.IdentityResolver
	// Bridge is nil when no cross network bridge is configured
	Bridge  components.Bridge
	Metrics metrics.Metrics
}

// Processor reacts to an instrument reaching one ledger state, according to the role of the local party
type Processor struct {
	state tfapi.InstrumentState
	rules []*Rule
	deps  *Dependencies
}

func NewProcessor(state tfapi.InstrumentState, deps *Dependencies, rules ...*Rule) *Processor {
	return &Processor{
		state: state,
		rules: rules,
		deps:  deps,
	}
}

func (p *Processor) State() tfapi.InstrumentState {
	return p.state
}

func (p *Processor) ruleFor(inst *tfapi.Instrument, role tfapi.PartyRole) *Rule {
	for _, r := range p.rules {
		if r.Role == role && (r.If == nil || r.If(inst)) {
			return r
		}
	}
	return nil
}

func (p *Processor) Apply(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) error {
	role := tfapi.RoleOf(p.deps.SelfPartyID, inst)
	rule := p.ruleFor(inst, role)
	if rule == nil {
		log.L(ctx).Debugf("No %s rule for role %s", p.state, role)
		return nil
	}

	if rule.Handler != nil {
		if err := rule.Handler(ctx, inst, event); err != nil {
			log.L(ctx).Errorf("%s handler for %s failed: %s", p.state, role, err)
			return err
		}
	}

	taskCtx := inst.TaskContext()
	if rule.ResolveTask != nil {
		if err := p.deps.Tasks.ResolveTask(ctx, rule.ResolveTask.Type, taskCtx, rule.ResolveTask.Outcome); err != nil {
			log.L(ctx).Warnf("Failed to resolve %s task: %s", rule.ResolveTask.Type, err)
			p.deps.Metrics.BookkeepingFailure("task")
		}
	}

	taskCreated := false
	if rule.CreateTask != nil {
		created, err := p.createTaskIfNotOpen(ctx, inst, role, rule.CreateTask)
		if err != nil {
			return err
		}
		taskCreated = created
	}

	if rule.Notify && !taskCreated && event.PerformerID != p.deps.SelfPartyID {
		p.notify(ctx, inst, event)
	}

	if rule.Bridge {
		p.notifyBridge(ctx, inst, event)
	}
	return nil
}

func (p *Processor) createTaskIfNotOpen(ctx context.Context, inst *tfapi.Instrument, role tfapi.PartyRole, creation *TaskCreation) (bool, error) {
	taskCtx := inst.TaskContext()
	existing, err := p.deps.Tasks.FindTasks(ctx, creation.Type, taskCtx)
	if err != nil {
		return false, err
	}
	for _, t := range existing {
		if t.Status == tfapi.TaskStatusToDo || t.Status == tfapi.TaskStatusPending {
			log.L(ctx).Debugf("Task %s already open for %s (id=%s)", creation.Type, inst.IDString(), t.ID)
			return false, nil
		}
	}
	summary := fmt.Sprintf("%s %s is %s", inst.Type, inst.Reference, inst.Status)
	if creation.Summary != nil {
		summary = creation.Summary(inst)
	}
	if _, err := p.deps.Tasks.CreateTask(ctx, &tfapi.NewTask{
		Type:    creation.Type,
		Context: taskCtx,
		Role:    role,
		Summary: summary,
	}); err != nil {
		log.L(ctx).Errorf("Failed to create %s task: %s", creation.Type, err)
		return false, err
	}
	return true, nil
}

func (p *Processor) notify(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) {
	performer := event.PerformerID
	if performer != "" {
		if name, err := p.deps.Identity.ResolveDisplayName(ctx, performer); err == nil {
			performer = name
		}
	}
	err := p.deps.Tasks.CreateNotification(ctx, &tfapi.Notification{
		ProductID: p.deps.ProductID,
		Type:      fmt.Sprintf("%s.StateTransition", inst.Type),
		Level:     tfapi.NotificationInfo,
		Message:   fmt.Sprintf("%s %s %s by %s", inst.Type, inst.Reference, event.State, performer),
		Context:   inst.TaskContext(),
	})
	if err != nil {
		log.L(ctx).Warnf("Failed to notify transition to %s: %s", event.State, err)
		p.deps.Metrics.BookkeepingFailure("notification")
	}
}

func (p *Processor) notifyBridge(ctx context.Context, inst *tfapi.Instrument, event *tfapi.TransitionEvent) {
	if p.deps.Bridge == nil || inst.TradeSourceSystem == "" || inst.TradeSourceSystem != p.deps.Bridge.SourceSystem() {
		return
	}
	err := p.deps.Bridge.Notify(ctx, &tfapi.BridgeMessage{
		SourceSystem: inst.TradeSourceSystem,
		Reference:    inst.Reference,
		InstrumentID: inst.ID.String(),
		Type:         inst.Type,
		State:        event.State,
		Performer:    event.PerformerID,
		Timestamp:    tftypes.TimestampNow(),
	})
	if err != nil {
		log.L(ctx).Warnf("Failed to notify bridge of transition to %s: %s", event.State, err)
		p.deps.Metrics.BookkeepingFailure("bridge")
	}
}
